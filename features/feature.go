package features

// FeatureTypeSentence marks a feature vector summarizing a whole turn.
const FeatureTypeSentence = "sentence"

// Feature is a sparse numeric row vector for one attribute of one dialogue
// state, tagged with the component that produced it.
type Feature struct {
	Indices []int     `json:"indices"`
	Values  []float64 `json:"values"`
	Length  int       `json:"length"`

	Type      string `json:"type"`
	Attribute string `json:"attribute"`
	Origin    string `json:"origin"`
}

// OneHot returns a sentence feature with a single 1.0 at index.
func OneHot(index, length int, attribute, origin string) Feature {
	return Feature{
		Indices:   []int{index},
		Values:    []float64{1.0},
		Length:    length,
		Type:      FeatureTypeSentence,
		Attribute: attribute,
		Origin:    origin,
	}
}

// Dense materializes the vector.
func (f Feature) Dense() []float64 {
	out := make([]float64, f.Length)
	for i, idx := range f.Indices {
		if idx >= 0 && idx < f.Length {
			out[idx] = f.Values[i]
		}
	}
	return out
}

// Equal compares vectors and tags structurally.
func (f Feature) Equal(other Feature) bool {
	if f.Length != other.Length || f.Type != other.Type ||
		f.Attribute != other.Attribute || f.Origin != other.Origin {
		return false
	}
	if len(f.Indices) != len(other.Indices) || len(f.Values) != len(other.Values) {
		return false
	}
	for i := range f.Indices {
		if f.Indices[i] != other.Indices[i] {
			return false
		}
	}
	for i := range f.Values {
		if f.Values[i] != other.Values[i] {
			return false
		}
	}
	return true
}
