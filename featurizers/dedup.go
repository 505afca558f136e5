package featurizers

import (
	"sort"
	"strings"

	spooky "github.com/dgryski/go-spooky"
	"github.com/guidoivetta/rasa/dialogue"
)

// Example dedup collapses exact repeats of (window, label) pairs produced
// across many conversations, keeping the first occurrence. Equality is
// structural over every turn of the window plus the label, computed as a
// spooky hash of a canonical rendering.

type exampleSet struct {
	seen map[uint64]bool
}

func newExampleSet() *exampleSet {
	return &exampleSet{seen: map[uint64]bool{}}
}

// add records the example and reports whether it was seen before.
func (s *exampleSet) add(window []dialogue.State, labels ...string) bool {
	key := hashExample(window, labels...)
	if s.seen[key] {
		return true
	}
	s.seen[key] = true
	return false
}

func hashExample(window []dialogue.State, labels ...string) uint64 {
	var b strings.Builder
	writeStates(&b, window)
	for _, label := range labels {
		b.WriteString("##")
		b.WriteString(label)
	}
	return spooky.Hash64([]byte(b.String()))
}

func hashStates(window []dialogue.State) uint64 {
	var b strings.Builder
	writeStates(&b, window)
	return spooky.Hash64([]byte(b.String()))
}

// writeStates renders states with sorted keys so equal states always hash
// equally regardless of map iteration order.
func writeStates(b *strings.Builder, window []dialogue.State) {
	for _, st := range window {
		keys := make([]string, 0, len(st))
		for key := range st {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			sub := st[key]
			attrs := make([]string, 0, len(sub))
			for attr := range sub {
				attrs = append(attrs, attr)
			}
			sort.Strings(attrs)
			b.WriteString(key)
			b.WriteByte('{')
			for _, attr := range attrs {
				b.WriteString(attr)
				b.WriteByte('=')
				b.WriteString(sub[attr])
				b.WriteByte(';')
			}
			b.WriteByte('}')
		}
		b.WriteByte('|')
	}
}
