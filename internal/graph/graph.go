// Package graph builds and serializes the drug mention graph: an ordered
// two-level mapping from drug name to journal to recorded mentions.
package graph

import (
	"github.com/ocarlier/drugmentions/internal/publication"
)

// Graph maps drug name -> journal -> mentions. Both levels preserve
// insertion order so serialized output is reproducible run to run.
type Graph struct {
	drugs   []string
	entries map[string]*journals
}

// journals holds one drug's journal buckets in first-mention order.
type journals struct {
	order    []string
	mentions map[string][]publication.Mention
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{entries: make(map[string]*journals)}
}

// Add records a mention for drug under journal, creating the intermediate
// levels on first use. An identical mention already present under the same
// drug and journal is not recorded twice.
func (g *Graph) Add(drug, journal string, m publication.Mention) {
	if js, ok := g.entries[drug]; ok {
		for _, existing := range js.mentions[journal] {
			if existing == m {
				return
			}
		}
	}
	g.append(drug, journal, m)
}

// append records a mention without the duplicate check. Order-preserving
// decoding uses it directly so a parsed graph reproduces its document
// byte for byte.
func (g *Graph) append(drug, journal string, m publication.Mention) {
	js := g.ensure(drug, journal)
	js.mentions[journal] = append(js.mentions[journal], m)
}

// ensure registers the drug and journal keys in insertion order and returns
// the drug's journal set.
func (g *Graph) ensure(drug, journal string) *journals {
	js, ok := g.entries[drug]
	if !ok {
		js = &journals{mentions: make(map[string][]publication.Mention)}
		g.entries[drug] = js
		g.drugs = append(g.drugs, drug)
	}
	if _, ok := js.mentions[journal]; !ok {
		js.order = append(js.order, journal)
		js.mentions[journal] = nil
	}
	return js
}

// Len returns the number of drugs with at least one mention.
func (g *Graph) Len() int {
	return len(g.drugs)
}

// Drugs returns the drug keys in insertion order.
func (g *Graph) Drugs() []string {
	out := make([]string, len(g.drugs))
	copy(out, g.drugs)
	return out
}

// Journals returns drug's journal keys in insertion order, or nil if the
// drug has no mentions.
func (g *Graph) Journals(drug string) []string {
	js, ok := g.entries[drug]
	if !ok {
		return nil
	}
	out := make([]string, len(js.order))
	copy(out, js.order)
	return out
}

// Mentions returns the mentions recorded for drug under journal.
func (g *Graph) Mentions(drug, journal string) []publication.Mention {
	js, ok := g.entries[drug]
	if !ok {
		return nil
	}
	ms := js.mentions[journal]
	out := make([]publication.Mention, len(ms))
	copy(out, ms)
	return out
}
