package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ocarlier/drugmentions/internal/publication"
)

// MarshalJSON renders the graph as a strict JSON object with keys in
// insertion order. encoding/json cannot be used directly for the mapping
// levels because Go maps do not preserve order, so the object structure is
// written by hand and only keys and mention objects go through an encoder.
func (g *Graph) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')
	for i, drug := range g.drugs {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeValue(&buf, drug); err != nil {
			return nil, err
		}
		buf.WriteByte(':')

		js := g.entries[drug]
		buf.WriteByte('{')
		for j, journal := range js.order {
			if j > 0 {
				buf.WriteByte(',')
			}
			if err := encodeValue(&buf, journal); err != nil {
				return nil, err
			}
			buf.WriteByte(':')

			buf.WriteByte('[')
			for k, m := range js.mentions[journal] {
				if k > 0 {
					buf.WriteByte(',')
				}
				if err := encodeValue(&buf, m); err != nil {
					return nil, err
				}
			}
			buf.WriteByte(']')
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// encodeValue appends v's JSON encoding without HTML escaping, so non-ASCII
// and punctuation in titles come out literally.
func encodeValue(buf *bytes.Buffer, v interface{}) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encode terminates with a newline; drop it, separators are ours.
	buf.Truncate(buf.Len() - 1)
	return nil
}

// UnmarshalJSON decodes a graph document while preserving the key order it
// was written with, via the token stream rather than an intermediate map.
func (g *Graph) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	if err := expectDelim(dec, '{'); err != nil {
		return fmt.Errorf("graph document: %w", err)
	}

	g.drugs = nil
	g.entries = make(map[string]*journals)

	for dec.More() {
		drug, err := readKey(dec)
		if err != nil {
			return err
		}
		if err := expectDelim(dec, '{'); err != nil {
			return fmt.Errorf("drug %q: %w", drug, err)
		}

		for dec.More() {
			journal, err := readKey(dec)
			if err != nil {
				return err
			}
			var mentions []publication.Mention
			if err := dec.Decode(&mentions); err != nil {
				return fmt.Errorf("drug %q journal %q: %w", drug, journal, err)
			}
			g.ensure(drug, journal)
			for _, m := range mentions {
				g.append(drug, journal, m)
			}
		}

		if _, err := dec.Token(); err != nil { // Closing '}' of the journal map
			return err
		}
	}

	_, err := dec.Token() // Closing '}' of the document
	return err
}

// Parse decodes a graph document.
func Parse(data []byte) (*Graph, error) {
	g := New()
	if err := json.Unmarshal(data, g); err != nil {
		return nil, err
	}
	return g, nil
}

// ReadFile loads a graph document from disk.
func ReadFile(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading graph: %w", err)
	}
	g, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing graph %s: %w", path, err)
	}
	return g, nil
}

// WriteFile writes the graph document to path, indented, UTF-8, with
// non-ASCII characters emitted literally.
func (g *Graph) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(g); err != nil {
		f.Close()
		return fmt.Errorf("encoding graph: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func expectDelim(dec *json.Decoder, d json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok != d {
		return fmt.Errorf("expected %v, got %v", d, tok)
	}
	return nil
}

func readKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected object key, got %v", tok)
	}
	return key, nil
}
