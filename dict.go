package bereia

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/bytedance/sonic"
)

// Entry is one dictionary payload: an ordered set of JSON fields. Field
// order is preserved from the source document so that saving a loaded
// dictionary is diff-friendly.
type Entry struct {
	keys   []string
	fields map[string]json.RawMessage
}

// NewEntry returns an empty Entry.
func NewEntry() *Entry {
	return &Entry{fields: make(map[string]json.RawMessage)}
}

// Keys returns the field names in their current order.
func (e *Entry) Keys() []string {
	out := make([]string, len(e.keys))
	copy(out, e.keys)
	return out
}

// Has reports whether the entry carries the given field.
func (e *Entry) Has(key string) bool {
	_, ok := e.fields[key]
	return ok
}

// GetString returns the field value as a string, or "" when the field is
// absent or not a JSON string.
func (e *Entry) GetString(key string) string {
	raw, ok := e.fields[key]
	if !ok {
		return ""
	}
	var s string
	if err := sonic.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// SetString sets a string field, appending the key when it is new.
func (e *Entry) SetString(key, value string) {
	raw, err := sonic.Marshal(value)
	if err != nil {
		return
	}
	e.setRaw(key, raw)
}

func (e *Entry) setRaw(key string, raw json.RawMessage) {
	if _, ok := e.fields[key]; !ok {
		e.keys = append(e.keys, key)
	}
	e.fields[key] = raw
}

// Reorder rewrites the field order: the preferred keys first (those present),
// then every remaining key in its original order.
func (e *Entry) Reorder(preferred []string) {
	ordered := make([]string, 0, len(e.keys))
	seen := make(map[string]bool, len(e.keys))
	for _, key := range preferred {
		if _, ok := e.fields[key]; ok && !seen[key] {
			ordered = append(ordered, key)
			seen[key] = true
		}
	}
	for _, key := range e.keys {
		if !seen[key] {
			ordered = append(ordered, key)
			seen[key] = true
		}
	}
	e.keys = ordered
}

// Dictionary is an insertion-ordered mapping from lemma key to Entry,
// mirroring the source JSON document.
type Dictionary struct {
	keys    []string
	entries map[string]*Entry
}

// NewDictionary returns an empty Dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{entries: make(map[string]*Entry)}
}

// Len returns the number of entries.
func (d *Dictionary) Len() int { return len(d.keys) }

// Keys returns the lemma keys in document order.
func (d *Dictionary) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Entry returns the entry for key, or nil.
func (d *Dictionary) Entry(key string) *Entry {
	return d.entries[key]
}

// Put adds or replaces an entry, appending the key when it is new.
func (d *Dictionary) Put(key string, entry *Entry) {
	if _, ok := d.entries[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.entries[key] = entry
}

// LoadDictionary reads and parses a dictionary JSON file.
func LoadDictionary(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}
	d, err := ParseDictionary(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return d, nil
}

// ParseDictionary parses a dictionary document, preserving the order of
// lemma keys and of each entry's fields. Ordered decoding needs token-level
// access, so this goes through encoding/json's Decoder.
func ParseDictionary(data []byte) (*Dictionary, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	d := NewDictionary()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v for entry key", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("entry %q: %w", key, err)
		}
		entry, err := parseEntry(raw)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", key, err)
		}
		d.Put(key, entry)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return d, nil
}

// parseEntry decodes one entry object, keeping field order and raw values.
func parseEntry(data []byte) (*Entry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	e := NewEntry()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v for field name", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("field %q: %w", key, err)
		}
		e.setRaw(key, raw)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return e, nil
}

func expectDelim(dec *json.Decoder, want rune) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || rune(delim) != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

// Encode writes the dictionary as UTF-8 JSON with two-space indentation and
// a trailing newline, entries and fields in their stored order.
func (d *Dictionary) Encode(buf *bytes.Buffer) error {
	if len(d.keys) == 0 {
		buf.WriteString("{}\n")
		return nil
	}
	buf.WriteString("{\n")
	for i, key := range d.keys {
		keyJSON, err := sonic.Marshal(key)
		if err != nil {
			return err
		}
		buf.WriteString("  ")
		buf.Write(keyJSON)
		buf.WriteString(": ")
		if err := d.entries[key].encode(buf, "  "); err != nil {
			return fmt.Errorf("entry %q: %w", key, err)
		}
		if i < len(d.keys)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")
	return nil
}

// encode writes the entry object at the given indentation level.
func (e *Entry) encode(buf *bytes.Buffer, indent string) error {
	if len(e.keys) == 0 {
		buf.WriteString("{}")
		return nil
	}
	inner := indent + "  "
	buf.WriteString("{\n")
	for i, key := range e.keys {
		keyJSON, err := sonic.Marshal(key)
		if err != nil {
			return err
		}
		buf.WriteString(inner)
		buf.Write(keyJSON)
		buf.WriteString(": ")
		if err := json.Indent(buf, e.fields[key], inner, "  "); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
		if i < len(e.keys)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString(indent)
	buf.WriteByte('}')
	return nil
}

// Save writes the dictionary to path.
func (d *Dictionary) Save(path string) error {
	var buf bytes.Buffer
	if err := d.Encode(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write dictionary: %w", err)
	}
	return nil
}
