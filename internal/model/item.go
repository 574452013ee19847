package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Item is one grocery entry as the remote store serves it.
// The client only ever reads it; InStock is flipped server-side by a toggle.
type Item struct {
	ID      ID     `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	InStock bool   `json:"inStock" yaml:"inStock"`
}

// Note is the single shared note.
type Note struct {
	Text string `json:"text" yaml:"text"`
}

// UnmarshalJSON accepts a missing or null text as empty.
func (n *Note) UnmarshalJSON(b []byte) error {
	var raw struct {
		Text *string `json:"text"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	n.Text = ""
	if raw.Text != nil {
		n.Text = *raw.Text
	}
	return nil
}

// ID is an opaque item identifier. The store may send it as a JSON string or
// a JSON number; it is written back in the same form.
type ID struct {
	value   string
	numeric bool
}

// StringID returns an ID that encodes as a JSON string.
func StringID(s string) ID { return ID{value: s} }

// NumberID returns an ID that encodes as a JSON number.
func NumberID(n int64) ID { return ID{value: fmt.Sprint(n), numeric: true} }

func (id ID) String() string { return id.value }

// IsZero reports whether the ID was never set.
func (id ID) IsZero() bool { return id.value == "" }

func (id ID) MarshalJSON() ([]byte, error) {
	if id.numeric {
		return []byte(id.value), nil
	}
	return json.Marshal(id.value)
}

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID{value: s}
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("item id: %w", err)
	}
	*id = ID{value: n.String(), numeric: true}
	return nil
}

func (id ID) MarshalYAML() (interface{}, error) {
	if id.numeric {
		return &yaml.Node{Kind: yaml.ScalarNode, Value: id.value}, nil
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: id.value}, nil
}
