package tabgroup

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Payload is the export/import document for a whole set of groups.
type Payload struct {
	StateVersion string     `json:"stateVersion,omitempty" yaml:"stateVersion,omitempty"`
	TabGroups    []TabGroup `json:"tabGroups" yaml:"tabGroups"`
}

// ErrEmptyPayload is returned when there is nothing to decode.
var ErrEmptyPayload = errors.New("tabgroup: empty payload")

// MarshalPayload serialises a payload as indented JSON.
func MarshalPayload(p Payload) ([]byte, error) {
	if p.TabGroups == nil {
		p.TabGroups = []TabGroup{}
	}
	return json.MarshalIndent(p, "", "  ")
}

// DecodePayload reads a payload from JSON or YAML. A bare list of groups is
// accepted in place of the full document.
func DecodePayload(raw []byte) (Payload, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return Payload{}, ErrEmptyPayload
	}

	var node yaml.Node
	if err := yaml.Unmarshal(raw, &node); err != nil {
		return Payload{}, fmt.Errorf("tabgroup: decode payload: %w", err)
	}
	if len(node.Content) == 0 {
		return Payload{}, ErrEmptyPayload
	}

	var p Payload
	switch root := node.Content[0]; root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&p.TabGroups); err != nil {
			return Payload{}, fmt.Errorf("tabgroup: decode tab groups: %w", err)
		}
	case yaml.MappingNode:
		if err := root.Decode(&p); err != nil {
			return Payload{}, fmt.Errorf("tabgroup: decode payload: %w", err)
		}
	default:
		return Payload{}, fmt.Errorf("tabgroup: unexpected payload document")
	}
	for i := range p.TabGroups {
		if p.TabGroups[i].Tabs == nil {
			p.TabGroups[i].Tabs = []Tab{}
		}
	}
	return p, nil
}

// Validate checks that every group has a positive, unique DateAdded.
func (p Payload) Validate() error {
	seen := make(map[int64]struct{}, len(p.TabGroups))
	for _, g := range p.TabGroups {
		if g.DateAdded <= 0 {
			return fmt.Errorf("tabgroup: invalid dateAdded %d", g.DateAdded)
		}
		if _, dup := seen[g.DateAdded]; dup {
			return fmt.Errorf("tabgroup: duplicate dateAdded %d", g.DateAdded)
		}
		seen[g.DateAdded] = struct{}{}
	}
	return nil
}
