package layout

import (
	"encoding/json"
	"fmt"
)

// MarshalLayout serializes a layout to JSON.
func MarshalLayout(l *Layout) ([]byte, error) {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal layout: %w", err)
	}
	return data, nil
}

// UnmarshalLayout deserializes a layout from JSON.
func UnmarshalLayout(data []byte) (*Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("unmarshal layout: %w", err)
	}
	if l.Nodes == nil {
		l.Nodes = make(map[string]*Node)
	}
	if l.Edges == nil {
		l.Edges = make(map[string]*Edge)
	}
	return &l, nil
}
