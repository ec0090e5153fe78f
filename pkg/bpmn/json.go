package bpmn

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// UnmarshalProcess decodes a process from JSON bytes.
// An element without a type is accepted; the layout engine sizes it with
// the default size. An element without an ID is rejected.
func UnmarshalProcess(data []byte) (Process, error) {
	var p Process
	if err := json.Unmarshal(data, &p); err != nil {
		return Process{}, fmt.Errorf("decode process: %w", err)
	}
	if err := validateElements(p.Elements); err != nil {
		return Process{}, err
	}
	return p, nil
}

// MarshalProcess encodes a process as indented JSON.
func MarshalProcess(p Process) ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// ReadProcess decodes a process from r.
// ReadProcess does not close r.
func ReadProcess(r io.Reader) (Process, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Process{}, fmt.Errorf("read process: %w", err)
	}
	return UnmarshalProcess(data)
}

// ReadProcessFile reads and decodes a process from a JSON file at path.
func ReadProcessFile(path string) (Process, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Process{}, fmt.Errorf("read %s: %w", path, err)
	}
	p, err := UnmarshalProcess(data)
	if err != nil {
		return Process{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// WriteProcessFile writes a process to a JSON file at path.
func WriteProcessFile(p Process, path string) error {
	data, err := MarshalProcess(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func validateElements(elements []Element) error {
	for _, e := range elements {
		if e.ID == "" {
			return fmt.Errorf("element of type %q has no id", e.Type)
		}
		if err := validateElements(e.Elements); err != nil {
			return fmt.Errorf("subprocess %s: %w", e.ID, err)
		}
	}
	return nil
}
