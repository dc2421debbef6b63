package storage

import (
	"encoding/json"
	"fmt"
)

// ExtensionState carries optional, namespaced extras inside a session
// save without the core schema knowing their shape. Values are kept as
// raw JSON until a caller asks for them by key.
type ExtensionState map[string]json.RawMessage

// Set marshals v and stores it under key, allocating the map on first
// use so a zero ExtensionState works.
func (e *ExtensionState) Set(key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal extension %q: %w", key, err)
	}

	if *e == nil {
		*e = ExtensionState{}
	}
	(*e)[key] = b
	return nil
}

// Get unmarshals the value stored under key into out. The first return
// reports whether the key was present at all; an error with found=true
// means the stored bytes did not fit out.
func (e ExtensionState) Get(key string, out any) (bool, error) {
	raw, ok := e[key]
	if !ok || len(raw) == 0 {
		return false, nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return true, fmt.Errorf("unmarshal extension %q: %w", key, err)
	}
	return true, nil
}

// Delete removes the extension under key, if present.
func (e ExtensionState) Delete(key string) {
	delete(e, key)
}
