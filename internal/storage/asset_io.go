package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WriteAsset wraps spec in a versioned envelope and writes it atomically
// to path. Used for single-file records like session saves.
func WriteAsset[T ValidatingSpec](path string, id Identifier, spec T) error {
	asset := &Asset[T]{
		Version:    1,
		Identifier: id,
		Spec:       spec,
	}

	jsonData, err := json.Marshal(asset)
	if err != nil {
		return fmt.Errorf("marshalling json: %w", err)
	}

	return atomicWrite(path, jsonData, 0644)
}

// ReadAsset reads and validates a single asset file, returning its spec.
// Nothing is returned on any failure, so callers can keep prior state
// untouched when a load goes wrong.
func ReadAsset[T ValidatingSpec](path string) (T, error) {
	var zero T

	jsonData, err := os.ReadFile(path)
	if err != nil {
		return zero, fmt.Errorf("reading file: %w", err)
	}

	var asset Asset[T]
	err = json.Unmarshal(jsonData, &asset)
	if err != nil {
		return zero, fmt.Errorf("unmarshalling asset: %w", err)
	}

	err = asset.Validate()
	if err != nil {
		return zero, fmt.Errorf("validating %s: %w", filepath.Base(path), err)
	}

	return asset.Spec, nil
}
