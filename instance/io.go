// Package instance: file round-trip helpers.
package instance

import (
	"encoding/json"
	"fmt"
	"os"
)

// Read loads and parses an instance file.
func Read(path string) (*Instance, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("instance: read %s: %w", path, err)
	}
	var in Instance
	if err = json.Unmarshal(raw, &in); err != nil {
		return nil, fmt.Errorf("instance: parse %s: %w", path, err)
	}

	return &in, nil
}

// Write serializes the instance (solution included, if set) to path,
// indented for human diffing.
func Write(path string, in *Instance) error {
	raw, err := json.MarshalIndent(in, "", "\t")
	if err != nil {
		return fmt.Errorf("instance: marshal %s: %w", in.Name, err)
	}
	if err = os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("instance: write %s: %w", path, err)
	}

	return nil
}
