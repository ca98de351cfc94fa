package gamedata

import (
	"encoding/json"
	"fmt"
)

// Load reads an embedded JSON file into T.
func Load[T any](filename string) (T, error) {
	content, err := dataFS.ReadFile(filename)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("read embedded %s: %w", filename, err)
	}

	return Decode[T](filename, content)
}

// Decode unmarshals JSON content into T. The name is only used in errors.
func Decode[T any](name string, content []byte) (T, error) {
	var result T
	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("parse %s: %w", name, err)
	}
	return result, nil
}
