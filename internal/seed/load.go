package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a seed file from disk. A missing file is an empty list, not an
// error.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Entry{}, nil
		}
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML bytes into an entry list.
func Parse(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return []Entry{}, nil
	}
	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing seed YAML: %w", err)
	}
	if entries == nil {
		return []Entry{}, nil
	}
	return entries, nil
}
