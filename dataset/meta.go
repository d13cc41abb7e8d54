package dataset

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Metadata is the companion description of a CSV file: which column is the
// response, which short names map to descriptive long names, and which
// columns must be treated as categorical even when every cell parses as a
// number (dummy-coded indicators are the usual case).
//
// YAML layout:
//
//	response: median_value
//	names:
//	  rm:   number_of_rooms_per_dwelling
//	  medv: median_value
//	categorical:
//	  - river_adjacent
type Metadata struct {
	// Response names the response column, after renaming.
	Response string `yaml:"response"`
	// Names maps raw CSV header names to descriptive column names.
	Names map[string]string `yaml:"names"`
	// Categorical lists columns (after renaming) forced to Categorical.
	Categorical []string `yaml:"categorical"`
}

// LoadMetadata decodes a Metadata document from r.
func LoadMetadata(r io.Reader) (*Metadata, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("dataset: read metadata: %w", err)
	}

	var m Metadata
	if err = yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("dataset: decode metadata: %w", err)
	}
	if m.Names == nil {
		m.Names = make(map[string]string)
	}

	return &m, nil
}

// LoadMetadataFile opens path and decodes it via LoadMetadata.
func LoadMetadataFile(path string) (*Metadata, error) {
	f, err := os.Open(path) //nolint:gosec // user-provided metadata path is intentional
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadMetadata(f)
}

// rename maps a raw header name through Names, falling back to the raw name.
func (m *Metadata) rename(raw string) string {
	if m == nil {
		return raw
	}
	if long, ok := m.Names[raw]; ok {
		return long
	}

	return raw
}

// forcedCategorical reports whether the (renamed) column must be Categorical.
func (m *Metadata) forcedCategorical(name string) bool {
	if m == nil {
		return false
	}
	for _, c := range m.Categorical {
		if c == name {
			return true
		}
	}

	return false
}
