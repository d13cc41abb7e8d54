package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// LoadCSV reads a header-first CSV table from r and assembles a Dataset.
//
// Kind inference: a column where every cell parses as a float64 becomes
// Numeric; any column with at least one non-numeric cell becomes Categorical.
// meta (optional, may be nil only if the response header already carries the
// final name) is applied on top of inference: header renames first, then
// forced categorical re-typing, then the response designation.
//
// Errors:
//   - ErrNoHeader          — empty input.
//   - ErrRaggedRow         — a record with a different field count than the header.
//   - ErrUnknownMetaColumn — meta forces a column the CSV does not have.
//   - plus every New validation error.
//
// Complexity: O(rows·columns) time and memory.
func LoadCSV(r io.Reader, meta *Metadata) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // ragged rows reported via ErrRaggedRow below

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("dataset: read csv header: %w", err)
	}

	names := make([]string, len(header))
	for i, raw := range header {
		names[i] = meta.rename(raw)
	}

	cells := make([][]string, len(header))
	row := 1
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: read csv record %d: %w", row, err)
		}
		if len(rec) != len(header) {
			return nil, fmt.Errorf("record %d has %d fields, want %d: %w", row, len(rec), len(header), ErrRaggedRow)
		}
		for i, cell := range rec {
			cells[i] = append(cells[i], cell)
		}
		row++
	}

	for _, forced := range metaCategoricals(meta) {
		if !contains(names, forced) {
			return nil, fmt.Errorf("categorical %q: %w", forced, ErrUnknownMetaColumn)
		}
	}

	cols := make([]Column, len(names))
	for i, name := range names {
		cols[i] = inferColumn(name, cells[i], meta.forcedCategorical(name))
	}

	response := ""
	if meta != nil {
		response = meta.Response
	}

	return New(response, cols...)
}

// LoadCSVFile opens path and assembles a Dataset via LoadCSV.
func LoadCSVFile(path string, meta *Metadata) (*Dataset, error) {
	f, err := os.Open(path) //nolint:gosec // user-provided data path is intentional
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadCSV(f, meta)
}

// inferColumn types a raw cell slice: all-parsable → Numeric, else Categorical.
// forced short-circuits inference for dummy-coded indicator columns.
func inferColumn(name string, cells []string, forced bool) Column {
	if !forced {
		floats := make([]float64, len(cells))
		numeric := true
		for i, cell := range cells {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				numeric = false

				break
			}
			floats[i] = v
		}
		if numeric {
			return NumericColumn(name, floats)
		}
	}

	return CategoricalColumn(name, append([]string(nil), cells...))
}

func metaCategoricals(meta *Metadata) []string {
	if meta == nil {
		return nil
	}

	return meta.Categorical
}

func contains(names []string, want string) bool {
	for _, n := range names {
		if n == want {
			return true
		}
	}

	return false
}
