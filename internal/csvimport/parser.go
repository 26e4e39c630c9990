// Package csvimport turns an uploaded NPI directory CSV into typed records.
// The parse is all-or-nothing: a missing header column or a broken row
// rejects the whole file and nothing is stored.
package csvimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"healthatlas_backend/internal/models"
)

// ContentType is the only declared media type accepted for uploads. This is
// a label check, not a content sniff.
const ContentType = "text/csv"

// RequiredColumns are the header names a file must carry, matched
// case-insensitively and in any order.
var RequiredColumns = []string{
	"npi", "full_name", "address", "city", "state", "zip_code", "phone_number",
}

var ErrEmptyFile = errors.New("csv file has no header row")

// HasCSVFormat reports whether the upload's declared content type is the
// canonical CSV media type.
func HasCSVFormat(contentType string) bool {
	return contentType == ContentType
}

// Parse reads the full stream into DirectoryRecords. The first line is the
// header; each field is trimmed and captured as a string (the NPI keeps
// leading zeros). Any failure aborts the parse with no partial result.
func Parse(r io.Reader) ([]models.DirectoryRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyFile
		}
		return nil, fmt.Errorf("reading header row: %w", err)
	}

	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var records []models.DirectoryRecord
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading line %d: %w", line, err)
		}

		field := func(name string) string {
			return strings.TrimSpace(row[index[name]])
		}

		records = append(records, models.DirectoryRecord{
			Npi:         field("npi"),
			FullName:    field("full_name"),
			Address:     field("address"),
			City:        field("city"),
			State:       field("state"),
			ZipCode:     field("zip_code"),
			PhoneNumber: field("phone_number"),
		})
	}

	return records, nil
}

// columnIndex maps each required column to its position in the header,
// failing on the first recognized column that is absent.
func columnIndex(header []string) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		positions[strings.ToLower(strings.TrimSpace(name))] = i
	}

	index := make(map[string]int, len(RequiredColumns))
	for _, col := range RequiredColumns {
		pos, ok := positions[col]
		if !ok {
			return nil, fmt.Errorf("missing required column %q", col)
		}
		index[col] = pos
	}
	return index, nil
}
