package pathways

import (
	"fmt"
	"strings"
)

// Fixed column contracts for the tab-delimited interchange format.
var (
	inputColumns = []string{
		"Pathway", "Pathway Class", "Subclass", "Species", "Source", "URL", "UniProt IDS",
	}
	outputColumns = []string{
		"Pathway", "Pathway Class", "Subclass", "Species", "Source", "URL", "UniProt IDS",
		"AI Class Assigned", "AI Subclass Assigned",
	}
)

// ParseTSV reads tab-delimited pathway text into records. The header row is
// required and must match the input column contract. Blank lines and rows
// with an empty pathway name are skipped.
func ParseTSV(text string) ([]Record, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return nil, ErrMissingHeader
	}

	header := strings.Split(lines[0], "\t")
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	var records []Record
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		rec := Record{
			PathwayName:      field(fields, 0),
			OriginalClass:    field(fields, 1),
			OriginalSubclass: field(fields, 2),
			Species:          field(fields, 3),
			Source:           field(fields, 4),
			URL:              field(fields, 5),
			ExternalIDs:      field(fields, 6),
		}
		if rec.PathwayName == "" {
			continue
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, ErrEmptyInput
	}
	return records, nil
}

// SerializeTSV writes classified records in the fixed output column order,
// external IDs included. Values are written as-is; the format carries no
// escaping beyond the field delimiter itself.
func SerializeTSV(records []ClassifiedRecord) string {
	var b strings.Builder
	b.WriteString(strings.Join(outputColumns, "\t"))
	b.WriteString("\n")

	for _, r := range records {
		row := []string{
			r.PathwayName,
			r.OriginalClass,
			r.OriginalSubclass,
			r.Species,
			r.Source,
			r.URL,
			r.ExternalIDs,
			r.AssignedClass,
			r.AssignedSubclass,
		}
		b.WriteString(strings.Join(row, "\t"))
		b.WriteString("\n")
	}

	return b.String()
}

func checkHeader(header []string) error {
	if len(header) < len(inputColumns) {
		return fmt.Errorf("%w: got %d columns, want %d", ErrBadHeader, len(header), len(inputColumns))
	}
	for i, want := range inputColumns {
		if strings.TrimSpace(header[i]) != want {
			return fmt.Errorf("%w: column %d is %q, want %q", ErrBadHeader, i+1, strings.TrimSpace(header[i]), want)
		}
	}
	return nil
}

func field(fields []string, i int) string {
	if i >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[i])
}
