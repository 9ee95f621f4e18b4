// internal/loads/csv.go
package loads

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Expected header columns. mc_number, is_partial, pickup_time and
// delivery_time are optional so a trimmed-down dataset still loads.
var requiredColumns = []string{
	"reference_number", "origin", "destination", "equipment_type", "rate", "commodity",
}

// ReadCSVFile reads the load dataset from a CSV file on disk.
func ReadCSVFile(path string) ([]Load, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open loads csv: %w", err)
	}
	defer f.Close()

	records, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parse loads csv %s: %w", path, err)
	}
	return records, nil
}

// ReadCSV parses load records from r. The first row must be a header naming
// at least the required columns, in any order.
func ReadCSV(r io.Reader) ([]Load, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing required column %q", col)
		}
	}

	field := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var out []Load
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		rate, err := strconv.ParseFloat(field(row, "rate"), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid rate %q", line, field(row, "rate"))
		}

		load := Load{
			ReferenceNumber: field(row, "reference_number"),
			Origin:          field(row, "origin"),
			Destination:     field(row, "destination"),
			EquipmentType:   field(row, "equipment_type"),
			Rate:            rate,
			Commodity:       field(row, "commodity"),
			MCNumber:        field(row, "mc_number"),
			PickupTime:      field(row, "pickup_time"),
			DeliveryTime:    field(row, "delivery_time"),
		}
		if v := field(row, "is_partial"); v != "" {
			isPartial, err := strconv.ParseBool(v)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid is_partial %q", line, v)
			}
			load.IsPartial = isPartial
		}

		if load.ReferenceNumber == "" {
			return nil, fmt.Errorf("line %d: empty reference_number", line)
		}

		out = append(out, load)
	}

	return out, nil
}
