package loader

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// utf8BOM is the byte-order mark some exports prepend to delimited files.
var utf8BOM = []byte("\ufeff")

// readRows reads a delimited file into header-keyed rows. A leading UTF-8
// BOM is tolerated. Rows that fail to parse are reported as errors carrying
// their record index and skipped; the rest of the file still loads. A
// file-level failure returns no rows and a single error.
func readRows(path string) ([]map[string]string, []error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, []error{fmt.Errorf("reading %s: %w", path, err)}
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1 // Ragged rows are handled below, not rejected wholesale

	header, err := r.Read()
	if err == io.EOF {
		return nil, []error{fmt.Errorf("%s: empty file", path)}
	}
	if err != nil {
		return nil, []error{fmt.Errorf("%s: reading header: %w", path, err)}
	}

	var rows []map[string]string
	var errs []error
	for i := 0; ; i++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("record %d: %w", i, err))
			continue
		}

		row := make(map[string]string, len(header))
		for j, name := range header {
			if j < len(record) {
				row[name] = record[j]
			}
		}
		rows = append(rows, row)
	}

	return rows, errs
}
