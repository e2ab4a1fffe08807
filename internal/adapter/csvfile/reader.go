// Package csvfile reads the delimited evacuation-order source file and
// writes the clean and audit datasets. Parsing here is a thin loading
// concern; all county interpretation lives in the domain package.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/sofiavega98/HHSS-health-impacts/internal/domain"
)

// Options control how the source file is decoded.
type Options struct {
	Delimiter rune   // field separator, ',' when zero
	Encoding  string // "utf-8" (default), "latin1", or "iso-8859-1"
}

// Column aliases accepted for the known fields, lower-cased. Anything not
// matched here is carried as a passthrough column.
var columnAliases = map[string]string{
	"storm":       "event",
	"event":       "event",
	"event_name":  "event",
	"state":       "state",
	"county":      "county",
	"county_text": "county",
	"fips":        "fips",
	"county_fips": "fips",
	"fips_code":   "fips",
	"year":        "year",
}

// naValues are the source file's missing-value markers. A field holding one
// of these is a null, distinct from a present-but-empty field.
var naValues = map[string]struct{}{
	"NA":  {},
	"N/A": {},
}

// ReadAlerts parses the source file into raw alert records. Rows shorter
// than the header are malformed and skipped; the skipped count is returned
// so the caller can surface it. Header matching is case-insensitive.
func ReadAlerts(r io.Reader, opts Options) ([]domain.RawAlertRecord, int, error) {
	decoded, err := decode(r, opts.Encoding)
	if err != nil {
		return nil, 0, err
	}

	reader := csv.NewReader(decoded)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, 0, fmt.Errorf("read alert file: %w", err)
	}
	if len(rows) < 2 {
		return nil, 0, fmt.Errorf("alert file has no data rows")
	}

	header := rows[0]
	records := make([]domain.RawAlertRecord, 0, len(rows)-1)
	skipped := 0
	for _, row := range rows[1:] {
		if len(row) < len(header) {
			skipped++
			continue
		}
		records = append(records, recordFromRow(header, row))
	}
	return records, skipped, nil
}

func recordFromRow(header, row []string) domain.RawAlertRecord {
	rec := domain.RawAlertRecord{Extra: map[string]string{}}
	for i, h := range header {
		value := row[i]
		switch columnAliases[strings.ToLower(strings.TrimSpace(h))] {
		case "event":
			rec.EventName = strings.TrimSpace(value)
		case "state":
			rec.State = strings.ToUpper(strings.TrimSpace(value))
		case "county":
			if _, na := naValues[strings.TrimSpace(value)]; !na {
				v := value
				rec.CountyText = &v
			}
		case "fips":
			if _, na := naValues[strings.TrimSpace(value)]; !na {
				rec.CountyFIPS = strings.TrimSpace(value)
			}
		case "year":
			if y, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
				rec.Year = y
			}
		default:
			rec.Extra[h] = value
		}
	}
	return rec
}

// decode wraps the reader with a charset decoder when the source is not
// UTF-8. Latin-1 sources occur when orders were transcribed on Windows.
func decode(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(encoding) {
	case "", "utf-8", "utf8":
		return r, nil
	case "latin1", "iso-8859-1":
		return charmap.ISO8859_1.NewDecoder().Reader(r), nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q", encoding)
	}
}
