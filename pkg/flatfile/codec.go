package flatfile

import (
	"fmt"
	"strings"
)

// Record is one table row, field name -> raw string value.
type Record map[string]string

const (
	delimiter = ','
	quote     = '"'
)

// Encode joins the record's values in field order into one delimited line.
// A value containing the delimiter or a quote is wrapped in quotes with inner
// quotes doubled, so Decode is its exact inverse. Values containing CR or LF
// cannot be represented in a line-oriented table and are rejected.
func Encode(rec Record, fields []string) (string, error) {
	var b strings.Builder
	for i, field := range fields {
		if i > 0 {
			b.WriteByte(delimiter)
		}
		v := rec[field]
		if strings.ContainsAny(v, "\r\n") {
			return "", fmt.Errorf("field %q: %w", field, errLineBreak)
		}
		if strings.ContainsRune(v, delimiter) || strings.ContainsRune(v, quote) {
			b.WriteByte(quote)
			b.WriteString(strings.ReplaceAll(v, `"`, `""`))
			b.WriteByte(quote)
		} else {
			b.WriteString(v)
		}
	}
	return b.String(), nil
}

// Decode splits one line into a record using the same quoting grammar as
// Encode. Rows shorter than the header map their missing fields to "".
func Decode(line string, fields []string) Record {
	values := splitLine(line)
	rec := make(Record, len(fields))
	for i, field := range fields {
		if i < len(values) {
			rec[field] = values[i]
		} else {
			rec[field] = ""
		}
	}
	return rec
}

// DecodeTable parses a whole table. The first non-empty line is the header
// defining field order (names trimmed); every following non-blank line decodes
// to one record. Blank or empty content yields no records.
func DecodeTable(content string) ([]string, []Record) {
	lines := strings.Split(content, "\n")

	var fields []string
	var records []Record
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if fields == nil {
			for _, name := range splitLine(line) {
				fields = append(fields, strings.TrimSpace(name))
			}
			continue
		}
		records = append(records, Decode(line, fields))
	}
	return fields, records
}

// splitLine is the quote-aware inverse of the joining in Encode.
func splitLine(line string) []string {
	var (
		values []string
		cur    strings.Builder
		quoted bool
	)
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quoted:
			if c == quote {
				if i+1 < len(line) && line[i+1] == quote {
					cur.WriteByte(quote)
					i++
				} else {
					quoted = false
				}
			} else {
				cur.WriteByte(c)
			}
		case c == quote && cur.Len() == 0:
			quoted = true
		case c == delimiter:
			values = append(values, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	values = append(values, cur.String())
	return values
}
