package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"unicode/utf8"
)

// DecodeError indicates the uploaded bytes could not be decoded into
// a table. It is a transport-level failure distinct from schema
// mapping errors.
type DecodeError struct {
	Message string
	Cause   error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("decode error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("decode error: %s", e.Message)
}

func (e *DecodeError) Unwrap() error { return e.Cause }

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode turns uploaded file bytes into a Table. Only CSV uploads are
// supported at this boundary; other extensions fail with a
// DecodeError.
func Decode(filename string, content []byte) (*Table, error) {
	if !hasCSVExtension(filename) {
		return nil, &DecodeError{Message: "unsupported file type; upload a CSV file"}
	}
	return DecodeCSV(content)
}

// DecodeCSV parses CSV bytes into a Table. A UTF-8 BOM is stripped and
// non-UTF-8 input falls back to a Latin-1 reading so legacy exports
// still decode.
func DecodeCSV(content []byte) (*Table, error) {
	content = bytes.TrimPrefix(content, utf8BOM)
	if !utf8.Valid(content) {
		content = latin1ToUTF8(content)
	}

	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	all, err := reader.ReadAll()
	if err != nil {
		return nil, &DecodeError{Message: "malformed CSV", Cause: err}
	}
	if len(all) == 0 {
		return nil, &DecodeError{Message: "empty file"}
	}

	columns := all[0]
	rows := make([]map[string]string, 0, len(all)-1)
	for _, record := range all[1:] {
		row := make(map[string]string, len(columns))
		for i, col := range columns {
			if i < len(record) {
				row[col] = record[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}

	return NewTable(columns, rows), nil
}

// latin1ToUTF8 reinterprets each byte as its Latin-1 code point. Every
// byte sequence is valid Latin-1, so this cannot fail.
func latin1ToUTF8(content []byte) []byte {
	out := make([]byte, 0, len(content)*2)
	for _, b := range content {
		out = utf8.AppendRune(out, rune(b))
	}
	return out
}
