package tracks

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ParseFile opens a dataset and parses it according to its extension:
// .json is a JSON array of objects, anything else is CSV with a header row.
func ParseFile(path string) ([]RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		records, err := ParseJSON(f)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
		}
		return records, nil
	}

	records, err := ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return records, nil
}

// ParseCSV reads a CSV dataset. The first row names the columns. Headers and
// values are trimmed, blank rows are skipped and short rows leave their
// trailing columns absent.
func ParseCSV(r io.Reader) ([]RawRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow variable column count
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	var records []RawRecord
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		if isBlankRow(row) {
			continue
		}

		fields := make(map[string]string, len(header))
		genres := AbsentGenre()
		for i, col := range header {
			if i >= len(row) || col == "" {
				continue
			}
			v := strings.TrimSpace(row[i])
			fields[col] = v
			if col == ColArtistGenres {
				genres = TextGenre(v)
			}
		}

		records = append(records, RawRecord{Fields: fields, Genres: genres})
	}

	return records, nil
}

// ParseJSON reads a dataset given as a JSON array of objects. Scalar values
// are stored as text; artist_genres keeps its shape (array, string or null).
func ParseJSON(r io.Reader) ([]RawRecord, error) {
	var rows []map[string]any
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode rows: %w", err)
	}

	records := make([]RawRecord, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}

		fields := make(map[string]string, len(row))
		genres := AbsentGenre()
		for col, val := range row {
			col = strings.TrimSpace(col)
			if col == ColArtistGenres {
				genres = jsonGenre(val)
			}
			if val == nil {
				continue
			}
			fields[col] = strings.TrimSpace(stringify(val))
		}

		records = append(records, RawRecord{Fields: fields, Genres: genres})
	}

	return records, nil
}

func jsonGenre(v any) GenreField {
	switch t := v.(type) {
	case nil:
		return AbsentGenre()
	case []any:
		return ListGenre(t...)
	case string:
		return TextGenre(t)
	default:
		return TextGenre(stringify(t))
	}
}

func isBlankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
