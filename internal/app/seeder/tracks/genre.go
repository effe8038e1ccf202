package tracks

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/titanous/json5"

	"github.com/lenasun/kebab-api/internal/domain"
)

// GenreKind tags the shape an artist_genres value arrived in.
type GenreKind uint8

const (
	GenreAbsent GenreKind = iota
	GenreList
	GenreText
)

func (k GenreKind) String() string {
	switch k {
	case GenreList:
		return "list"
	case GenreText:
		return "text"
	default:
		return "absent"
	}
}

// GenreField is the decoded artist_genres value of one record.
type GenreField struct {
	Kind  GenreKind
	Items []any
	Text  string
}

// AbsentGenre is a missing or null artist_genres value.
func AbsentGenre() GenreField { return GenreField{Kind: GenreAbsent} }

// ListGenre is an artist_genres value that is already a sequence.
func ListGenre(items ...any) GenreField { return GenreField{Kind: GenreList, Items: items} }

// TextGenre is an artist_genres value given as a string, usually a JSON-ish array literal.
func TextGenre(s string) GenreField { return GenreField{Kind: GenreText, Text: s} }

// ExtractGenre picks a single representative genre from v. It never fails:
// anything it cannot interpret yields domain.GenreNone. Cases are tried in order:
//
//	absent                      → none
//	list                        → first element (none when empty)
//	text, blank or "[]"         → none
//	text, relaxed JSON array    → first element
//	anything else               → none
func ExtractGenre(v GenreField) string {
	switch v.Kind {
	case GenreList:
		return firstGenre(v.Items)
	case GenreText:
		s := strings.TrimSpace(v.Text)
		if s == "" || s == "[]" {
			return domain.GenreNone
		}

		var parsed any
		if err := json5.Unmarshal([]byte(s), &parsed); err != nil {
			return domain.GenreNone
		}
		items, ok := parsed.([]any)
		if !ok {
			return domain.GenreNone
		}
		return firstGenre(items)
	default:
		return domain.GenreNone
	}
}

func firstGenre(items []any) string {
	if len(items) == 0 {
		return domain.GenreNone
	}
	g := strings.TrimSpace(stringify(items[0]))
	if g == "" {
		return domain.GenreNone
	}
	return g
}

// stringify renders a decoded JSON value as display text.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case []any:
		parts := make([]string, len(t))
		for i, item := range t {
			if item != nil {
				parts[i] = stringify(item)
			}
		}
		return strings.Join(parts, ",")
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
