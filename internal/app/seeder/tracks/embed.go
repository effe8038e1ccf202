package tracks

import "strings"

// Spotify track player markup, split around the percent-encoded track id.
// The provider matches it byte-for-byte.
const (
	embedPrefix = `<iframe src="https://open.spotify.com/embed/track/`
	embedSuffix = `" width="300" height="380" frameborder="0" allowtransparency="true" allow="encrypted-media"></iframe>`
)

// BuildEmbed returns the player markup for trackID, or "" when the id is blank.
func BuildEmbed(trackID string) string {
	id := strings.TrimSpace(trackID)
	if id == "" {
		return ""
	}
	return embedPrefix + encodeURIComponent(id) + embedSuffix
}

const upperhex = "0123456789ABCDEF"

// encodeURIComponent percent-encodes every byte except the URI component
// unreserved marks: A-Z a-z 0-9 - _ . ! ~ * ' ( ).
func encodeURIComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreservedMark(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func isUnreservedMark(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
