package domain

import (
	"strings"
	"time"
)

// GenreNone is the sentinel artist genre meaning no usable genre was found.
// It is distinct from an absent value and is never served as a genre.
const GenreNone = "none"

// Song is a normalized track as persisted in the songs collection.
// Songs are created once during seeding and never updated.
type Song struct {
	ID              string
	TrackName       string
	ArtistName      string
	TrackDurationMS *float64
	TrackID         string
	Embed           string
	ArtistGenre     string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Persistable reports whether the song satisfies the seeding invariant:
// both names are non-empty and the genre is not the sentinel.
func (s Song) Persistable() bool {
	return s.TrackName != "" && s.ArtistName != "" && s.ArtistGenre != GenreNone
}

// Validate enforces the storage constraints of a song document.
func (s Song) Validate() error {
	var errs []FieldError
	if strings.TrimSpace(s.TrackName) == "" {
		errs = append(errs, FieldError{Field: "track_name", Message: "required"})
	}
	if strings.TrimSpace(s.ArtistName) == "" {
		errs = append(errs, FieldError{Field: "artist_name", Message: "required"})
	}
	if s.TrackDurationMS != nil && *s.TrackDurationMS < 0 {
		errs = append(errs, FieldError{Field: "track_duration_ms", Message: "must be >= 0"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}
