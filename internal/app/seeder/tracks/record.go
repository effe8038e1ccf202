// Package tracks turns raw track dataset rows into songs ready for insertion.
// Parsing reads files; normalization is pure.
package tracks

import (
	"math"
	"strconv"
	"strings"

	"github.com/lenasun/kebab-api/internal/domain"
)

// Dataset column names.
const (
	ColTrackName       = "track_name"
	ColArtistName      = "artist_name"
	ColTrackDurationMS = "track_duration_ms"
	ColTrackID         = "track_id"
	ColArtistGenres    = "artist_genres"
)

// RawRecord is one dataset row. Fields holds every column keyed by name;
// Genres is the artist_genres column decoded into its variant.
type RawRecord struct {
	Fields map[string]string
	Genres GenreField
}

// Normalize maps a raw record to a candidate song. It does not decide
// whether the song is persistable; see Filter.
func Normalize(rec RawRecord) domain.Song {
	trackID := rec.Fields[ColTrackID]
	return domain.Song{
		TrackName:       rec.Fields[ColTrackName],
		ArtistName:      rec.Fields[ColArtistName],
		TrackDurationMS: parseDuration(rec.Fields[ColTrackDurationMS]),
		TrackID:         trackID,
		Embed:           BuildEmbed(trackID),
		ArtistGenre:     ExtractGenre(rec.Genres),
	}
}

// NormalizeAll maps every record, preserving order.
func NormalizeAll(records []RawRecord) []domain.Song {
	songs := make([]domain.Song, len(records))
	for i := range records {
		songs[i] = Normalize(records[i])
	}
	return songs
}

// Persistable reports whether s may be stored: both names present and a
// usable genre.
func Persistable(s domain.Song) bool {
	return s.Persistable()
}

// Filter keeps only songs that satisfy the persistence invariant, in order.
func Filter(songs []domain.Song) []domain.Song {
	kept := make([]domain.Song, 0, len(songs))
	for _, s := range songs {
		if Persistable(s) {
			kept = append(kept, s)
		}
	}
	return kept
}

// parseDuration coerces the duration column permissively. Blank or
// non-numeric values become absent; range checks belong to storage.
func parseDuration(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
