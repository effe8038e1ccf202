package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/lenasun/kebab-api/internal/domain"
)

// songService defines the minimal interface needed by SongHandler.
type songService interface {
	Genres(ctx context.Context) ([]string, error)
	Refresh(ctx context.Context) ([]string, error)
	RandomSong(ctx context.Context, genre string) (*domain.Song, error)
}

// SongHandler serves song and genre endpoints.
type SongHandler struct {
	svc songService
	log *slog.Logger
}

// NewSongHandler creates a SongHandler.
func NewSongHandler(svc songService, logger *slog.Logger) *SongHandler {
	return &SongHandler{svc: svc, log: logger.With("handler", "songs")}
}

type songResponse struct {
	ID              string    `json:"_id"`
	TrackName       string    `json:"track_name"`
	ArtistName      string    `json:"artist_name"`
	TrackDurationMS *float64  `json:"track_duration_ms,omitempty"`
	TrackID         string    `json:"track_id,omitempty"`
	Embed           string    `json:"embed"`
	ArtistGenre     string    `json:"artist_genre"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type genresResponse struct {
	Genres []string `json:"genres"`
	Count  int      `json:"count"`
}

// RandomByGenre handles GET /get-random-song-by-genre?genre=X.
func (h *SongHandler) RandomByGenre(w http.ResponseWriter, r *http.Request) {
	genre := r.URL.Query().Get("genre")
	if genre == "" {
		writeError(w, http.StatusBadRequest, "genre query param required")
		return
	}

	song, err := h.svc.RandomSong(r.Context(), genre)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "No songs found for genre: "+genre)
			return
		}
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSongResponse(song))
}

// Genres handles GET /get-genres.
func (h *SongHandler) Genres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.svc.Genres(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toGenresResponse(genres))
}

// RefreshGenres handles POST /refresh-genres.
func (h *SongHandler) RefreshGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.svc.Refresh(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.log.InfoContext(r.Context(), "genres refreshed", slog.Int("count", len(genres)))
	writeJSON(w, http.StatusOK, toGenresResponse(genres))
}

func toGenresResponse(genres []string) genresResponse {
	if genres == nil {
		genres = []string{}
	}
	return genresResponse{Genres: genres, Count: len(genres)}
}

func toSongResponse(s *domain.Song) songResponse {
	return songResponse{
		ID:              s.ID,
		TrackName:       s.TrackName,
		ArtistName:      s.ArtistName,
		TrackDurationMS: s.TrackDurationMS,
		TrackID:         s.TrackID,
		Embed:           s.Embed,
		ArtistGenre:     s.ArtistGenre,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}
