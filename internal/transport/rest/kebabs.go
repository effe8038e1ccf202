package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/lenasun/kebab-api/internal/domain"
	"github.com/lenasun/kebab-api/internal/service/kebab"
)

// kebabService defines the minimal interface needed by KebabHandler.
type kebabService interface {
	List(ctx context.Context) ([]domain.Kebab, error)
	Create(ctx context.Context, input kebab.CreateInput) (*domain.Kebab, error)
}

// KebabHandler serves the kebab menu endpoints.
type KebabHandler struct {
	svc kebabService
	log *slog.Logger
}

// NewKebabHandler creates a KebabHandler.
func NewKebabHandler(svc kebabService, logger *slog.Logger) *KebabHandler {
	return &KebabHandler{svc: svc, log: logger.With("handler", "kebabs")}
}

type addKebabRequest struct {
	Name         string   `json:"name"`
	Ingredients  []string `json:"ingredients"`
	Price        *float64 `json:"price"`
	IsVegetarian *bool    `json:"isVegetarian"`
}

type kebabResponse struct {
	ID           string    `json:"_id"`
	Name         string    `json:"name"`
	Ingredients  []string  `json:"ingredients"`
	Price        float64   `json:"price"`
	IsVegetarian bool      `json:"isVegetarian"`
	CreatedAt    time.Time `json:"createdAt"`
}

// List handles GET /get-kebabs.
func (h *KebabHandler) List(w http.ResponseWriter, r *http.Request) {
	kebabs, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]kebabResponse, len(kebabs))
	for i := range kebabs {
		resp[i] = toKebabResponse(&kebabs[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

// Add handles POST /add-kebab.
func (h *KebabHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addKebabRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), kebab.CreateInput{
		Name:         req.Name,
		Ingredients:  req.Ingredients,
		Price:        req.Price,
		IsVegetarian: req.IsVegetarian,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toKebabResponse(created))
}

func toKebabResponse(k *domain.Kebab) kebabResponse {
	ingredients := k.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}
	return kebabResponse{
		ID:           k.ID,
		Name:         k.Name,
		Ingredients:  ingredients,
		Price:        k.Price,
		IsVegetarian: k.IsVegetarian,
		CreatedAt:    k.CreatedAt,
	}
}
