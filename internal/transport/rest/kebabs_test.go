package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lenasun/kebab-api/internal/domain"
	"github.com/lenasun/kebab-api/internal/service/kebab"
)

func newKebabHandler(svc *kebabServiceMock) *KebabHandler {
	return NewKebabHandler(svc, slog.Default())
}

func TestKebabList(t *testing.T) {
	t.Parallel()

	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	svc := &kebabServiceMock{
		ListFunc: func(context.Context) ([]domain.Kebab, error) {
			return []domain.Kebab{
				{ID: "a1", Name: "Doner", Ingredients: []string{"lamb", "onion"}, Price: 8.5, CreatedAt: created},
				{ID: "b2", Name: "Falafel", Price: 7, IsVegetarian: true, CreatedAt: created},
			}, nil
		},
	}

	rec := httptest.NewRecorder()
	newKebabHandler(svc).List(rec, httptest.NewRequest(http.MethodGet, "/get-kebabs", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[
		{"_id":"a1","name":"Doner","ingredients":["lamb","onion"],"price":8.5,"isVegetarian":false,"createdAt":"2025-01-02T03:04:05Z"},
		{"_id":"b2","name":"Falafel","ingredients":[],"price":7,"isVegetarian":true,"createdAt":"2025-01-02T03:04:05Z"}
	]`, rec.Body.String())
}

func TestKebabList_Empty(t *testing.T) {
	t.Parallel()

	svc := &kebabServiceMock{
		ListFunc: func(context.Context) ([]domain.Kebab, error) { return nil, nil },
	}

	rec := httptest.NewRecorder()
	newKebabHandler(svc).List(rec, httptest.NewRequest(http.MethodGet, "/get-kebabs", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestKebabList_Failure(t *testing.T) {
	t.Parallel()

	svc := &kebabServiceMock{
		ListFunc: func(context.Context) ([]domain.Kebab, error) { return nil, errors.New("boom") },
	}

	rec := httptest.NewRecorder()
	newKebabHandler(svc).List(rec, httptest.NewRequest(http.MethodGet, "/get-kebabs", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}

func TestKebabAdd_Success(t *testing.T) {
	t.Parallel()

	svc := &kebabServiceMock{
		CreateFunc: func(_ context.Context, in kebab.CreateInput) (*domain.Kebab, error) {
			return &domain.Kebab{
				ID:           "c3",
				Name:         in.Name,
				Ingredients:  in.Ingredients,
				Price:        *in.Price,
				IsVegetarian: *in.IsVegetarian,
			}, nil
		},
	}

	body := `{"name":"Halloumi","ingredients":["halloumi","pepper"],"price":9.25,"isVegetarian":true}`
	rec := httptest.NewRecorder()
	newKebabHandler(svc).Add(rec, httptest.NewRequest(http.MethodPost, "/add-kebab", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, svc.CreateCalls(), 1)

	in := svc.CreateCalls()[0].Input
	assert.Equal(t, "Halloumi", in.Name)
	assert.Equal(t, []string{"halloumi", "pepper"}, in.Ingredients)
	require.NotNil(t, in.Price)
	assert.Equal(t, 9.25, *in.Price)
	require.NotNil(t, in.IsVegetarian)
	assert.True(t, *in.IsVegetarian)

	assert.Contains(t, rec.Body.String(), `"_id":"c3"`)
}

func TestKebabAdd_AbsentOptionalFieldsStayNil(t *testing.T) {
	t.Parallel()

	svc := &kebabServiceMock{
		CreateFunc: func(_ context.Context, in kebab.CreateInput) (*domain.Kebab, error) {
			return &domain.Kebab{ID: "d4", Name: in.Name}, nil
		},
	}

	rec := httptest.NewRecorder()
	newKebabHandler(svc).Add(rec, httptest.NewRequest(http.MethodPost, "/add-kebab", strings.NewReader(`{"name":"Plain"}`)))

	require.Equal(t, http.StatusCreated, rec.Code)
	in := svc.CreateCalls()[0].Input
	assert.Nil(t, in.Price)
	assert.Nil(t, in.IsVegetarian)
}

func TestKebabAdd_InvalidBody(t *testing.T) {
	t.Parallel()

	for _, body := range []string{``, `{`, `[]`, `{"price":"cheap"}`} {
		svc := &kebabServiceMock{}

		rec := httptest.NewRecorder()
		newKebabHandler(svc).Add(rec, httptest.NewRequest(http.MethodPost, "/add-kebab", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
		assert.JSONEq(t, `{"error":"invalid request body"}`, rec.Body.String(), "body %q", body)
		assert.Empty(t, svc.CreateCalls())
	}
}

func TestKebabAdd_BodyTooLarge(t *testing.T) {
	t.Parallel()

	svc := &kebabServiceMock{}
	body := `{"name":"` + strings.Repeat("x", maxBodyBytes) + `"}`

	rec := httptest.NewRecorder()
	newKebabHandler(svc).Add(rec, httptest.NewRequest(http.MethodPost, "/add-kebab", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, svc.CreateCalls())
}

func TestKebabAdd_ValidationError(t *testing.T) {
	t.Parallel()

	svc := &kebabServiceMock{
		CreateFunc: func(context.Context, kebab.CreateInput) (*domain.Kebab, error) {
			return nil, domain.NewValidationErrors([]domain.FieldError{
				{Field: "name", Message: "required"},
				{Field: "price", Message: "must be >= 0"},
			})
		},
	}

	rec := httptest.NewRecorder()
	newKebabHandler(svc).Add(rec, httptest.NewRequest(http.MethodPost, "/add-kebab", strings.NewReader(`{"price":-1}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{
		"error":"validation: 2 errors",
		"fields":[
			{"field":"name","message":"required"},
			{"field":"price","message":"must be >= 0"}
		]
	}`, rec.Body.String())
}

func TestKebabAdd_ServiceErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "already exists", err: domain.ErrAlreadyExists, wantStatus: http.StatusConflict},
		{name: "conflict", err: domain.ErrConflict, wantStatus: http.StatusConflict},
		{name: "bare validation", err: domain.ErrValidation, wantStatus: http.StatusBadRequest},
		{name: "unknown", err: errors.New("write failed"), wantStatus: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &kebabServiceMock{
				CreateFunc: func(context.Context, kebab.CreateInput) (*domain.Kebab, error) { return nil, tt.err },
			}

			rec := httptest.NewRecorder()
			newKebabHandler(svc).Add(rec, httptest.NewRequest(http.MethodPost, "/add-kebab", strings.NewReader(`{"name":"x","ingredients":["y"],"price":1}`)))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
