package kebab

import (
	"math"
	"strings"

	"github.com/lenasun/kebab-api/internal/domain"
)

// CreateInput holds the parameters for adding a kebab.
type CreateInput struct {
	Name         string
	Ingredients  []string
	Price        *float64
	IsVegetarian *bool // nil = false
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}

	if len(cleanIngredients(i.Ingredients)) == 0 {
		errs = append(errs, domain.FieldError{Field: "ingredients", Message: "at least one ingredient required"})
	}

	switch {
	case i.Price == nil:
		errs = append(errs, domain.FieldError{Field: "price", Message: "required"})
	case math.IsNaN(*i.Price) || math.IsInf(*i.Price, 0):
		errs = append(errs, domain.FieldError{Field: "price", Message: "must be a finite number"})
	case *i.Price < 0:
		errs = append(errs, domain.FieldError{Field: "price", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i CreateInput) toDomain() domain.Kebab {
	k := domain.Kebab{
		Name:        strings.TrimSpace(i.Name),
		Ingredients: cleanIngredients(i.Ingredients),
	}
	if i.Price != nil {
		k.Price = *i.Price
	}
	if i.IsVegetarian != nil {
		k.IsVegetarian = *i.IsVegetarian
	}
	return k
}

// cleanIngredients trims each ingredient and drops blank ones.
func cleanIngredients(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
