package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cardstore/console/app/models"
	"github.com/cardstore/console/pkg/validate"
)

func TestProductInputFreePriceIsValid(t *testing.T) {
	errs := validate.Struct(models.ProductInput{
		Name:     "Freebie",
		Category: "gift-card",
		Price:    0,
	})
	assert.Empty(t, errs)
}

func TestProductInputNegativePriceRejected(t *testing.T) {
	errs := validate.Struct(models.ProductInput{
		Name:     "Birthday Card",
		Category: "gift-card",
		Price:    -1,
	})
	assert.Contains(t, errs, "price")
}
