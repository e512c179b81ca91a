package product_test

import (
	"testing"

	"galapagos/internal/core/domain/model/product"
	"galapagos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestNewProduct(t *testing.T) {
	p, err := product.NewProduct("Sample jars", "glass, 250ml", 40, 0.3, 2.5)

	require.NoError(t, err)
	require.NoError(t, p.Validate())
	assert.Equal(t, "Sample jars", p.Name())
	assert.Equal(t, 40, p.StockAvailable())
	assert.InDelta(t, 0.3, p.WeightKg(), 1e-9)

	_, err = product.NewProduct("", "", -1, 0, -2)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	for _, param := range []string{"stockAvailable", "weightKg", "unitPrice"} {
		assert.Contains(t, err.Error(), param)
	}
}

func TestProduct_CheckStock(t *testing.T) {
	p, err := product.NewProduct("Nets", "", 5, 1, 10)
	require.NoError(t, err)

	require.NoError(t, p.CheckStock(5))
	err = p.CheckStock(6)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.True(t, errs.IsValidation(err))
}

func TestProduct_Update(t *testing.T) {
	p, err := product.NewProduct("Nets", "", 5, 1, 10)
	require.NoError(t, err)

	require.NoError(t, p.Update(nil, ptr("fine mesh"), ptr(8), nil, nil))
	assert.Equal(t, "fine mesh", p.Description())
	assert.Equal(t, 8, p.StockAvailable())

	err = p.Update(ptr("Big nets"), nil, ptr(-1), nil, nil)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, "Nets", p.Name())
}
