package client_test

import (
	"testing"

	"galapagos/internal/core/domain/model/client"
	"galapagos/internal/core/domain/model/kernel"
	"galapagos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestNewClient(t *testing.T) {
	c, err := client.NewClient("Charles Darwin Station", "institution", "biology", "finches", "lab@cdf.org")

	require.NoError(t, err)
	require.NoError(t, c.Validate())
	assert.Equal(t, "Charles Darwin Station", c.Name())
	assert.Equal(t, "institution", c.Type())
	assert.Equal(t, "lab@cdf.org", c.Email())
	assert.Empty(t, c.OrderHistory())
}

func TestNewClient_Validation(t *testing.T) {
	_, err := client.NewClient(" ", "", "", "", "not-an-email")

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	c, err := client.NewClient("Ana", "", "", "", "")
	require.NoError(t, err)
	assert.Empty(t, c.Email())
}

func TestClient_Update(t *testing.T) {
	c, err := client.NewClient("Ana", "researcher", "", "", "ana@example.org")
	require.NoError(t, err)

	require.NoError(t, c.Update(ptr("Ana Torres"), nil, ptr("botany"), nil, nil))
	assert.Equal(t, "Ana Torres", c.Name())
	assert.Equal(t, "researcher", c.Type())
	assert.Equal(t, "botany", c.Specialty())

	err = c.Update(nil, ptr("student"), nil, nil, ptr("broken"))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, "researcher", c.Type())
}

func TestClient_AppendOrder(t *testing.T) {
	c, err := client.NewClient("Ana", "", "", "", "")
	require.NoError(t, err)
	first, second := kernel.NewID(), kernel.NewID()

	require.NoError(t, c.AppendOrder(first))
	require.NoError(t, c.AppendOrder(second))
	require.ErrorIs(t, c.AppendOrder(kernel.ID{}), kernel.ErrIDIsNotConstructed)

	assert.Equal(t, []kernel.ID{first, second}, c.OrderHistory())
}
