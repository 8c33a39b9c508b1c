package queries_test

import (
	"testing"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery(t *testing.T) {
	orderID := kernel.NewUUID()
	query, err := queries.NewGetOrderQuery(orderID)
	require.NoError(t, err)
	assert.Equal(t, orderID, query.OrderID())

	_, err = queries.NewGetOrderQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestGetOrderQuery_NotConstructed(t *testing.T) {
	var query queries.GetOrderQuery
	require.ErrorIs(t, query.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
}

func TestNewListOrdersQuery_NoFilters(t *testing.T) {
	query, err := queries.NewListOrdersQuery("", nil)
	require.NoError(t, err)
	assert.Nil(t, query.Status())
	assert.Nil(t, query.ClientID())
}

func TestNewListOrdersQuery_StatusFilter(t *testing.T) {
	query, err := queries.NewListOrdersQuery("in_transit", nil)
	require.NoError(t, err)
	require.NotNil(t, query.Status())
	assert.Equal(t, order.InTransit, *query.Status())
}

func TestNewListOrdersQuery_UnknownStatus(t *testing.T) {
	_, err := queries.NewListOrdersQuery("shipped", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewListOrdersQuery_ClientFilter(t *testing.T) {
	clientID := kernel.NewUUID()
	query, err := queries.NewListOrdersQuery("", &clientID)
	require.NoError(t, err)
	require.NotNil(t, query.ClientID())
	assert.True(t, query.ClientID().IsEqual(clientID))
}

func TestNewGetBillQuery(t *testing.T) {
	orderID := kernel.NewUUID()
	query, err := queries.NewGetBillQuery(orderID)
	require.NoError(t, err)
	assert.Equal(t, orderID, query.OrderID())

	_, err = queries.NewGetBillQuery(kernel.UUID{})
	require.Error(t, err)
}
