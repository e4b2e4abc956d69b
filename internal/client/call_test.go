package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GTDGit/seller_hub/internal/contract"
)

func TestCall_ChecksInputAgainstRegistry(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { hits++ }))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = c.call(ctx, contract.ProductsUpdate, contract.ID(1), nil, contract.CreateProductInput{})
	assert.Error(t, err)

	_, err = c.call(ctx, contract.OrdersSync, nil, nil, contract.BulkStatusInput{})
	assert.Error(t, err)

	_, err = c.call(ctx, contract.ProductsCreate, nil, nil, nil)
	assert.Error(t, err)

	_, err = c.call(ctx, contract.ProductsGet, nil, nil, nil)
	assert.Error(t, err, "missing :id")

	_, err = c.call(ctx, "products.delete", nil, nil, nil)
	assert.Error(t, err)

	assert.Equal(t, 0, hits)
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "products.get/3", cacheKey(contract.ProductsGet, contract.ID(3), nil))
	assert.Equal(t, "orders.list?status=PACKED",
		cacheKey(contract.OrdersList, nil, contract.ListOrdersQuery{Status: "PACKED"}.Values()))
}
