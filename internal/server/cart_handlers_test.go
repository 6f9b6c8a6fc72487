package server

import (
	"fmt"
	"net/http"
	"testing"

	"mosaic/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createCatalog(t *testing.T, app *fiber.App, token string) (models.Category, models.Product) {
	t.Helper()

	req := jsonRequest(t, http.MethodPost, "/api/categories/", map[string]string{
		"name":        "Electronics",
		"description": "Gadgets",
	}, token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var category models.Category
	decodeBody(t, resp, &category)

	req = jsonRequest(t, http.MethodPost, "/api/products/", map[string]any{
		"name":        "Widget",
		"description": "A widget",
		"price":       9.99,
		"category_id": category.ID,
	}, token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var product models.Product
	decodeBody(t, resp, &product)

	return category, product
}

func TestCartFlow(t *testing.T) {
	app, _ := newTestServer(t)
	token, _ := signupUser(t, app, "cart-user")
	category, product := createCatalog(t, app, token)

	// Product responses carry the expanded category.
	require.NotNil(t, product.Category)
	assert.Equal(t, category.ID, product.Category.ID)

	t.Run("Get before any add", func(t *testing.T) {
		req := jsonRequest(t, http.MethodGet, "/api/cart/", nil, token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		_ = resp.Body.Close()
	})

	t.Run("Add creates cart lazily", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPost, "/api/cart/add", map[string]any{
			"productId": product.ID,
			"quantity":  2,
		}, token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var cart models.Cart
		decodeBody(t, resp, &cart)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, 2, cart.Items[0].Quantity)
		require.NotNil(t, cart.Items[0].Product)
		assert.Equal(t, "Widget", cart.Items[0].Product.Name)
	})

	t.Run("Repeated add increments quantity", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPost, "/api/cart/add", map[string]any{
			"productId": product.ID,
			"quantity":  3,
		}, token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var cart models.Cart
		decodeBody(t, resp, &cart)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, 5, cart.Items[0].Quantity)
	})

	t.Run("Update sets quantity", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPut, "/api/cart/update", map[string]any{
			"productId": product.ID,
			"quantity":  1,
		}, token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var cart models.Cart
		decodeBody(t, resp, &cart)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, 1, cart.Items[0].Quantity)
	})

	t.Run("Update to zero removes item", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPut, "/api/cart/update", map[string]any{
			"productId": product.ID,
			"quantity":  0,
		}, token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var cart models.Cart
		decodeBody(t, resp, &cart)
		assert.Empty(t, cart.Items)
	})

	t.Run("Update absent item", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPut, "/api/cart/update", map[string]any{
			"productId": product.ID,
			"quantity":  1,
		}, token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		_ = resp.Body.Close()
	})

	t.Run("Add unknown product", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPost, "/api/cart/add", map[string]any{
			"productId": 99999,
			"quantity":  1,
		}, token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		_ = resp.Body.Close()
	})

	t.Run("Remove is idempotent", func(t *testing.T) {
		// Re-add, remove, then remove again.
		req := jsonRequest(t, http.MethodPost, "/api/cart/add", map[string]any{
			"productId": product.ID,
		}, token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		_ = resp.Body.Close()

		for i := 0; i < 2; i++ {
			req := jsonRequest(t, http.MethodDelete,
				fmt.Sprintf("/api/cart/remove/%d", product.ID), nil, token)
			resp, err := app.Test(req)
			require.NoError(t, err)
			require.Equal(t, http.StatusOK, resp.StatusCode)

			var cart models.Cart
			decodeBody(t, resp, &cart)
			assert.Empty(t, cart.Items)
		}
	})
}

func TestCatalogCRUD(t *testing.T) {
	app, _ := newTestServer(t)
	token, _ := signupUser(t, app, "catalog-user")
	category, product := createCatalog(t, app, token)

	t.Run("List categories", func(t *testing.T) {
		req := jsonRequest(t, http.MethodGet, "/api/categories/", nil, token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var categories []models.Category
		decodeBody(t, resp, &categories)
		require.Len(t, categories, 1)
		assert.Equal(t, "Electronics", categories[0].Name)
	})

	t.Run("Update category", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPut, fmt.Sprintf("/api/categories/%d", category.ID),
			map[string]string{"name": "Updated"}, token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got models.Category
		decodeBody(t, resp, &got)
		assert.Equal(t, "Updated", got.Name)
	})

	t.Run("Product create with unknown category", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPost, "/api/products/", map[string]any{
			"name":        "Orphan",
			"price":       1.0,
			"category_id": 99999,
		}, token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		_ = resp.Body.Close()
	})

	t.Run("Product list carries category", func(t *testing.T) {
		req := jsonRequest(t, http.MethodGet, "/api/products/", nil, token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var products []models.Product
		decodeBody(t, resp, &products)
		require.Len(t, products, 1)
		require.NotNil(t, products[0].Category)
	})

	t.Run("Update product price", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPut, fmt.Sprintf("/api/products/%d", product.ID),
			map[string]any{"price": 19.99}, token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got models.Product
		decodeBody(t, resp, &got)
		assert.InDelta(t, 19.99, got.Price, 0.001)
	})

	t.Run("Negative price rejected", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPut, fmt.Sprintf("/api/products/%d", product.ID),
			map[string]any{"price": -1.0}, token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		_ = resp.Body.Close()
	})

	t.Run("Delete product", func(t *testing.T) {
		req := jsonRequest(t, http.MethodDelete, fmt.Sprintf("/api/products/%d", product.ID), nil, token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		_ = resp.Body.Close()

		req = jsonRequest(t, http.MethodGet, fmt.Sprintf("/api/products/%d", product.ID), nil, token)
		resp, err = app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		_ = resp.Body.Close()
	})
}
