package api_test

import (
	"testing"

	"shasanseva/internal/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestLoad(t *testing.T) {
	doc, err := api.Load()

	require.NoError(t, err)
	for _, path := range []string{
		"/api/v1/orders",
		"/api/v1/orders/{orderId}/payment/confirm",
		"/api/v1/admin/orders",
		"/api/v1/admin/orders/{orderId}/status",
		"/api/v1/admin/orders/{orderId}/complete",
		"/api/v1/admin/orders/{orderId}/notes",
		"/api/v1/admin/orders/{orderId}/proofs",
	} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}
}

func TestSwaggerDocIsRegistered(t *testing.T) {
	doc, err := swag.ReadDoc()

	require.NoError(t, err)
	assert.JSONEq(t, string(api.Document), doc)
}
