package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/matthieukhl/shopsight/internal/dataset"
	"github.com/matthieukhl/shopsight/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer() *Server {
	gin.SetMode(gin.TestMode)

	rows := []models.CustomerTransaction{
		{CustomerID: 1, Gender: "M", PurchaseAmount: 100, DiscountApplied: models.DiscountNo,
			SubscriptionStatus: models.StatusSubscribed, ShippingType: models.ShippingStandard,
			ItemPurchased: "Shirt", Category: "Clothing", AgeGroup: "Adult", ReviewRating: 4},
		{CustomerID: 2, Gender: "F", PurchaseAmount: 50, DiscountApplied: models.DiscountYes,
			SubscriptionStatus: models.StatusNotSubscribed, ShippingType: models.ShippingExpress,
			ItemPurchased: "Boots", Category: "Footwear", AgeGroup: "Senior", ReviewRating: 5},
	}
	return NewServer(dataset.New(rows, dataset.LoadStats{RowsRead: 2, RowsLoaded: 2}))
}

func get(t *testing.T, srv *Server, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestHealthCheck(t *testing.T) {
	srv := testServer()

	w, body := get(t, srv, "/api/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(2), body["rows"])
}

func TestListReports(t *testing.T) {
	srv := testServer()

	w, body := get(t, srv, "/api/reports")
	assert.Equal(t, http.StatusOK, w.Code)

	list, ok := body["reports"].([]interface{})
	require.True(t, ok)
	assert.Len(t, list, 10)
}

func TestRunReport(t *testing.T) {
	srv := testServer()

	w, body := get(t, srv, "/api/reports/revenue-by-gender")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "revenue-by-gender", body["report"])

	rows, ok := body["rows"].([]interface{})
	require.True(t, ok)
	require.Len(t, rows, 2)

	first, ok := rows[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "M", first["gender"])
	assert.Equal(t, float64(100), first["revenue"])
}

func TestRunReportUnknownName(t *testing.T) {
	srv := testServer()

	w, body := get(t, srv, "/api/reports/does-not-exist")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "error", body["status"])
}
