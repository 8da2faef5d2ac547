package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/retail_shop/internal/models"
)

func TestCustomerSearchRecordsQuery(t *testing.T) {
	env := newTestEnv(t)
	env.seedProducts()
	cookie := env.accessToken(501, 7, "customer")

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/search?q=usb+hub", nil, cookie)
	require.NoError(t, env.Search.Handler(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Total    int64            `json:"total"`
		Products []models.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, int64(1), resp.Total)
	require.Equal(t, 2003, resp.Products[0].PID)

	var records []models.SearchRecord
	require.NoError(t, env.DB.Find(&records).Error)
	require.Len(t, records, 1)
	require.Equal(t, 501, records[0].CID)
	require.Equal(t, 7, records[0].SessionNo)
	require.Equal(t, "usb hub", records[0].Query)
}

func TestCustomerSearchEmptyQueryStillRecorded(t *testing.T) {
	env := newTestEnv(t)
	env.seedProducts()
	cookie := env.accessToken(501, 7, "customer")

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/search?q=", nil, cookie)
	require.NoError(t, env.Search.Handler(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var count int64
	require.NoError(t, env.DB.Model(&models.SearchRecord{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestAdminSearchExactPID(t *testing.T) {
	env := newTestEnv(t)
	env.seedProducts()

	rec, c := env.doJSONRequest(http.MethodGet, "/admin/search?q=2003", nil)
	require.NoError(t, env.Product.AdminSearch(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Products []models.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Products, 1)
	require.Equal(t, 2003, resp.Products[0].PID)

	var count int64
	require.NoError(t, env.DB.Model(&models.SearchRecord{}).Count(&count).Error)
	require.Zero(t, count)
}
