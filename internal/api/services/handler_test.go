package servicesapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vastuguru-api/internal/domain/services"
	"vastuguru-api/internal/infra/memstore"
	"vastuguru-api/internal/infra/stripe"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakePrices struct {
	prices []stripe.CatalogPrice
	err    error
}

func (f fakePrices) ListPrices(context.Context) ([]stripe.CatalogPrice, error) {
	return f.prices, f.err
}

func newRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.GET("/services", h.ListServices)
	r.GET("/services/:id", h.GetService)
	r.GET("/services/slug/:slug", h.GetServiceBySlug)
	r.POST("/admin/services", h.CreateService)
	r.PUT("/admin/services/:id", h.UpdateService)
	r.DELETE("/admin/services/:id", h.DeleteService)
	r.POST("/admin/sync-services", h.SyncServicesFromStripe)
	return r
}

func request(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func seed(t *testing.T, store *memstore.Store, s services.Service) services.Service {
	t.Helper()
	require.NoError(t, services.EnsureSlug(context.Background(), store, &s))
	require.NoError(t, store.Create(context.Background(), &s))
	return s
}

func TestCreateService_ThenFetchBySlug(t *testing.T) {
	store := memstore.New()
	r := newRouter(&Handler{Repo: store, Log: zap.NewNop()})

	rr := request(r, http.MethodPost, "/admin/services",
		`{"title":"Vastu for Home","price":25000,"description":"Full home audit","features":["Site visit"],"category":"vastu","serviceType":"package"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var created struct {
		Data services.Service `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, "vastu-for-home", created.Data.Slug)
	assert.True(t, created.Data.IsActive)

	rr = request(r, http.MethodGet, "/services/slug/vastu-for-home", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), created.Data.ID)
}

func TestCreateService_RejectsBadPrice(t *testing.T) {
	r := newRouter(&Handler{Repo: memstore.New(), Log: zap.NewNop()})

	tests := map[string]string{
		"missing":     `{"title":"x","category":"vastu","serviceType":"package"}`,
		"negative":    `{"title":"x","price":-5,"category":"vastu","serviceType":"package"}`,
		"non-numeric": `{"title":"x","price":"lots","category":"vastu","serviceType":"package"}`,
		"category":    `{"title":"x","price":5,"category":"tarot","serviceType":"package"}`,
		"serviceType": `{"title":"x","price":5,"category":"vastu","serviceType":"course"}`,
		"no title":    `{"price":5,"category":"vastu","serviceType":"package"}`,
	}
	for name, body := range tests {
		rr := request(r, http.MethodPost, "/admin/services", body)
		assert.Equal(t, http.StatusBadRequest, rr.Code, name)
	}
}

func TestUpdateService_KeepsActiveFlagWhenOmitted(t *testing.T) {
	store := memstore.New()
	s := seed(t, store, services.Service{Title: "Retired", Price: 100, Category: "vastu", ServiceType: "package", IsActive: false})
	r := newRouter(&Handler{Repo: store, Log: zap.NewNop()})

	rr := request(r, http.MethodPut, "/admin/services/"+s.ID,
		`{"title":"Retired","price":200,"category":"vastu","serviceType":"package"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	got, err := store.Get(context.Background(), s.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
	assert.EqualValues(t, 200, got.Price)
}

func TestListServices_FiltersAndPages(t *testing.T) {
	store := memstore.New()
	seed(t, store, services.Service{Title: "A", Price: 30000, Category: "astrology", ServiceType: "package", IsActive: true})
	seed(t, store, services.Service{Title: "B", Price: 10000, Category: "astrology", ServiceType: "package", IsActive: true})
	seed(t, store, services.Service{Title: "C", Price: 5000, Category: "astrology", ServiceType: "package", IsActive: false})
	seed(t, store, services.Service{Title: "D", Price: 1000, Category: "vastu", ServiceType: "package", IsActive: true})

	r := newRouter(&Handler{Repo: store, Log: zap.NewNop()})
	rr := request(r, http.MethodGet, "/services?serviceType=package&category=astrology&isActive=true&limit=1", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp ListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.EqualValues(t, 2, resp.Total)
	assert.Equal(t, 1, resp.Limit)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "B", resp.Data[0].Title)
}

func TestUpdateAndDeleteService(t *testing.T) {
	store := memstore.New()
	s := seed(t, store, services.Service{Title: "Old", Price: 100, Category: "vastu", ServiceType: "package", IsActive: true})
	r := newRouter(&Handler{Repo: store, Log: zap.NewNop()})

	rr := request(r, http.MethodPut, "/admin/services/"+s.ID,
		`{"title":"New","price":70000,"category":"vastu","serviceType":"package","isActive":false}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	got, err := store.Get(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Equal(t, "old", got.Slug)
	assert.Equal(t, "New", got.Title)
	assert.EqualValues(t, 70000, got.Price)
	assert.False(t, got.IsActive)

	assert.Equal(t, http.StatusNoContent, request(r, http.MethodDelete, "/admin/services/"+s.ID, "").Code)
	assert.Equal(t, http.StatusNotFound, request(r, http.MethodDelete, "/admin/services/"+s.ID, "").Code)
	assert.Equal(t, http.StatusNotFound, request(r, http.MethodGet, "/services/"+s.ID, "").Code)
}

func TestSyncServicesFromStripe(t *testing.T) {
	store := memstore.New()
	existingPrice := "price_old"
	old := seed(t, store, services.Service{Title: "Old name", Price: 1, Category: "vastu", ServiceType: "package", IsActive: true, StripePriceID: &existingPrice})

	prices := []stripe.CatalogPrice{
		{ID: "price_old", ProductID: "prod", ProductName: "Vastu Silver", Active: true, Currency: "inr", UnitAmount: 2000000, Metadata: map[string]string{"category": "vastu"}},
		{ID: "price_new", ProductID: "prod", ProductName: "Astro Gold", Active: true, Currency: "inr", UnitAmount: 4500000, Metadata: map[string]string{"category": "astrology"}},
		{ID: "price_usd", ProductID: "prod", ProductName: "Intl", Active: true, Currency: "usd", UnitAmount: 10000},
		{ID: "price_other", ProductID: "other", ProductName: "Else", Active: true, Currency: "inr", UnitAmount: 10000},
		{ID: "price_untitled", ProductID: "prod", Active: true, Currency: "inr", UnitAmount: 10000},
	}
	h := &Handler{Repo: store, Log: zap.NewNop(), Prices: fakePrices{prices: prices}, StripeProductID: "prod"}
	r := newRouter(h)

	rr := request(r, http.MethodPost, "/admin/sync-services", "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp SyncResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, SyncResponse{Synced: 2, Created: 1, Updated: 1, Skipped: 3}, resp)

	_, err := store.GetByStripePrice(context.Background(), "price_untitled")
	assert.ErrorIs(t, err, services.ErrNotFound)

	updated, err := store.Get(context.Background(), old.ID)
	require.NoError(t, err)
	assert.Equal(t, "Vastu Silver", updated.Title)
	assert.EqualValues(t, 20000, updated.Price)

	created, err := store.GetByStripePrice(context.Background(), "price_new")
	require.NoError(t, err)
	assert.Equal(t, "astro-gold", created.Slug)
	assert.EqualValues(t, 45000, created.Price)
}

func TestSyncServicesFromStripe_Errors(t *testing.T) {
	r := newRouter(&Handler{Repo: memstore.New(), Log: zap.NewNop()})
	assert.Equal(t, http.StatusInternalServerError, request(r, http.MethodPost, "/admin/sync-services", "").Code)

	r = newRouter(&Handler{Repo: memstore.New(), Log: zap.NewNop(), Prices: fakePrices{err: errors.New("boom")}})
	assert.Equal(t, http.StatusBadGateway, request(r, http.MethodPost, "/admin/sync-services", "").Code)
}
