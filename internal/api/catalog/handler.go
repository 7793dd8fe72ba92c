package catalogapi

import (
	"errors"
	"net/http"

	servicesapi "vastuguru-api/internal/api/services"
	"vastuguru-api/internal/domain/catalog"
	"vastuguru-api/internal/domain/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	Repo    services.Repository
	Builder *catalog.Builder
	Styles  catalog.StyleTable
	Log     *zap.Logger
}

type PlanCard struct {
	catalog.Plan
	Style catalog.Style `json:"style"`
}

type AdminPlanCard struct {
	catalog.AdminPlan
	Style catalog.Style `json:"style"`
}

type TiersResponse struct {
	Locale     string                         `json:"locale"`
	Thresholds catalog.Thresholds             `json:"thresholds"`
	Styles     map[catalog.Tier]catalog.Style `json:"styles"`
}

// GET /catalog?category=&subCategory=&serviceType=
//
// Active services only; serviceType defaults to "package".
func (h *Handler) GetCatalog(c *gin.Context) {
	active := true
	f := services.Filter{
		ServiceType: c.DefaultQuery("serviceType", services.TypePackage),
		Category:    c.Query("category"),
		SubCategory: c.Query("subCategory"),
		IsActive:    &active,
	}

	svcs, err := h.Repo.ListAll(c.Request.Context(), f)
	if err != nil {
		h.Log.Error("load catalog services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load services"})
		return
	}

	plans, err := h.Builder.Build(svcs)
	if err != nil {
		h.buildFailed(c, err)
		return
	}

	cards := make([]PlanCard, 0, len(plans))
	for _, p := range plans {
		style, err := h.Styles.Lookup(p.Tier)
		if err != nil {
			h.buildFailed(c, err)
			return
		}
		cards = append(cards, PlanCard{Plan: p, Style: style})
	}

	c.JSON(http.StatusOK, gin.H{"data": cards})
}

// GET /admin/packages?category=&subCategory=&page=&limit=
func (h *Handler) ListAdminPackages(c *gin.Context) {
	f := servicesapi.FilterFromQuery(c)
	f.ServiceType = services.TypePackage

	svcs, total, err := h.Repo.List(c.Request.Context(), f)
	if err != nil {
		h.Log.Error("load packages", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load packages"})
		return
	}

	plans, err := h.Builder.BuildAdmin(svcs)
	if err != nil {
		h.buildFailed(c, err)
		return
	}

	cards := make([]AdminPlanCard, 0, len(plans))
	for _, p := range plans {
		style, err := h.Styles.Lookup(p.Tier)
		if err != nil {
			h.buildFailed(c, err)
			return
		}
		cards = append(cards, AdminPlanCard{AdminPlan: p, Style: style})
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  cards,
		"page":  f.Page,
		"limit": f.Limit,
		"total": total,
	})
}

// GET /tiers
func (h *Handler) GetTiers(c *gin.Context) {
	c.JSON(http.StatusOK, TiersResponse{
		Locale:     h.Builder.Locale(),
		Thresholds: h.Builder.Thresholds(),
		Styles:     h.Styles,
	})
}

// buildFailed reports stored data or configuration the catalog cannot
// render. Neither is the caller's fault.
func (h *Handler) buildFailed(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrMissingStyle):
		h.Log.Error("tier style table out of sync", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Missing tier style", "details": err.Error()})
	case errors.Is(err, catalog.ErrInvalidPrice):
		h.Log.Error("stored service has invalid price", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid service price", "details": err.Error()})
	default:
		h.Log.Error("build catalog", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build catalog"})
	}
}
