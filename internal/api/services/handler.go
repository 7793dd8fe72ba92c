package servicesapi

import (
	"errors"
	"net/http"

	"vastuguru-api/internal/domain/services"
	"vastuguru-api/internal/infra/stripe"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	Repo services.Repository
	Log  *zap.Logger

	// Prices is nil when no stripe key is configured.
	Prices          stripe.PriceSource
	StripeProductID string
}

// GET /services
func (h *Handler) ListServices(c *gin.Context) {
	f := FilterFromQuery(c)

	list, total, err := h.Repo.List(c.Request.Context(), f)
	if err != nil {
		h.Log.Error("list services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load services"})
		return
	}
	if list == nil {
		list = []services.Service{}
	}

	c.JSON(http.StatusOK, ListResponse{Data: list, Page: f.Page, Limit: f.Limit, Total: total})
}

// GET /services/:id
func (h *Handler) GetService(c *gin.Context) {
	s, err := h.Repo.Get(c.Request.Context(), c.Param("id"))
	h.respondOne(c, s, err)
}

// GET /services/slug/:slug
func (h *Handler) GetServiceBySlug(c *gin.Context) {
	s, err := h.Repo.GetBySlug(c.Request.Context(), c.Param("slug"))
	h.respondOne(c, s, err)
}

func (h *Handler) respondOne(c *gin.Context, s *services.Service, err error) {
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
			return
		}
		h.Log.Error("load service", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load service"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": s})
}

// POST /admin/services
func (h *Handler) CreateService(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service", "details": err.Error()})
		return
	}

	s := services.Service{IsActive: true}
	req.apply(&s)

	ctx := c.Request.Context()
	if err := services.EnsureSlug(ctx, h.Repo, &s); err != nil {
		h.Log.Error("ensure slug", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate slug"})
		return
	}
	if err := h.Repo.Create(ctx, &s); err != nil {
		h.Log.Error("create service", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create service"})
		return
	}

	h.Log.Info("service created", zap.String("id", s.ID), zap.String("slug", s.Slug), zap.Int64("price", s.Price))
	c.JSON(http.StatusCreated, gin.H{"data": s})
}

// PUT /admin/services/:id
func (h *Handler) UpdateService(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()
	s, err := h.Repo.Get(ctx, c.Param("id"))
	if err != nil {
		h.respondOne(c, nil, err)
		return
	}

	req.apply(s)
	if err := services.EnsureSlug(ctx, h.Repo, s); err != nil {
		h.Log.Error("ensure slug", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate slug"})
		return
	}
	if err := h.Repo.Update(ctx, s); err != nil {
		h.respondOne(c, nil, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": s})
}

// DELETE /admin/services/:id
func (h *Handler) DeleteService(c *gin.Context) {
	id := c.Param("id")
	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		h.respondOne(c, nil, err)
		return
	}
	h.Log.Info("service deleted", zap.String("id", id))
	c.Status(http.StatusNoContent)
}
