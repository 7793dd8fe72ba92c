package servicesapi

import (
	"errors"
	"net/http"

	"vastuguru-api/internal/domain/services"
	"vastuguru-api/internal/infra/stripe"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// POST /admin/sync-services
//
// Imports one-time INR prices of the configured stripe product as package
// services, matching existing rows by stripe price id.
func (h *Handler) SyncServicesFromStripe(c *gin.Context) {
	if h.Prices == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe key not configured"})
		return
	}

	ctx := c.Request.Context()
	prices, err := h.Prices.ListPrices(ctx)
	if err != nil {
		h.Log.Error("fetch stripe prices", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch Stripe prices", "details": err.Error()})
		return
	}

	var resp SyncResponse
	for _, p := range prices {
		if reason := stripe.SkipReason(p, h.StripeProductID); reason != "" {
			h.Log.Debug("skip stripe price", zap.String("price_id", p.ID), zap.String("reason", reason))
			resp.Skipped++
			continue
		}

		existing, err := h.Repo.GetByStripePrice(ctx, p.ID)
		switch {
		case errors.Is(err, services.ErrNotFound):
			s := services.Service{}
			stripe.ApplyToService(p, &s)
			if err := s.Validate(); err != nil {
				h.Log.Warn("skip stripe price", zap.String("price_id", p.ID), zap.Error(err))
				resp.Skipped++
				continue
			}
			if err := services.EnsureSlug(ctx, h.Repo, &s); err != nil {
				h.syncFailed(c, "Failed to create service", err)
				return
			}
			if err := h.Repo.Create(ctx, &s); err != nil {
				h.syncFailed(c, "Failed to create service", err)
				return
			}
			resp.Created++

		case err != nil:
			h.syncFailed(c, "Failed to load service", err)
			return

		default:
			stripe.ApplyToService(p, existing)
			if err := existing.Validate(); err != nil {
				h.Log.Warn("skip stripe price", zap.String("price_id", p.ID), zap.Error(err))
				resp.Skipped++
				continue
			}
			if err := services.EnsureSlug(ctx, h.Repo, existing); err != nil {
				h.syncFailed(c, "Failed to update service", err)
				return
			}
			if err := h.Repo.Update(ctx, existing); err != nil {
				h.syncFailed(c, "Failed to update service", err)
				return
			}
			resp.Updated++
		}

		resp.Synced++
	}

	h.Log.Info("stripe sync finished",
		zap.Int("synced", resp.Synced),
		zap.Int("created", resp.Created),
		zap.Int("updated", resp.Updated),
		zap.Int("skipped", resp.Skipped))
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) syncFailed(c *gin.Context, msg string, err error) {
	h.Log.Error("stripe sync", zap.String("step", msg), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg, "details": err.Error()})
}
