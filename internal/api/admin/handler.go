package admin

import (
	"net/http"

	"vastuguru-api/internal/domain/catalog"
	"vastuguru-api/internal/domain/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	Repo    services.Repository
	Builder *catalog.Builder
	Log     *zap.Logger
}

type AdminStats struct {
	TotalServices   int                  `json:"total_services"`
	ActiveServices  int                  `json:"active_services"`
	PerCategory     map[string]int       `json:"per_category"`
	PackagesPerTier map[catalog.Tier]int `json:"packages_per_tier"`
}

func (h *Handler) AdminDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the admin dashboard",
		"role":    c.GetString("role"),
	})
}

// GET /admin/stats
func (h *Handler) GetAdminStats(c *gin.Context) {
	all, err := h.Repo.ListAll(c.Request.Context(), services.Filter{})
	if err != nil {
		h.Log.Error("load services for stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load services"})
		return
	}

	stats, err := ComputeStats(h.Builder, all)
	if err != nil {
		h.Log.Error("compute stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ComputeStats counts services by category, and active packages by tier.
func ComputeStats(b *catalog.Builder, all []services.Service) (AdminStats, error) {
	stats := AdminStats{
		TotalServices:   len(all),
		PerCategory:     map[string]int{},
		PackagesPerTier: map[catalog.Tier]int{},
	}
	for _, t := range catalog.Tiers {
		stats.PackagesPerTier[t] = 0
	}

	for _, s := range all {
		stats.PerCategory[s.Category]++
		if !s.IsActive {
			continue
		}
		stats.ActiveServices++

		if s.ServiceType != services.TypePackage {
			continue
		}
		tier, err := b.Classify(s.Price)
		if err != nil {
			return AdminStats{}, err
		}
		stats.PackagesPerTier[tier]++
	}
	return stats, nil
}
