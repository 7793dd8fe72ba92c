package contentapi

import (
	"net/http"

	"vastuguru-api/internal/domain/content"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Clients may reuse home content for ten minutes.
const cacheControl = "public, max-age=600"

type Handler struct {
	Repo content.Repository
	Log  *zap.Logger
}

// GET /home-content
func (h *Handler) GetHomeContent(c *gin.Context) {
	rows, err := h.Repo.ListSections(c.Request.Context())
	if err != nil {
		h.Log.Error("load home content", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load home content"})
		return
	}

	c.Header("Cache-Control", cacheControl)
	c.JSON(http.StatusOK, gin.H{"data": content.FromSections(rows)})
}

// PUT /admin/home-content
func (h *Handler) UpdateHomeContent(c *gin.Context) {
	var body content.HomeContent
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid home content", "details": err.Error()})
		return
	}

	if err := h.Repo.SaveSections(c.Request.Context(), body.Sections()); err != nil {
		h.Log.Error("save home content", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save home content"})
		return
	}

	h.Log.Info("home content updated", zap.String("by", c.GetString("email")))
	c.JSON(http.StatusOK, gin.H{"data": content.FromSections(body.Sections())})
}

type AboutRequest struct {
	Description        string   `json:"description" binding:"required"`
	Services           []string `json:"services" binding:"dive,required"`
	CustomerCareNumber string   `json:"customerCareNumber" binding:"required"`
	ContactEmail       string   `json:"contactEmail" binding:"required,email"`
}

// GET /about
func (h *Handler) GetAbout(c *gin.Context) {
	about, err := h.Repo.GetAbout(c.Request.Context())
	if err != nil {
		h.Log.Error("load about", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load about content"})
		return
	}

	c.Header("Cache-Control", cacheControl)
	c.JSON(http.StatusOK, gin.H{"data": about})
}

// PUT /admin/about
func (h *Handler) UpdateAbout(c *gin.Context) {
	var req AboutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid about content", "details": err.Error()})
		return
	}

	about := content.About{
		Description:        req.Description,
		Services:           req.Services,
		CustomerCareNumber: req.CustomerCareNumber,
		ContactEmail:       req.ContactEmail,
	}
	if err := h.Repo.SaveAbout(c.Request.Context(), &about); err != nil {
		h.Log.Error("save about", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save about content"})
		return
	}

	h.Log.Info("about content updated", zap.String("by", c.GetString("email")))
	c.JSON(http.StatusOK, gin.H{"data": about})
}
