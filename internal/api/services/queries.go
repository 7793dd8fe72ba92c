package servicesapi

import (
	"strconv"
	"strings"

	"vastuguru-api/internal/domain/services"

	"github.com/gin-gonic/gin"
)

// FilterFromQuery reads the GET /services query string. Unparseable
// numbers fall back to the defaults applied by Filter.Normalize.
func FilterFromQuery(c *gin.Context) services.Filter {
	f := services.Filter{
		ServiceType: c.Query("serviceType"),
		Category:    c.Query("category"),
		SubCategory: c.Query("subCategory"),
	}
	if v, ok := c.GetQuery("isActive"); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			f.IsActive = &b
		}
	}
	f.Page, _ = strconv.Atoi(c.Query("page"))
	f.Limit, _ = strconv.Atoi(c.Query("limit"))
	return f.Normalize()
}
