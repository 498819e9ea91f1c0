package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/snacksbunk-pos/internal/domain/entity"
	"github.com/sangkips/snacksbunk-pos/internal/presentation/http/middleware"
)

// GetPrincipal extracts the authenticated operator from the Gin context
func GetPrincipal(c *gin.Context) *entity.Principal {
	return middleware.GetPrincipal(c)
}

// actor names the operator for log lines
func actor(c *gin.Context) string {
	if p := GetPrincipal(c); p != nil {
		return p.Username
	}
	return "anonymous"
}
