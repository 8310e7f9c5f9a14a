package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/unidash/uni-dashboard-api/internal/middleware"
	"github.com/unidash/uni-dashboard-api/internal/models"
	appErrors "github.com/unidash/uni-dashboard-api/pkg/errors"
	"github.com/unidash/uni-dashboard-api/pkg/response"
)

func claimsFromContext(c *gin.Context) *models.JWTClaims {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.JWTClaims)
	if !ok {
		return nil
	}
	return claims
}

// currentUser resolves the authenticated username or writes a 401.
func currentUser(c *gin.Context) (string, bool) {
	claims := claimsFromContext(c)
	if claims == nil || claims.Username == "" {
		response.Error(c, appErrors.ErrUnauthorized)
		return "", false
	}
	return claims.Username, true
}

// indexParam parses the :index path segment used for positional identity.
func indexParam(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "index must be a non-negative integer"))
		return 0, false
	}
	return index, true
}
