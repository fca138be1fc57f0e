package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/raqamhq/raqam/internal/models"
	"github.com/raqamhq/raqam/internal/store"
)

func GetFavorites(local *store.LocalStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		favorites := local.GetFavorites(c.Request.Context())
		if favorites == nil {
			favorites = []string{}
		}
		c.JSON(http.StatusOK, models.SuccessResponse(favorites, ""))
	}
}

func ToggleFavorite(local *store.LocalStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.Param("id"))
		if id == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("listing ID is required"))
			return
		}

		isFavorite := local.ToggleFavorite(c.Request.Context(), id)
		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{"isFavorite": isFavorite}, ""))
	}
}
