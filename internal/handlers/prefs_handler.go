package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/raqamhq/raqam/internal/models"
	"github.com/raqamhq/raqam/internal/store"
)

func GetThemePreference(local *store.LocalStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		theme, err := local.GetThemePreference(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusNotFound, models.ErrorResponse("theme preference not set"))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{"theme": theme}, ""))
	}
}

func SetThemePreference(local *store.LocalStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reqBody struct {
			Theme string `json:"theme" binding:"required"`
		}
		if err := c.ShouldBindJSON(&reqBody); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid request body: "+err.Error()))
			return
		}

		theme, ok := models.ParseTheme(reqBody.Theme)
		if !ok {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("theme must be one of light, dark, system"))
			return
		}

		if err := local.SetThemePreference(c.Request.Context(), theme); err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{"theme": theme}, ""))
	}
}

func GetAppPreferences(local *store.LocalStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		prefs := local.GetAppPreferences(c.Request.Context())
		c.JSON(http.StatusOK, models.SuccessResponse(prefs, ""))
	}
}

func SetAppPreference(local *store.LocalStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		key, ok := models.ParsePreferenceKey(c.Param("key"))
		if !ok {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("preference key must be one of language, currency, location"))
			return
		}

		var reqBody struct {
			Value string `json:"value" binding:"required"`
		}
		if err := c.ShouldBindJSON(&reqBody); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid request body: "+err.Error()))
			return
		}

		if err := local.SetAppPreference(c.Request.Context(), key, reqBody.Value); err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(local.GetAppPreferences(c.Request.Context()), ""))
	}
}

// ResetData wipes every key the store owns. Destructive, protected.
func ResetData(local *store.LocalStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := local.ClearAll(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "App data cleared"))
	}
}
