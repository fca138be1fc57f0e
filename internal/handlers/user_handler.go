package handlers

import (
	"errors"
	"net/http"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"github.com/raqamhq/raqam/internal/helpers"
	"github.com/raqamhq/raqam/internal/models"
	"github.com/raqamhq/raqam/internal/store"
)

func GetProfile(local *store.LocalStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := local.GetUser(c.Request.Context())
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				c.JSON(http.StatusNotFound, models.ErrorResponse("user not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(user, ""))
	}
}

func UpdateProfile(local *store.LocalStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var update models.UserUpdate
		if err := c.ShouldBindJSON(&update); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid request body: "+err.Error()))
			return
		}

		user, err := local.UpdateUser(c.Request.Context(), update)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				c.JSON(http.StatusNotFound, models.ErrorResponse("user not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(user, "Profile updated successfully"))
	}
}

func UploadAvatar(local *store.LocalStore, cld *cloudinary.Cloudinary) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reqBody struct {
			Image string `json:"image" binding:"required"`
		}
		if err := c.ShouldBindJSON(&reqBody); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid request body: "+err.Error()))
			return
		}

		avatarURL, err := helpers.UploadAvatar(c.Request.Context(), cld, reqBody.Image)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		user, err := local.UpdateUser(c.Request.Context(), models.UserUpdate{Avatar: &avatarURL})
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(user, "Avatar updated successfully"))
	}
}
