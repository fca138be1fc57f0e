package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/raqamhq/raqam/internal/models"
	"github.com/raqamhq/raqam/internal/services"
)

type credentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name"`
}

type emailRequest struct {
	Email string `json:"email" binding:"required"`
}

func SignUp(a *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reqBody credentialsRequest
		if err := c.ShouldBindJSON(&reqBody); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid request body: "+err.Error()))
			return
		}

		res, err := a.SignUp(c.Request.Context(), reqBody.Email, reqBody.Password, reqBody.FullName)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(res, "Account created, check your email to verify it"))
	}
}

func SignIn(a *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reqBody credentialsRequest
		if err := c.ShouldBindJSON(&reqBody); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid request body: "+err.Error()))
			return
		}

		tokenRes, err := a.SignIn(c.Request.Context(), reqBody.Email, reqBody.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(err.Error()))
			return
		}

		isProduction := os.Getenv("GIN_MODE") == "production"
		c.SetCookie("access_token", tokenRes.AccessToken, tokenRes.ExpiresIn, "/", "", isProduction, true)
		c.SetCookie("refresh_token", tokenRes.RefreshToken, 3600*24*30, "/", "", isProduction, true)

		c.JSON(http.StatusOK, models.SuccessResponse(tokenRes, "Signed in successfully"))
	}
}

// SignOut clears the auth cookies. The session itself lives with the
// auth provider.
func SignOut() gin.HandlerFunc {
	return func(c *gin.Context) {
		isProduction := os.Getenv("GIN_MODE") == "production"

		c.SetCookie("access_token", "", -1, "/", "", isProduction, true)
		c.SetCookie("refresh_token", "", -1, "/", "", isProduction, true)

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Signed out successfully"))
	}
}

func ResetPassword(a *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reqBody emailRequest
		if err := c.ShouldBindJSON(&reqBody); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid request body: "+err.Error()))
			return
		}

		if err := a.ResetPassword(c.Request.Context(), reqBody.Email); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Password reset email sent"))
	}
}

func ResendVerification(a *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reqBody emailRequest
		if err := c.ShouldBindJSON(&reqBody); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid request body: "+err.Error()))
			return
		}

		if err := a.ResendVerification(c.Request.Context(), reqBody.Email); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Verification email sent"))
	}
}
