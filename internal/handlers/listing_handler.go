package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/raqamhq/raqam/internal/models"
	"github.com/raqamhq/raqam/internal/store"
)

func ListListings(local *store.LocalStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		listings := local.SearchListings(c.Request.Context(), c.Query("q"))

		if category := c.Query("category"); category != "" && category != "all" {
			filtered := make([]models.Listing, 0, len(listings))
			for _, listing := range listings {
				if string(listing.Category) == category {
					filtered = append(filtered, listing)
				}
			}
			listings = filtered
		}

		if listings == nil {
			listings = []models.Listing{}
		}
		c.JSON(http.StatusOK, models.SuccessResponse(listings, ""))
	}
}

func GetListing(local *store.LocalStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.Param("id"))
		if id == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("listing ID is required"))
			return
		}

		listing, err := local.GetListing(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, store.ErrListingNotFound) {
				c.JSON(http.StatusNotFound, models.ErrorResponse("listing not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(listing, ""))
	}
}

func CreateListing(local *store.LocalStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.CreateListingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid request body: "+err.Error()))
			return
		}

		if err := models.Validate.Struct(input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		listing, err := local.CreateListing(c.Request.Context(), input)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(listing, "Listing created successfully"))
	}
}

func DeleteListing(local *store.LocalStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.Param("id"))
		if id == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("listing ID is required"))
			return
		}

		listing, err := local.GetListing(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, store.ErrListingNotFound) {
				c.JSON(http.StatusNotFound, models.ErrorResponse("listing not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		user, err := local.GetUser(c.Request.Context())
		if err != nil || listing.SellerID != user.ID {
			c.JSON(http.StatusForbidden, models.ErrorResponse("forbidden: you can only delete your own listings"))
			return
		}

		if err := local.DeleteListing(c.Request.Context(), id); err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Listing deleted successfully"))
	}
}

func MyListings(local *store.LocalStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		listings := local.GetMyListings(c.Request.Context())
		if listings == nil {
			listings = []models.Listing{}
		}
		c.JSON(http.StatusOK, models.SuccessResponse(listings, ""))
	}
}
