package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var Validate = validator.New()

type ListingCategory string

const (
	CategoryCarPlate     ListingCategory = "car_plate"
	CategoryMobileNumber ListingCategory = "mobile_number"
)

// Listing is a for-sale item: a premium car plate or mobile number.
// IsFavorite is derived from the favorites set at read time and is
// never persisted with the listing itself.
type Listing struct {
	ID          string          `json:"id"`
	Category    ListingCategory `json:"category"`
	Number      string          `json:"number"`
	Price       float64         `json:"price"`
	Description string          `json:"description"`
	Location    string          `json:"location"`
	SellerID    string          `json:"sellerId"`
	SellerName  string          `json:"sellerName"`
	CreatedAt   time.Time       `json:"createdAt"`
	IsFavorite  bool            `json:"isFavorite"`
}

type CreateListingInput struct {
	Category    ListingCategory `json:"category" validate:"required,oneof=car_plate mobile_number"`
	Number      string          `json:"number" validate:"required"`
	Price       float64         `json:"price" validate:"gte=0"`
	Description string          `json:"description"`
	Location    string          `json:"location" validate:"required"`
}
