package store

import (
	"time"

	"github.com/raqamhq/raqam/internal/models"
)

const day = 24 * time.Hour

// sampleListings is the fixed first-run dataset: at least one listing
// of each category, distinct sellers, timestamps spread over recent
// days. Insertion order is the seed order.
func sampleListings(now time.Time) []models.Listing {
	return []models.Listing{
		{
			ID:          "1",
			Category:    models.CategoryCarPlate,
			Number:      "A 1234",
			Price:       25000,
			Description: "رقم مميز للبيع - لوحة سيارة فاخرة",
			Location:    "الرياض",
			SellerID:    "seller1",
			SellerName:  "أحمد محمد",
			CreatedAt:   now.Add(-2 * day),
		},
		{
			ID:          "2",
			Category:    models.CategoryMobileNumber,
			Number:      "0555 123 456",
			Price:       5000,
			Description: "رقم جوال مميز سهل الحفظ",
			Location:    "جدة",
			SellerID:    "seller2",
			SellerName:  "خالد العمري",
			CreatedAt:   now.Add(-5 * day),
		},
		{
			ID:          "3",
			Category:    models.CategoryCarPlate,
			Number:      "B 5555",
			Price:       75000,
			Description: "لوحة مميزة - أرقام متكررة",
			Location:    "الدمام",
			SellerID:    "seller3",
			SellerName:  "محمد السعيد",
			CreatedAt:   now.Add(-1 * day),
		},
		{
			ID:          "4",
			Category:    models.CategoryMobileNumber,
			Number:      "0500 000 111",
			Price:       15000,
			Description: "رقم VIP - سهل التذكر",
			Location:    "مكة",
			SellerID:    "seller1",
			SellerName:  "أحمد محمد",
			CreatedAt:   now.Add(-3 * day),
		},
		{
			ID:          "5",
			Category:    models.CategoryCarPlate,
			Number:      "K 7777",
			Price:       120000,
			Description: "لوحة نادرة - رقم مميز جداً",
			Location:    "الرياض",
			SellerID:    "seller4",
			SellerName:  "عبدالله الفهد",
			CreatedAt:   now,
		},
	}
}

func defaultUser() models.User {
	return models.User{
		ID:       DefaultUserID,
		Name:     "محمد أحمد",
		Phone:    "0555 999 888",
		Location: "الرياض",
		Bio:      "مهتم بالأرقام المميزة",
	}
}
