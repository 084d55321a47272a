package storage

import "github.com/yourusername/ecoswap-market/internal/domain/entity"

// SeedCatalog EcoSwap ning o'rnatilgan katalogi
func SeedCatalog() []entity.CatalogItem {
	return []entity.CatalogItem{
		{
			ID:          1,
			Title:       "Bosch Power Drill",
			Category:    entity.CategoryTools,
			Description: "Power drill in excellent condition, used only a few times. Complete with bits.",
			Price:       "For Exchange",
			Location:    "New York, Manhattan",
			Icon:        "fas fa-tools",
			Badge:       "Popular",
		},
		{
			ID:          2,
			Title:       "Fantasy Book Collection",
			Category:    entity.CategoryBooks,
			Description: "Complete set of 8 fantasy books by various authors. Very good condition.",
			Price:       "Free",
			Location:    "Chicago, Downtown",
			Icon:        "fas fa-book",
		},
		{
			ID:          3,
			Title:       "Children's Bicycle 16\"",
			Category:    entity.CategoryOther,
			Description: "Bicycle for children ages 4-6. Good condition, needs gear adjustment.",
			Price:       "For Exchange",
			Location:    "San Francisco, Mission",
			Icon:        "fas fa-bicycle",
			Badge:       "For Kids",
		},
		{
			ID:          4,
			Title:       "Workshop Hammer",
			Category:    entity.CategoryTools,
			Description: "Heavy-duty workshop hammer. Solid construction with metal head.",
			Price:       "Free",
			Location:    "Seattle, Capitol Hill",
			Icon:        "fas fa-hammer",
		},
		{
			ID:          5,
			Title:       "Samsung Galaxy S10",
			Category:    entity.CategoryElectronics,
			Description: "Smartphone in good condition. Screen scratch-free, battery lasts all day.",
			Price:       "For Exchange",
			Location:    "Austin, Downtown",
			Icon:        "fas fa-mobile-alt",
			Badge:       "Electronics",
		},
		{
			ID:          6,
			Title:       "Vinyl Record Collection - Rock",
			Category:    entity.CategoryOther,
			Description: "Collection of 15 rock music vinyl records. Good condition.",
			Price:       "For Exchange",
			Location:    "Portland, Pearl District",
			Icon:        "fas fa-compact-disc",
			Badge:       "Vintage",
		},
		{
			ID:          7,
			Title:       "Gardening Tools Set",
			Category:    entity.CategoryTools,
			Description: "Complete gardening set: rake, shovel, pruners. Perfect for spring season.",
			Price:       "For Rent",
			Location:    "Denver, Highlands",
			Icon:        "fas fa-leaf",
			Badge:       "Seasonal",
		},
		{
			ID:          8,
			Title:       "Cookbook Collection",
			Category:    entity.CategoryBooks,
			Description: "5 cookbooks featuring cuisines from around the world. Many recipes.",
			Price:       "For Exchange",
			Location:    "Boston, Back Bay",
			Icon:        "fas fa-utensils",
		},
	}
}

// MoreListings "load more" bosilganda ochiladigan e'lonlar
func MoreListings() []entity.CatalogItem {
	return []entity.CatalogItem{
		{
			ID:          9,
			Title:       "Office Chair",
			Category:    entity.CategoryOther,
			Description: "Ergonomic office chair with adjustable height. Comfortable, very good condition.",
			Price:       "For Exchange",
			Location:    "Miami, South Beach",
			Icon:        "fas fa-chair",
		},
		{
			ID:          10,
			Title:       "Dell Latitude Laptop",
			Category:    entity.CategoryElectronics,
			Description: "Laptop for basic tasks. Runs smoothly, battery recently replaced.",
			Price:       "For Exchange",
			Location:    "Atlanta, Midtown",
			Icon:        "fas fa-laptop",
			Badge:       "Electronics",
		},
	}
}
