// Package fixture holds the seed dataset: the six showcase trucks and
// the default admin account. The in-memory fallback store is seeded
// from it, and cmd/seed loads it into MySQL.
package fixture

import (
	"time"

	"foodtruck/internal/model"
)

// DefaultAdminEmail is the bootstrap admin login.
const DefaultAdminEmail = "admin@foodtruck.ma"

// defaultAdminHash is bcrypt("admin123", cost 10).
const defaultAdminHash = "$2a$10$oR5M8m/rMN531vPNZe8iu.K1S7XmbqdqX.rzHUYomcbHGFcyL37Ei"

// DefaultAdmin returns the bootstrap admin user.
func DefaultAdmin() model.User {
	return model.User{
		ID:           1,
		Email:        DefaultAdminEmail,
		PasswordHash: defaultAdminHash,
		Name:         "Admin",
		Role:         "admin",
		CreatedAt:    time.Now(),
	}
}

// Trucks returns the showcase catalog.
func Trucks() []model.Truck {
	now := time.Now()
	return []model.Truck{
		{
			ID:          1,
			Title:       "Food Truck Pizza Premium",
			Description: "Food truck spécialisé dans la pizza avec four à bois intégré. Équipé d'une cuisine professionnelle et d'un espace de service optimisé.",
			Category:    "Pizza",
			ImageURL:    "/uploads/pizza-truck.jpg",
			Specifications: model.JSONMap{
				"dimensions": "6m x 2.5m",
				"capacity":   "50 pizzas/heure",
				"equipment":  []string{"Four à bois", "Réfrigérateur", "Plan de travail"},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          2,
			Title:       "Burger Mobile Deluxe",
			Description: "Food truck moderne pour burgers gourmets avec gril professionnel et système de ventilation intégré.",
			Category:    "Burger",
			ImageURL:    "/uploads/burger-truck.jpg",
			Specifications: model.JSONMap{
				"dimensions": "5.5m x 2.3m",
				"capacity":   "80 burgers/heure",
				"equipment":  []string{"Gril professionnel", "Friteuse", "Plan de préparation"},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          3,
			Title:       "Tacos Express",
			Description: "Food truck coloré pour tacos et burritos avec cuisine ouverte et service rapide.",
			Category:    "Tacos",
			ImageURL:    "/uploads/tacos-truck.jpg",
			Specifications: model.JSONMap{
				"dimensions": "5m x 2.2m",
				"capacity":   "60 tacos/heure",
				"equipment":  []string{"Plancha", "Réfrigérateur", "Évier"},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          4,
			Title:       "Sandwich Corner",
			Description: "Food truck polyvalent pour sandwiches, paninis et salades avec espace de préparation spacieux.",
			Category:    "Sandwich",
			ImageURL:    "/uploads/sandwich-truck.jpg",
			Specifications: model.JSONMap{
				"dimensions": "5.8m x 2.4m",
				"capacity":   "70 sandwiches/heure",
				"equipment":  []string{"Grille panini", "Réfrigérateur", "Plan de travail"},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          5,
			Title:       "Dessert Paradise",
			Description: "Food truck spécialisé dans les desserts avec vitrine réfrigérée et espace de création.",
			Category:    "Dessert",
			ImageURL:    "/uploads/dessert-truck.jpg",
			Specifications: model.JSONMap{
				"dimensions": "4.5m x 2.1m",
				"capacity":   "40 desserts/heure",
				"equipment":  []string{"Vitrine réfrigérée", "Mixer", "Plan de décoration"},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          6,
			Title:       "Boissons & Smoothies",
			Description: "Food truck pour boissons fraîches, smoothies et jus de fruits avec blender professionnel.",
			Category:    "Boissons",
			ImageURL:    "/uploads/drinks-truck.jpg",
			Specifications: model.JSONMap{
				"dimensions": "4m x 2m",
				"capacity":   "100 boissons/heure",
				"equipment":  []string{"Blender professionnel", "Réfrigérateur", "Distributeur de glace"},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}
