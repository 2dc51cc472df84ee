package dto

import "awards_backend/internal/models"

// CategoriesResponse - full catalog listing
type CategoriesResponse struct {
	Categories []models.Category `json:"categories"`
}

// HealthResponse - liveness probe body
type HealthResponse struct {
	Status string `json:"status"`
}
