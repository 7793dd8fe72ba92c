package servicesapi

import "vastuguru-api/internal/domain/services"

type ServiceRequest struct {
	Title       string   `json:"title" binding:"required"`
	Slug        string   `json:"slug"`
	Price       *int64   `json:"price" binding:"required,min=0"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Category    string   `json:"category" binding:"required,oneof=vastu astrology numerology spiritual other"`
	SubCategory string   `json:"subCategory"`
	ServiceType string   `json:"serviceType" binding:"required,oneof=package consultation service"`
	IsActive    *bool    `json:"isActive"`
}

// apply copies the request onto s. An absent isActive or an empty slug
// keeps the current value.
func (r ServiceRequest) apply(s *services.Service) {
	s.Title = r.Title
	if r.Slug != "" {
		s.Slug = r.Slug
	}
	s.Price = *r.Price
	s.Description = r.Description
	s.Features = r.Features
	if s.Features == nil {
		s.Features = []string{}
	}
	s.Category = r.Category
	s.SubCategory = r.SubCategory
	s.ServiceType = r.ServiceType
	if r.IsActive != nil {
		s.IsActive = *r.IsActive
	}
}

type ListResponse struct {
	Data  []services.Service `json:"data"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
	Total int64              `json:"total"`
}

type SyncResponse struct {
	Synced  int `json:"synced"`
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}
