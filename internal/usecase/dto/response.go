package dto

import "github.com/building-identifier/internal/domain"

// IdentifyResponse - ответ /identify
type IdentifyResponse struct {
	Building domain.BuildingMatch `json:"building"`
	Meta     domain.RequestMeta   `json:"meta"`
}

// HealthResponse - ответ /health
type HealthResponse struct {
	OK bool `json:"ok"`
}
