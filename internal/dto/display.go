package dto

import "github.com/SscSPs/exchange_shop/internal/core/domain"

// UpdateDisplayRequest replaces the rate-screen configuration.
type UpdateDisplayRequest struct {
	Codes     []string `json:"codes"`
	Direction string   `json:"direction"`
}

// DisplayConfigResponse is the stored rate-screen configuration.
type DisplayConfigResponse struct {
	Codes     []string `json:"codes"`
	Direction string   `json:"direction"`
}

// ToDisplayConfigResponse converts a domain.DisplayConfig to its DTO.
func ToDisplayConfigResponse(cfg *domain.DisplayConfig) DisplayConfigResponse {
	codes := cfg.Codes
	if codes == nil {
		codes = []string{}
	}
	return DisplayConfigResponse{Codes: codes, Direction: string(cfg.Direction)}
}

// ScreenResponse is the rendered rate screen.
type ScreenResponse struct {
	Direction string             `json:"direction"`
	Rows      []domain.ScreenRow `json:"rows"`
}
