package response

import (
	"time"

	"github.com/refpilot/affiliate-service/internal/domain"
)

type ConversionResponse struct {
	ID          string     `json:"id"`
	AffiliateID string     `json:"affiliate_id"`
	Amount      float64    `json:"amount"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
}

func FromDomain(conversion *domain.Conversion) ConversionResponse {
	return ConversionResponse{
		ID:          conversion.ID,
		AffiliateID: conversion.AffiliateID,
		Amount:      conversion.Amount,
		Status:      string(conversion.Status),
		CreatedAt:   conversion.CreatedAt,
		PaidAt:      conversion.PaidAt,
	}
}

func FromDomainList(conversions []*domain.Conversion) []ConversionResponse {
	responses := make([]ConversionResponse, len(conversions))
	for i, conversion := range conversions {
		responses[i] = FromDomain(conversion)
	}
	return responses
}
