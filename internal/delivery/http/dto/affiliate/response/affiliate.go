package response

import (
	"time"

	"github.com/refpilot/affiliate-service/internal/domain"
)

type AffiliateResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Slug      string    `json:"slug"`
	ParentID  string    `json:"parent_id,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromDomain(affiliate *domain.Affiliate) AffiliateResponse {
	return AffiliateResponse{
		ID:        affiliate.ID,
		Name:      affiliate.Name,
		Email:     affiliate.Email,
		Slug:      affiliate.Slug,
		ParentID:  affiliate.ParentID,
		Status:    string(affiliate.Status),
		CreatedAt: affiliate.CreatedAt,
		UpdatedAt: affiliate.UpdatedAt,
	}
}

func FromDomainList(affiliates []*domain.Affiliate) []AffiliateResponse {
	responses := make([]AffiliateResponse, len(affiliates))
	for i, affiliate := range affiliates {
		responses[i] = FromDomain(affiliate)
	}
	return responses
}
