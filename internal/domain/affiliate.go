package domain

import "time"

type AffiliateStatus string

const (
	AffiliateStatusPending  AffiliateStatus = "PENDING"
	AffiliateStatusActive   AffiliateStatus = "ACTIVE"
	AffiliateStatusRejected AffiliateStatus = "REJECTED"
	AffiliateStatusArchived AffiliateStatus = "ARCHIVED"
)

type Affiliate struct {
	ID        string
	Name      string
	Email     string
	Slug      string
	ParentID  string // empty when the affiliate has no recruiter
	Status    AffiliateStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

type AffiliateRepository interface {
	CreateAffiliate(affiliate *Affiliate) error
	GetAffiliateByID(affiliateID string) (*Affiliate, error)
	GetAffiliateByEmail(email string) (*Affiliate, error)
	GetAffiliateBySlug(slug string) (*Affiliate, error)
	GetAffiliates(statuses []AffiliateStatus) ([]*Affiliate, error)
	UpdateAffiliateStatus(affiliateID string, newStatus AffiliateStatus) error
	UpdateAffiliateParent(affiliateID, parentID string) error
	DeleteAffiliate(affiliateID string) error
}
