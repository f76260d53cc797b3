package domain

import "time"

type ConversionStatus string

const (
	ConversionStatusPending  ConversionStatus = "PENDING"
	ConversionStatusApproved ConversionStatus = "APPROVED"
	ConversionStatusPaid     ConversionStatus = "PAID"
)

// Conversion is a recorded sale attributed to an affiliate. It counts
// toward the revenue of the calendar month of CreatedAt regardless of
// when it is queried.
type Conversion struct {
	ID          string
	AffiliateID string
	Amount      float64
	Status      ConversionStatus
	CreatedAt   time.Time
	PaidAt      *time.Time
}

type ConversionRepository interface {
	CreateConversion(conversion *Conversion) error
	GetConversionByID(conversionID string) (*Conversion, error)
	GetConversionsByAffiliateID(affiliateID string) ([]*Conversion, error)
	GetAllConversions() ([]*Conversion, error)
	UpdateConversionStatus(conversionID string, newStatus ConversionStatus) error
	DeleteConversion(conversionID string) error
}
