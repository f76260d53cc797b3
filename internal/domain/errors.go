package domain

import (
	"errors"
	"fmt"
)

var (
	ErrAffiliateNotFound     = errors.New("affiliate not found")
	ErrEmailTaken            = errors.New("email already taken")
	ErrSlugTaken             = errors.New("slug already taken")
	ErrParentNotFound        = errors.New("parent affiliate not found")
	ErrCycleDetected         = errors.New("parent assignment would create a cycle")
	ErrInvalidStatusChange   = errors.New("invalid affiliate status change")
	ErrInvalidTierTable      = errors.New("invalid tier table")
	ErrTierTableSize         = errors.New("tier table must have 1 to 5 rows")
	ErrConversionNotFound    = errors.New("conversion not found")
	ErrNothingToPay          = errors.New("no payable conversions")
	ErrConversionNotApproved = errors.New("conversion is not approved")
	ErrConversionAlreadyPaid = errors.New("conversion already paid")
	ErrNegativeAmount        = errors.New("amount must not be negative")
)

// DanglingOwnerError signals a conversion whose owner does not resolve to
// a known affiliate. Surfaced instead of silently producing zero
// commissions so operators can find and fix orphaned rows.
type DanglingOwnerError struct {
	ConversionID string
	OwnerID      string
}

func (e *DanglingOwnerError) Error() string {
	return fmt.Sprintf("conversion %s references unknown affiliate %s", e.ConversionID, e.OwnerID)
}
