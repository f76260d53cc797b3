package engine

import (
	"math"

	"github.com/refpilot/affiliate-service/internal/domain"
)

// ConversionIndex groups conversions by owning affiliate so tier lookups
// during commission math do not rescan the full set per conversion.
type ConversionIndex struct {
	all         []*domain.Conversion
	byAffiliate map[string][]*domain.Conversion
}

func NewConversionIndex(conversions []*domain.Conversion) *ConversionIndex {
	idx := &ConversionIndex{
		all:         conversions,
		byAffiliate: make(map[string][]*domain.Conversion),
	}
	for _, conversion := range conversions {
		idx.byAffiliate[conversion.AffiliateID] = append(idx.byAffiliate[conversion.AffiliateID], conversion)
	}
	return idx
}

func (idx *ConversionIndex) All() []*domain.Conversion {
	return idx.all
}

func (idx *ConversionIndex) ByAffiliate(affiliateID string) []*domain.Conversion {
	return idx.byAffiliate[affiliateID]
}

// OverrideShare is a recruiter's cut of a descendant's conversion.
// Level counts in commission terms: 2 for the direct parent of the sale
// owner, 3 for the grandparent.
type OverrideShare struct {
	AffiliateID string
	Level       int
	Amount      float64
}

type CommissionBreakdown struct {
	ConversionID string
	OwnerID      string
	Direct       float64
	Overrides    []OverrideShare
}

// Total is direct plus all override shares.
func (b CommissionBreakdown) Total() float64 {
	total := b.Direct
	for _, override := range b.Overrides {
		total += override.Amount
	}
	return round2(total)
}

// CommissionsFor computes the direct commission and the recruiter
// overrides owed on a single conversion. Every rate is resolved against
// the earner's OWN standing in the month of the conversion: the owner's
// tier sets the direct rate, each ancestor's tier sets that ancestor's
// override rate. The function is pure: recomputing after a tier-table
// or graph edit always yields the currently-correct split.
func CommissionsFor(
	conversion *domain.Conversion,
	graph *Graph,
	idx *ConversionIndex,
	tiers domain.TierTable,
) (*CommissionBreakdown, error) {
	ownerID := conversion.AffiliateID
	if !graph.Has(ownerID) {
		return nil, &domain.DanglingOwnerError{ConversionID: conversion.ID, OwnerID: ownerID}
	}

	month := MonthOf(conversion.CreatedAt)
	ownerTier := ResolveTier(MonthlyRevenue(idx.ByAffiliate(ownerID), month), tiers)

	breakdown := &CommissionBreakdown{
		ConversionID: conversion.ID,
		OwnerID:      ownerID,
		Direct:       round2(conversion.Amount * ownerTier.Rate / 100),
	}

	for _, ancestor := range graph.AncestorsUpTo(ownerID, MaxOverrideDepth) {
		// The owner occupies commission level 1, so the parent earns at
		// level 2 and the grandparent at level 3. Deeper ancestors never
		// hold a rate and receive nothing.
		commissionLevel := ancestor.Level + 1
		if commissionLevel > MaxOverrideDepth {
			break
		}

		ancestorTier := ResolveTier(MonthlyRevenue(idx.ByAffiliate(ancestor.AffiliateID), month), tiers)
		rate := overrideRate(tiers[ancestorTier.TierIndex], commissionLevel)
		if rate <= 0 {
			continue
		}

		breakdown.Overrides = append(breakdown.Overrides, OverrideShare{
			AffiliateID: ancestor.AffiliateID,
			Level:       commissionLevel,
			Amount:      round2(conversion.Amount * rate / 100),
		})
	}

	return breakdown, nil
}

// overrideRate reads the ancestor-tier rate for a commission level. A
// rate the admin removed from the table defaults to 0, never an error.
func overrideRate(tier domain.TierDefinition, commissionLevel int) float64 {
	switch commissionLevel {
	case 2:
		return tier.Level2Rate
	case 3:
		return tier.Level3Rate
	default:
		return 0
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
