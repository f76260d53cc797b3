package engine

import (
	"sort"
	"strconv"
	"strings"

	"github.com/refpilot/affiliate-service/internal/domain"
)

// TierResolution is the derived standing of an affiliate against a tier
// table. Tier is never stored; it is recomputed from revenue on every
// read, so tier-table edits re-qualify everyone immediately.
type TierResolution struct {
	TierIndex     int
	TierName      string
	Rate          float64
	NextThreshold *float64
	Progress      float64
}

// ResolveTier picks the highest tier whose threshold the monthly revenue
// meets. A tie at exactly the threshold qualifies for the higher tier.
// Callers must supply a valid non-empty table.
func ResolveTier(monthlyRevenue float64, tiers domain.TierTable) TierResolution {
	tierIndex := 0
	for i, tier := range tiers {
		if monthlyRevenue >= tier.Threshold {
			tierIndex = i
		}
	}

	resolution := TierResolution{
		TierIndex: tierIndex,
		TierName:  tiers[tierIndex].Name,
		Rate:      tiers[tierIndex].DirectRate,
		Progress:  1,
	}

	if tierIndex+1 < len(tiers) {
		next := tiers[tierIndex+1].Threshold
		resolution.NextThreshold = &next
		if next > 0 {
			progress := monthlyRevenue / next
			if progress > 1 {
				progress = 1
			}
			resolution.Progress = progress
		}
	}

	return resolution
}

// RemainingGap is the revenue still needed to reach the next tier, zero
// once the top tier is held.
func (r TierResolution) RemainingGap(monthlyRevenue float64) float64 {
	if r.NextThreshold == nil {
		return 0
	}
	gap := *r.NextThreshold - monthlyRevenue
	if gap < 0 {
		return 0
	}
	return gap
}

// ValidateTierTable enforces the write-boundary rules: 1-5 rows, rates in
// 0-100, unique names, strictly ascending thresholds with the entry tier
// at threshold 0. The calculator assumes a table that passed this check.
func ValidateTierTable(tiers domain.TierTable) error {
	if len(tiers) < domain.MinTierCount || len(tiers) > domain.MaxTierCount {
		return domain.ErrTierTableSize
	}
	if tiers[0].Threshold != 0 {
		return domain.ErrInvalidTierTable
	}
	seenNames := make(map[string]bool, len(tiers))
	for i, tier := range tiers {
		if tier.Name == "" {
			return domain.ErrInvalidTierTable
		}
		name := strings.ToLower(tier.Name)
		if seenNames[name] {
			return domain.ErrInvalidTierTable
		}
		seenNames[name] = true
		if tier.Threshold < 0 {
			return domain.ErrInvalidTierTable
		}
		if i > 0 && tier.Threshold <= tiers[i-1].Threshold {
			return domain.ErrInvalidTierTable
		}
		for _, rate := range []float64{tier.DirectRate, tier.Level2Rate, tier.Level3Rate} {
			if rate < 0 || rate > 100 {
				return domain.ErrInvalidTierTable
			}
		}
	}
	return nil
}

// SortTierTable returns a copy ordered by ascending threshold. Admin
// clients are not trusted to submit rows in order.
func SortTierTable(tiers domain.TierTable) domain.TierTable {
	sorted := make(domain.TierTable, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Threshold < sorted[j].Threshold
	})
	return sorted
}

// NormalizeTierKey coerces legacy stored tier keys into the current index
// space. Older records encoded tier as a name string ("gold") or a
// numeric string; unknown keys fall back to the entry tier.
func NormalizeTierKey(raw string, tiers domain.TierTable) int {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return 0
	}
	for i, tier := range tiers {
		if strings.ToLower(tier.Name) == key {
			return i
		}
	}
	if index, err := strconv.Atoi(key); err == nil {
		if index < 0 {
			return 0
		}
		if index >= len(tiers) {
			return len(tiers) - 1
		}
		return index
	}
	return 0
}
