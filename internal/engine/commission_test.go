package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
	"github.com/refpilot/affiliate-service/internal/domain"
)

// Table where every affiliate with any sales this month holds Bronze
// unless stated otherwise: Bronze 10%/3%/1%, Silver 15%/4%/2%,
// Gold 20%/5%/3% (direct/level2/level3).
func overrideFixture() (*Graph, *ConversionIndex, domain.TierTable, *domain.Conversion) {
	month := time.Date(2026, time.August, 10, 12, 0, 0, 0, time.UTC)

	// G <- P <- O, plus G's own volume pushing G to Gold and P's to Silver
	affiliates := []*domain.Affiliate{
		affiliate("G", ""),
		affiliate("P", "G"),
		affiliate("O", "P"),
	}

	sale := conversionAt("O", 1000, month, domain.ConversionStatusApproved)
	conversions := []*domain.Conversion{
		sale,
		conversionAt("P", 5000, month, domain.ConversionStatusApproved),
		conversionAt("G", 20000, month, domain.ConversionStatusApproved),
	}

	return NewGraph(affiliates), NewConversionIndex(conversions), testTierTable(), sale
}

func TestCommissionsForOverrideRatesComeFromAncestorOwnTier(t *testing.T) {
	graph, idx, tiers, sale := overrideFixture()

	breakdown, err := CommissionsFor(sale, graph, idx, tiers)
	assert.Equal(t, err, nil)

	// O holds Bronze on 1000 of monthly volume: direct 10%
	assert.Equal(t, breakdown.OwnerID, "O")
	assert.Equal(t, breakdown.Direct, float64(100))

	// P holds Silver (5000 volume): P's own Level2Rate 4%, not O's
	// G holds Gold (20000 volume): G's own Level3Rate 3%
	assert.Equal(t, breakdown.Overrides, []OverrideShare{
		{AffiliateID: "P", Level: 2, Amount: 40},
		{AffiliateID: "G", Level: 3, Amount: 30},
	})
}

func TestCommissionsForRecomputesAfterAncestorTierChange(t *testing.T) {
	graph, idx, tiers, sale := overrideFixture()

	before, err := CommissionsFor(sale, graph, idx, tiers)
	assert.Equal(t, err, nil)

	// edit Silver's level-2 rate and re-run on the same conversion
	edited := SortTierTable(tiers)
	edited[1].Level2Rate = 8

	after, err := CommissionsFor(sale, graph, idx, edited)
	assert.Equal(t, err, nil)

	// P's override moves with P's tier rate, O's direct is untouched
	assert.Equal(t, after.Direct, before.Direct)
	assert.Equal(t, after.Overrides[0].Amount, float64(80))
	assert.Equal(t, after.Overrides[1].Amount, before.Overrides[1].Amount)
}

func TestCommissionsForDepthCap(t *testing.T) {
	month := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)

	// ggg <- gg <- g <- p <- owner: only p and g can earn overrides
	affiliates := []*domain.Affiliate{
		affiliate("ggg", ""),
		affiliate("gg", "ggg"),
		affiliate("g", "gg"),
		affiliate("p", "g"),
		affiliate("owner", "p"),
	}
	sale := conversionAt("owner", 1000, month, domain.ConversionStatusApproved)
	idx := NewConversionIndex([]*domain.Conversion{sale})

	breakdown, err := CommissionsFor(sale, NewGraph(affiliates), idx, testTierTable())
	assert.Equal(t, err, nil)

	assert.Equal(t, len(breakdown.Overrides), 2)
	for _, override := range breakdown.Overrides {
		assert.NotEqual(t, override.AffiliateID, "gg")
		assert.NotEqual(t, override.AffiliateID, "ggg")
	}
}

func TestCommissionsForMissingOverrideRateDefaultsToZero(t *testing.T) {
	month := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)

	// single-row table with no override rates defined at all
	tiers := domain.TierTable{{Name: "Flat", Threshold: 0, DirectRate: 10}}

	affiliates := []*domain.Affiliate{
		affiliate("g", ""),
		affiliate("p", "g"),
		affiliate("o", "p"),
	}
	sale := conversionAt("o", 1000, month, domain.ConversionStatusApproved)
	idx := NewConversionIndex([]*domain.Conversion{sale})

	breakdown, err := CommissionsFor(sale, NewGraph(affiliates), idx, tiers)
	assert.Equal(t, err, nil)
	assert.Equal(t, breakdown.Direct, float64(100))
	assert.Equal(t, len(breakdown.Overrides), 0)
}

func TestCommissionsForDanglingOwner(t *testing.T) {
	month := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)

	graph := NewGraph([]*domain.Affiliate{affiliate("known", "")})
	sale := conversionAt("ghost", 500, month, domain.ConversionStatusApproved)
	idx := NewConversionIndex([]*domain.Conversion{sale})

	_, err := CommissionsFor(sale, graph, idx, testTierTable())

	var dangling *domain.DanglingOwnerError
	assert.Equal(t, errors.As(err, &dangling), true)
	assert.Equal(t, dangling.OwnerID, "ghost")
}

func TestCommissionsForCycleSafety(t *testing.T) {
	month := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)

	graph := NewGraph([]*domain.Affiliate{
		affiliate("a", "b"),
		affiliate("b", "a"),
	})
	sale := conversionAt("a", 1000, month, domain.ConversionStatusApproved)
	idx := NewConversionIndex([]*domain.Conversion{sale})

	breakdown, err := CommissionsFor(sale, graph, idx, testTierTable())
	assert.Equal(t, err, nil)

	// b appears once as the level-2 ancestor, never looped on
	assert.Equal(t, len(breakdown.Overrides), 1)
	assert.Equal(t, breakdown.Overrides[0].AffiliateID, "b")
}

func TestCommissionTiersUseMonthOfConversion(t *testing.T) {
	saleMonth := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)
	otherMonth := time.Date(2026, time.April, 5, 0, 0, 0, 0, time.UTC)

	affiliates := []*domain.Affiliate{affiliate("o", "")}
	sale := conversionAt("o", 1000, saleMonth, domain.ConversionStatusApproved)
	conversions := []*domain.Conversion{
		sale,
		// big April volume must not lift the March sale's tier
		conversionAt("o", 50000, otherMonth, domain.ConversionStatusApproved),
	}

	breakdown, err := CommissionsFor(sale, NewGraph(affiliates), NewConversionIndex(conversions), testTierTable())
	assert.Equal(t, err, nil)
	assert.Equal(t, breakdown.Direct, float64(100)) // Bronze 10%, not Gold 20%
}
