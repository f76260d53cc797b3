package domain

// TierDefinition is one row of the commission tier table.
// Rates are percentages in the 0-100 range.
type TierDefinition struct {
	Name       string
	Threshold  float64
	DirectRate float64
	Level2Rate float64
	Level3Rate float64
}

// TierTable is an immutable snapshot of the whole table, ordered by
// ascending threshold. Callers pass it by value into calculations so a
// concurrent table save never changes math mid-request.
type TierTable []TierDefinition

const (
	MinTierCount = 1
	MaxTierCount = 5
)

// DefaultTierTable is the table a fresh program starts with and the
// fallback when no table has been saved yet.
func DefaultTierTable() TierTable {
	return TierTable{
		{Name: "Bronze", Threshold: 0, DirectRate: 10, Level2Rate: 3, Level3Rate: 1},
		{Name: "Silver", Threshold: 2500, DirectRate: 15, Level2Rate: 4, Level3Rate: 2},
		{Name: "Gold", Threshold: 10000, DirectRate: 20, Level2Rate: 5, Level3Rate: 3},
	}
}

type TierRepository interface {
	GetTierTable() (TierTable, error)
	// ReplaceTierTable swaps the whole table in one transaction so a
	// concurrent reader never sees a half-updated set of rows.
	ReplaceTierTable(tiers TierTable) error
}
