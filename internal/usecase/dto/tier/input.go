package tierdto

type TierRowInput struct {
	Name       string  `json:"name"`
	Threshold  float64 `json:"threshold"`
	DirectRate float64 `json:"direct_rate"`
	Level2Rate float64 `json:"level2_rate"`
	Level3Rate float64 `json:"level3_rate"`
}

// ReplaceTierTableInput carries the whole table: tier saves are all-rows
// replaces, never row-by-row updates.
type ReplaceTierTableInput struct {
	Tiers []TierRowInput `json:"tiers"`
}
