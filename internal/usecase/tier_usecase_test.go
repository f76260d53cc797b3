package usecase

import (
	"testing"

	"github.com/go-playground/assert/v2"
	"github.com/refpilot/affiliate-service/internal/domain"
	tierdto "github.com/refpilot/affiliate-service/internal/usecase/dto/tier"
)

func TestGetTierTableFallsBackToDefault(t *testing.T) {
	uc := NewDefaultTierUsecase(&fakeTierRepo{}, nil, nil)

	tiers, err := uc.GetTierTable()
	assert.Equal(t, err, nil)
	assert.Equal(t, tiers, domain.DefaultTierTable())
}

func TestReplaceTierTableSortsAndStores(t *testing.T) {
	repo := &fakeTierRepo{}
	uc := NewDefaultTierUsecase(repo, nil, nil)

	// rows submitted out of order
	tiers, err := uc.ReplaceTierTable(&tierdto.ReplaceTierTableInput{
		Tiers: []tierdto.TierRowInput{
			{Name: "Gold", Threshold: 10000, DirectRate: 20, Level2Rate: 5, Level3Rate: 3},
			{Name: "Bronze", Threshold: 0, DirectRate: 10, Level2Rate: 3, Level3Rate: 1},
			{Name: "Silver", Threshold: 2500, DirectRate: 15, Level2Rate: 4, Level3Rate: 2},
		},
	})
	assert.Equal(t, err, nil)
	assert.Equal(t, tiers[0].Name, "Bronze")
	assert.Equal(t, tiers[2].Name, "Gold")
	assert.Equal(t, len(repo.tiers), 3)
}

func TestReplaceTierTableRejectsInvalidTables(t *testing.T) {
	uc := NewDefaultTierUsecase(&fakeTierRepo{}, nil, nil)

	_, err := uc.ReplaceTierTable(&tierdto.ReplaceTierTableInput{})
	assert.Equal(t, err, domain.ErrTierTableSize)

	rows := make([]tierdto.TierRowInput, 6)
	for i := range rows {
		rows[i] = tierdto.TierRowInput{Name: string(rune('a' + i)), Threshold: float64(i * 100), DirectRate: 10}
	}
	_, err = uc.ReplaceTierTable(&tierdto.ReplaceTierTableInput{Tiers: rows})
	assert.Equal(t, err, domain.ErrTierTableSize)

	_, err = uc.ReplaceTierTable(&tierdto.ReplaceTierTableInput{
		Tiers: []tierdto.TierRowInput{{Name: "Broken", Threshold: 0, DirectRate: 130}},
	})
	assert.Equal(t, err, domain.ErrInvalidTierTable)
}

func TestReplaceTierTableNoOpSaveKeepsTableIdentical(t *testing.T) {
	repo := &fakeTierRepo{}
	uc := NewDefaultTierUsecase(repo, nil, nil)

	input := &tierdto.ReplaceTierTableInput{
		Tiers: []tierdto.TierRowInput{
			{Name: "Bronze", Threshold: 0, DirectRate: 10, Level2Rate: 3, Level3Rate: 1},
			{Name: "Silver", Threshold: 2500, DirectRate: 15, Level2Rate: 4, Level3Rate: 2},
		},
	}

	first, err := uc.ReplaceTierTable(input)
	assert.Equal(t, err, nil)
	second, err := uc.ReplaceTierTable(input)
	assert.Equal(t, err, nil)
	assert.Equal(t, first, second)

	stored, err := uc.GetTierTable()
	assert.Equal(t, err, nil)
	assert.Equal(t, stored, second)
}
