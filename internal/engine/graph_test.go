package engine

import (
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
	"github.com/refpilot/affiliate-service/internal/domain"
)

func affiliate(id, parentID string) *domain.Affiliate {
	return &domain.Affiliate{
		ID:        id,
		Name:      id,
		Email:     id + "@example.com",
		ParentID:  parentID,
		Status:    domain.AffiliateStatusActive,
		CreatedAt: time.Now(),
	}
}

// chain: root <- mid <- leaf <- deep
func chainGraph() *Graph {
	return NewGraph([]*domain.Affiliate{
		affiliate("root", ""),
		affiliate("mid", "root"),
		affiliate("leaf", "mid"),
		affiliate("deep", "leaf"),
	})
}

func TestAncestorsUpToWalksParentChain(t *testing.T) {
	g := chainGraph()

	ancestors := g.AncestorsUpTo("deep", 3)
	assert.Equal(t, ancestors, []Ancestor{
		{AffiliateID: "leaf", Level: 1},
		{AffiliateID: "mid", Level: 2},
		{AffiliateID: "root", Level: 3},
	})
}

func TestAncestorsUpToStopsAtShortChain(t *testing.T) {
	g := chainGraph()

	assert.Equal(t, g.AncestorsUpTo("mid", 3), []Ancestor{{AffiliateID: "root", Level: 1}})
	assert.Equal(t, len(g.AncestorsUpTo("root", 3)), 0)
}

func TestAncestorsUpToHardCapsDepth(t *testing.T) {
	g := NewGraph([]*domain.Affiliate{
		affiliate("a", ""),
		affiliate("b", "a"),
		affiliate("c", "b"),
		affiliate("d", "c"),
		affiliate("e", "d"),
	})

	ancestors := g.AncestorsUpTo("e", 10)
	assert.Equal(t, len(ancestors), 3)
	assert.Equal(t, ancestors[2], Ancestor{AffiliateID: "b", Level: 3})
}

func TestAncestorsUpToTerminatesOnCycle(t *testing.T) {
	// corrupt store: a and b are each other's parent
	g := NewGraph([]*domain.Affiliate{
		affiliate("a", "b"),
		affiliate("b", "a"),
	})

	ancestors := g.AncestorsUpTo("a", 3)
	assert.Equal(t, ancestors, []Ancestor{{AffiliateID: "b", Level: 1}})
	assert.NotEqual(t, len(g.Cycles()), 0)
}

func TestChildrenOfListsDirectRecruitsOnly(t *testing.T) {
	g := NewGraph([]*domain.Affiliate{
		affiliate("root", ""),
		affiliate("x", "root"),
		affiliate("y", "root"),
		affiliate("z", "x"),
	})

	assert.Equal(t, g.ChildrenOf("root"), []string{"x", "y"})
	assert.Equal(t, len(g.ChildrenOf("z")), 0)
}

func TestDescendantsDownToLevels(t *testing.T) {
	g := chainGraph()

	descendants := g.DescendantsDownTo("root", 2)
	assert.Equal(t, descendants, []Descendant{
		{AffiliateID: "mid", Level: 1},
		{AffiliateID: "leaf", Level: 2},
	})
}

func TestWouldCreateCycle(t *testing.T) {
	g := chainGraph()

	assert.Equal(t, g.WouldCreateCycle("root", "deep"), true)
	assert.Equal(t, g.WouldCreateCycle("mid", "mid"), true)
	assert.Equal(t, g.WouldCreateCycle("deep", "root"), false)

	other := NewGraph([]*domain.Affiliate{
		affiliate("solo", ""),
		affiliate("root", ""),
	})
	assert.Equal(t, other.WouldCreateCycle("solo", "root"), false)
}

func TestParentOf(t *testing.T) {
	g := chainGraph()

	parentID, ok := g.ParentOf("mid")
	assert.Equal(t, ok, true)
	assert.Equal(t, parentID, "root")

	_, ok = g.ParentOf("root")
	assert.Equal(t, ok, false)
}
