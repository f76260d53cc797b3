package engine

import "github.com/refpilot/affiliate-service/internal/domain"

// MaxOverrideDepth bounds ancestor and descendant walks. Relatives past
// this depth never take part in commission math.
const MaxOverrideDepth = 3

type Ancestor struct {
	AffiliateID string
	Level       int // 1 = direct parent, 2 = grandparent, 3 = great-grandparent
}

type Descendant struct {
	AffiliateID string
	Level       int // 1 = direct recruit
}

// Graph is an in-memory snapshot of the recruiter forest, keyed by
// affiliate id. The store does not enforce acyclicity, so every walk
// carries a visited set and stops instead of looping; detected cycles
// are collected for operator reporting.
type Graph struct {
	parents  map[string]string
	children map[string][]string
	known    map[string]bool
	cycles   []string
}

func NewGraph(affiliates []*domain.Affiliate) *Graph {
	g := &Graph{
		parents:  make(map[string]string, len(affiliates)),
		children: make(map[string][]string),
		known:    make(map[string]bool, len(affiliates)),
	}
	for _, affiliate := range affiliates {
		g.known[affiliate.ID] = true
	}
	for _, affiliate := range affiliates {
		if affiliate.ParentID == "" {
			continue
		}
		g.parents[affiliate.ID] = affiliate.ParentID
		g.children[affiliate.ParentID] = append(g.children[affiliate.ParentID], affiliate.ID)
	}
	return g
}

func (g *Graph) Has(affiliateID string) bool {
	return g.known[affiliateID]
}

func (g *Graph) ParentOf(affiliateID string) (string, bool) {
	parentID, ok := g.parents[affiliateID]
	return parentID, ok
}

func (g *Graph) ChildrenOf(affiliateID string) []string {
	return g.children[affiliateID]
}

// AncestorsUpTo walks the parent chain at most maxLevels steps. A cycle
// is treated as "no further ancestors" and recorded, never looped on.
func (g *Graph) AncestorsUpTo(affiliateID string, maxLevels int) []Ancestor {
	if maxLevels > MaxOverrideDepth {
		maxLevels = MaxOverrideDepth
	}

	var ancestors []Ancestor
	visited := map[string]bool{affiliateID: true}
	current := affiliateID
	for level := 1; level <= maxLevels; level++ {
		parentID, ok := g.parents[current]
		if !ok {
			break
		}
		if visited[parentID] {
			g.cycles = append(g.cycles, parentID)
			break
		}
		visited[parentID] = true
		ancestors = append(ancestors, Ancestor{AffiliateID: parentID, Level: level})
		current = parentID
	}
	return ancestors
}

// DescendantsDownTo collects recruits breadth-first down to maxLevels.
func (g *Graph) DescendantsDownTo(affiliateID string, maxLevels int) []Descendant {
	if maxLevels > MaxOverrideDepth {
		maxLevels = MaxOverrideDepth
	}

	var descendants []Descendant
	visited := map[string]bool{affiliateID: true}
	frontier := []string{affiliateID}
	for level := 1; level <= maxLevels; level++ {
		var next []string
		for _, id := range frontier {
			for _, childID := range g.children[id] {
				if visited[childID] {
					g.cycles = append(g.cycles, childID)
					continue
				}
				visited[childID] = true
				descendants = append(descendants, Descendant{AffiliateID: childID, Level: level})
				next = append(next, childID)
			}
		}
		if len(next) == 0 {
			break
		}
		frontier = next
	}
	return descendants
}

// WouldCreateCycle reports whether assigning parentID as childID's
// recruiter makes childID its own ancestor. Checked before every parent
// write; the walk itself is unbounded in depth but visited-set safe.
func (g *Graph) WouldCreateCycle(childID, parentID string) bool {
	if childID == parentID {
		return true
	}
	visited := map[string]bool{}
	current := parentID
	for {
		if current == childID {
			return true
		}
		if visited[current] {
			return true
		}
		visited[current] = true
		next, ok := g.parents[current]
		if !ok {
			return false
		}
		current = next
	}
}

// Cycles returns affiliate ids at which a walk hit a cycle since the
// graph was built. Non-empty means the stored forest is corrupt.
func (g *Graph) Cycles() []string {
	return g.cycles
}
