// Package unionfind implements a disjoint-set over *core.Node used by Kruskal
// to reject cycle-forming edges.
//
// Nodes are mapped to small arena indices; the forest of parent pointers uses
// union by rank and path compression. Every successful Union hands the merged
// group a fresh GroupID, so identifiers are never reused and callers can only
// rely on group equality, never on identifier stability.
package unionfind

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/spantree/core"
)

// ErrUnknownNode indicates an operation referenced a node the set was not seeded with.
var ErrUnknownNode = errors.Wrap(core.ErrInvalidInput, "unionfind: unknown node")

// GroupID identifies a group. Only equality between GroupIDs is meaningful.
type GroupID int

// Set is a disjoint-set forest. It is not safe for concurrent use.
type Set struct {
	index  map[*core.Node]int // node → arena slot
	parent []int              // parent[i] == i for roots
	rank   []int              // upper bound on tree height, roots only
	label  []GroupID          // label[root] is the group's current id
	nextID GroupID            // next fresh id
	groups int                // number of disjoint groups
}

// New seeds one singleton group per distinct node.
// Passing the same pointer twice is idempotent: same node, same group.
//
// Errors:
//   - core.ErrInvalidInput if a node is nil.
//
// Complexity: O(n).
func New(nodes []*core.Node) (*Set, error) {
	s := &Set{
		index:  make(map[*core.Node]int, len(nodes)),
		parent: make([]int, 0, len(nodes)),
		rank:   make([]int, 0, len(nodes)),
		label:  make([]GroupID, 0, len(nodes)),
	}
	for i, n := range nodes {
		if n == nil {
			return nil, errors.Wrapf(core.ErrInvalidInput, "unionfind: nil node at position %d", i)
		}
		if _, ok := s.index[n]; ok {
			continue
		}
		slot := len(s.parent)
		s.index[n] = slot
		s.parent = append(s.parent, slot)
		s.rank = append(s.rank, 0)
		s.label = append(s.label, s.nextID)
		s.nextID++
	}
	s.groups = len(s.parent)

	return s, nil
}

// Len returns the number of distinct nodes in the set.
func (s *Set) Len() int { return len(s.parent) }

// Groups returns the number of disjoint groups.
func (s *Set) Groups() int { return s.groups }

// Find returns the group of n, or false if n is unknown.
// Complexity: O(α(n)) amortized.
func (s *Set) Find(n *core.Node) (GroupID, bool) {
	i, ok := s.index[n]
	if !ok {
		return 0, false
	}

	return s.label[s.root(i)], true
}

// Connected reports whether a and b are in the same group.
//
// Errors:
//   - ErrUnknownNode if either node is unknown.
func (s *Set) Connected(a, b *core.Node) (bool, error) {
	i, j, err := s.slots(a, b)
	if err != nil {
		return false, err
	}

	return s.root(i) == s.root(j), nil
}

// Union merges the groups containing a and b. The merged group receives a
// GroupID never handed out before. Merging a group with itself is a no-op.
//
// Errors:
//   - ErrUnknownNode if either node is unknown; the set is left untouched.
//
// Complexity: O(α(n)) amortized.
func (s *Set) Union(a, b *core.Node) error {
	i, j, err := s.slots(a, b)
	if err != nil {
		return err
	}
	ri, rj := s.root(i), s.root(j)
	if ri == rj {
		return nil
	}
	// attach the shallower tree under the deeper one
	if s.rank[ri] < s.rank[rj] {
		ri, rj = rj, ri
	}
	s.parent[rj] = ri
	if s.rank[ri] == s.rank[rj] {
		s.rank[ri]++
	}
	s.label[ri] = s.nextID
	s.nextID++
	s.groups--

	return nil
}

// slots resolves both nodes to arena indices.
func (s *Set) slots(a, b *core.Node) (int, int, error) {
	i, ok := s.index[a]
	if !ok {
		return 0, 0, errors.Wrapf(ErrUnknownNode, "node %s", a)
	}
	j, ok := s.index[b]
	if !ok {
		return 0, 0, errors.Wrapf(ErrUnknownNode, "node %s", b)
	}

	return i, j, nil
}

// root walks to the representative with path halving.
func (s *Set) root(i int) int {
	for s.parent[i] != i {
		s.parent[i] = s.parent[s.parent[i]]
		i = s.parent[i]
	}

	return i
}
