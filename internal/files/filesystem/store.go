package filesystem

import (
	"fmt"

	"github.com/vvka-141/fixturehost/internal/files/pathutil"
	"github.com/vvka-141/fixturehost/pkg/fixturehost"
)

// Store maps canonical paths to nodes, one node per key.
type Store struct {
	nodes map[pathutil.Path]Node
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{nodes: make(map[pathutil.Path]Node)}
}

// Contains reports whether a node is stored under p.
func (s *Store) Contains(p pathutil.Path) bool {
	_, ok := s.nodes[p]
	return ok
}

// Lookup returns the node stored under p, if any.
func (s *Store) Lookup(p pathutil.Path) (Node, bool) {
	n, ok := s.nodes[p]
	return n, ok
}

// Get returns the node stored under p.
// Panics if p is absent; callers check Contains first.
func (s *Store) Get(p pathutil.Path) Node {
	n, ok := s.nodes[p]
	if !ok {
		panic(fmt.Errorf("%w: no node stored at %q", fixturehost.ErrContractViolation, p))
	}
	return n
}

// Set stores n under p, replacing any previous node.
func (s *Store) Set(p pathutil.Path, n Node) {
	s.nodes[p] = n
}

// Len returns the number of stored nodes.
func (s *Store) Len() int {
	return len(s.nodes)
}
