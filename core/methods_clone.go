// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning graph instances.
// Identity:
//   - Clone keeps every handle valid: a NodeIdx/EdgeIdx of the source
//     addresses the same element on the clone.
//   - CloneEmpty keeps node handles; edge handles of the source are stale on
//     the clone.
// Payloads are copied by assignment; pointer-bearing payloads are shared.

package core

func (g *base[N, E]) cloneBase() base[N, E] {
	return base[N, E]{
		nodes:    g.nodes.Clone(),
		edges:    g.edges.Clone(),
		adj:      g.adj.clone(),
		enc:      g.enc,
		multi:    g.multi,
		directed: g.directed,
	}
}

func (g *base[N, E]) cloneEmptyBase() base[N, E] {
	c := g.cloneBase()
	c.ClearEdges()

	return c
}

// Clone returns an independent copy of g with identical handles.
// Complexity: O(V + E).
func (g *SimpleListGraph[N, E]) Clone() *SimpleListGraph[N, E] {
	return &SimpleListGraph[N, E]{simple[N, E]{g.cloneBase()}}
}

// CloneEmpty returns a copy of g with the same nodes and no edges.
func (g *SimpleListGraph[N, E]) CloneEmpty() *SimpleListGraph[N, E] {
	return &SimpleListGraph[N, E]{simple[N, E]{g.cloneEmptyBase()}}
}

// Clone returns an independent copy of g with identical handles.
func (g *SimpleMapGraph[N, E]) Clone() *SimpleMapGraph[N, E] {
	return &SimpleMapGraph[N, E]{simple[N, E]{g.cloneBase()}}
}

// CloneEmpty returns a copy of g with the same nodes and no edges.
func (g *SimpleMapGraph[N, E]) CloneEmpty() *SimpleMapGraph[N, E] {
	return &SimpleMapGraph[N, E]{simple[N, E]{g.cloneEmptyBase()}}
}

// Clone returns an independent copy of g with identical handles.
func (g *MultiListGraph[N, E]) Clone() *MultiListGraph[N, E] {
	return &MultiListGraph[N, E]{g.cloneBase()}
}

// CloneEmpty returns a copy of g with the same nodes and no edges.
func (g *MultiListGraph[N, E]) CloneEmpty() *MultiListGraph[N, E] {
	return &MultiListGraph[N, E]{g.cloneEmptyBase()}
}

// Clone returns an independent copy of g with identical handles.
func (g *MultiMapGraph[N, E]) Clone() *MultiMapGraph[N, E] {
	return &MultiMapGraph[N, E]{g.cloneBase()}
}

// CloneEmpty returns a copy of g with the same nodes and no edges.
func (g *MultiMapGraph[N, E]) CloneEmpty() *MultiMapGraph[N, E] {
	return &MultiMapGraph[N, E]{g.cloneEmptyBase()}
}
