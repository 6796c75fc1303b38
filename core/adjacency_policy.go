// SPDX-License-Identifier: MIT
//
// File: adjacency_policy.go
// Role: Directed / undirected adjacency policies over a StorageEncoding.
//
// Policy contract:
//   - directedPolicy keeps two records per node, out and in, and updates
//     both on every link/unlink.
//   - undirectedPolicy keeps one record per node and updates both endpoints;
//     a self-loop is inserted twice into the same record and so counts 2.
//   - linked() consults both records touched by a (src,dst) pair. Insertion
//     relies on it so a stale half-association can never hide a duplicate.

package core

// adjacencyPolicy owns every per-node record of one graph.
type adjacencyPolicy interface {
	isDirected() bool
	addNode(n NodeIdx)
	dropNode(n NodeIdx)
	link(src, dst NodeIdx, e EdgeIdx)
	unlink(src, dst NodeIdx, e EdgeIdx)
	// linked reports whether src and dst are already connected, checking
	// every record the pair touches.
	linked(src, dst NodeIdx) bool
	// outgoing is the record EdgesOf walks: out-edges for directed graphs,
	// incident edges for undirected graphs. nil for unknown nodes.
	outgoing(n NodeIdx) record
	// incoming is the reverse record; the same record for undirected graphs.
	incoming(n NodeIdx) record
	// incident appends every edge touching n; self-loops appear twice.
	incident(dst []EdgeIdx, n NodeIdx) []EdgeIdx
	degree(n NodeIdx) int
	// reset empties every record, keeping nodes registered.
	reset()
	// clear forgets every node.
	clear()
	// clone returns an independent deep copy.
	clone() adjacencyPolicy
}

func newPolicy(directed bool, enc StorageEncoding, multi bool, nodeHint int) adjacencyPolicy {
	if directed {
		return &directedPolicy{
			enc:   enc,
			multi: multi,
			out:   make(map[NodeIdx]record, nodeHint),
			in:    make(map[NodeIdx]record, nodeHint),
		}
	}

	return &undirectedPolicy{
		enc:   enc,
		multi: multi,
		recs:  make(map[NodeIdx]record, nodeHint),
	}
}

// directedPolicy records each edge on the source's out record and the
// destination's in record.
type directedPolicy struct {
	enc   StorageEncoding
	multi bool
	out   map[NodeIdx]record
	in    map[NodeIdx]record
}

func (p *directedPolicy) isDirected() bool { return true }

func (p *directedPolicy) addNode(n NodeIdx) {
	p.out[n] = p.enc.newRecord(p.multi)
	p.in[n] = p.enc.newRecord(p.multi)
}

func (p *directedPolicy) dropNode(n NodeIdx) {
	delete(p.out, n)
	delete(p.in, n)
}

func (p *directedPolicy) link(src, dst NodeIdx, e EdgeIdx) {
	p.out[src].insert(dst, e)
	p.in[dst].insert(src, e)
}

func (p *directedPolicy) unlink(src, dst NodeIdx, e EdgeIdx) {
	if r := p.out[src]; r != nil {
		r.remove(dst, e)
	}
	if r := p.in[dst]; r != nil {
		r.remove(src, e)
	}
}

func (p *directedPolicy) linked(src, dst NodeIdx) bool {
	if r := p.out[src]; r != nil && r.has(dst) {
		return true
	}
	if r := p.in[dst]; r != nil && r.has(src) {
		return true
	}

	return false
}

func (p *directedPolicy) outgoing(n NodeIdx) record { return p.out[n] }

func (p *directedPolicy) incoming(n NodeIdx) record { return p.in[n] }

func (p *directedPolicy) incident(dst []EdgeIdx, n NodeIdx) []EdgeIdx {
	collect := func(_ NodeIdx, e EdgeIdx) bool {
		dst = append(dst, e)
		return true
	}
	if r := p.out[n]; r != nil {
		r.each(collect)
	}
	if r := p.in[n]; r != nil {
		r.each(collect)
	}

	return dst
}

func (p *directedPolicy) degree(n NodeIdx) int {
	d := 0
	if r := p.out[n]; r != nil {
		d += r.size()
	}
	if r := p.in[n]; r != nil {
		d += r.size()
	}

	return d
}

func (p *directedPolicy) reset() {
	for _, r := range p.out {
		r.reset()
	}
	for _, r := range p.in {
		r.reset()
	}
}

func (p *directedPolicy) clear() {
	clear(p.out)
	clear(p.in)
}

func (p *directedPolicy) clone() adjacencyPolicy {
	return &directedPolicy{enc: p.enc, multi: p.multi, out: cloneRecords(p.out), in: cloneRecords(p.in)}
}

// undirectedPolicy records each edge on both endpoints' single record.
type undirectedPolicy struct {
	enc   StorageEncoding
	multi bool
	recs  map[NodeIdx]record
}

func (p *undirectedPolicy) isDirected() bool { return false }

func (p *undirectedPolicy) addNode(n NodeIdx) {
	p.recs[n] = p.enc.newRecord(p.multi)
}

func (p *undirectedPolicy) dropNode(n NodeIdx) {
	delete(p.recs, n)
}

func (p *undirectedPolicy) link(src, dst NodeIdx, e EdgeIdx) {
	p.recs[src].insert(dst, e)
	p.recs[dst].insert(src, e)
}

func (p *undirectedPolicy) unlink(src, dst NodeIdx, e EdgeIdx) {
	if r := p.recs[src]; r != nil {
		r.remove(dst, e)
	}
	if r := p.recs[dst]; r != nil {
		r.remove(src, e)
	}
}

func (p *undirectedPolicy) linked(src, dst NodeIdx) bool {
	if r := p.recs[src]; r != nil && r.has(dst) {
		return true
	}
	if r := p.recs[dst]; r != nil && r.has(src) {
		return true
	}

	return false
}

func (p *undirectedPolicy) outgoing(n NodeIdx) record { return p.recs[n] }

func (p *undirectedPolicy) incoming(n NodeIdx) record { return p.recs[n] }

func (p *undirectedPolicy) incident(dst []EdgeIdx, n NodeIdx) []EdgeIdx {
	if r := p.recs[n]; r != nil {
		r.each(func(_ NodeIdx, e EdgeIdx) bool {
			dst = append(dst, e)
			return true
		})
	}

	return dst
}

func (p *undirectedPolicy) degree(n NodeIdx) int {
	if r := p.recs[n]; r != nil {
		return r.size()
	}

	return 0
}

func (p *undirectedPolicy) reset() {
	for _, r := range p.recs {
		r.reset()
	}
}

func (p *undirectedPolicy) clear() {
	clear(p.recs)
}

func (p *undirectedPolicy) clone() adjacencyPolicy {
	return &undirectedPolicy{enc: p.enc, multi: p.multi, recs: cloneRecords(p.recs)}
}

func cloneRecords(src map[NodeIdx]record) map[NodeIdx]record {
	out := make(map[NodeIdx]record, len(src))
	for n, r := range src {
		out[n] = r.clone()
	}

	return out
}
