// Package loader sequences view fetches. Triggers outrun responses: a rapid
// double action can leave two fetches for the same panel in flight, and
// nothing about the transport orders their completions. Each fetch therefore
// takes a ticket, and a response is applied only if no newer response for
// that panel has landed first.
package loader

import "sync/atomic"

// Guard is the per-panel sequence authority. The zero value is ready to use.
type Guard struct {
	issued  atomic.Uint64
	applied atomic.Uint64
}

// Next issues the ticket for a fetch about to start. Tickets are strictly
// increasing for the lifetime of the guard.
func (g *Guard) Next() uint64 {
	return g.issued.Add(1)
}

// Admit reports whether the response holding ticket seq may be applied, and
// records it as the newest applied response if so. A response is stale when
// a response with a higher ticket has already been admitted.
func (g *Guard) Admit(seq uint64) bool {
	for {
		current := g.applied.Load()
		if seq <= current {
			return false
		}
		if g.applied.CompareAndSwap(current, seq) {
			return true
		}
	}
}

// Latest reports the newest admitted ticket, zero if none.
func (g *Guard) Latest() uint64 {
	return g.applied.Load()
}
