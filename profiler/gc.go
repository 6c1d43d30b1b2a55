// SPDX-License-Identifier: MIT

package profiler

import "runtime/debug"

// gcGuard is a capability for the exclusive, scoped suspension of the
// garbage collector. Acquired via pauseGC immediately before a timed
// trial starts and released immediately after the clock stops; release
// also runs deferred so a panicking workload cannot leave the collector
// off.
type gcGuard struct {
	prev   int
	active bool
}

// pauseGC turns the collector off and captures the previous GC target
// percentage. When enabled is false it returns an inert guard, so the
// measurement path has the same shape whether suppression is on or off.
func pauseGC(enabled bool) gcGuard {
	if !enabled {
		return gcGuard{}
	}
	return gcGuard{prev: debug.SetGCPercent(-1), active: true}
}

// release restores the collector to its pre-acquire target percentage.
// Idempotent: only the first call restores, so pairing an eager release
// with a deferred one is safe.
func (g *gcGuard) release() {
	if !g.active {
		return
	}
	g.active = false
	debug.SetGCPercent(g.prev)
}
