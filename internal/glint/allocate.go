// Color allocation: pick the palette entry that clashes least with
// recently assigned neighbors.
package glint

// historyCap is the most history entries the cache hands to PickColor.
// The persistence layer evicts beyond this, so candidates always exist.
const historyCap = 10

// PickColor returns a palette index not present in history, minimizing the
// recency-weighted closeness cost against the entries that are. history is
// most-recent-first; position i carries weight 1024>>i, so the last
// assignment dominates and older ones decay geometrically. Ties resolve to
// the lowest candidate index, which makes the pick deterministic.
func PickColor(history []int) int {
	if len(history) > historyCap {
		history = history[:historyCap]
	}
	used := make(map[int]bool, len(history))
	for _, idx := range history {
		used[idx] = true
	}

	best := -1
	bestCost := 0
	for candidate := range Palette {
		if used[candidate] {
			continue
		}
		cost := 0
		for i, prior := range history {
			if prior < 0 || prior >= len(Palette) {
				continue
			}
			cost += penalty(Palette[candidate].Name, Palette[prior].Name) * (1024 >> i)
		}
		if best == -1 || cost < bestCost {
			best = candidate
			bestCost = cost
		}
	}
	if best == -1 {
		// Unreachable while the palette outnumbers the history cap.
		return 0
	}
	return best
}
