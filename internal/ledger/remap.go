package ledger

import "sort"

// MoveMapping builds the oldIndex→newIndex mapping for a catalog
// reorder, following the same sequence-move rule the catalog applies:
// moved indices land at the destination (adjusted for their own
// removal), indices between source and destination shift by one to
// close the gap, everything else keeps its position. totalBeforeMove
// is the catalog length before the move.
func MoveMapping(fromPositions map[int]struct{}, toPosition, totalBeforeMove int) map[int]int {
	order := make([]int, 0, totalBeforeMove)
	for i := 0; i < totalBeforeMove; i++ {
		order = append(order, i)
	}

	from := make([]int, 0, len(fromPositions))
	for p := range fromPositions {
		if p >= 0 && p < totalBeforeMove {
			from = append(from, p)
		}
	}
	sort.Ints(from)

	moved := make([]int, 0, len(from))
	for _, p := range from {
		moved = append(moved, order[p])
	}
	rest := make([]int, 0, totalBeforeMove-len(from))
	for i, v := range order {
		if _, ok := fromPositions[i]; !ok {
			rest = append(rest, v)
		}
	}

	dest := toPosition
	for _, p := range from {
		if p < toPosition {
			dest--
		}
	}
	if dest < 0 {
		dest = 0
	}
	if dest > len(rest) {
		dest = len(rest)
	}

	reordered := make([]int, 0, totalBeforeMove)
	reordered = append(reordered, rest[:dest]...)
	reordered = append(reordered, moved...)
	reordered = append(reordered, rest[dest:]...)

	mapping := make(map[int]int, totalBeforeMove)
	for newIdx, oldIdx := range reordered {
		mapping[oldIdx] = newIdx
	}
	return mapping
}

// DeleteMapping builds the mapping for removing one catalog position:
// the deleted index gets no target (so ApplyMapping drops its data)
// and every index above it shifts down by one.
func DeleteMapping(position, totalBeforeDelete int) map[int]int {
	mapping := make(map[int]int, totalBeforeDelete)
	for i := 0; i < totalBeforeDelete; i++ {
		switch {
		case i < position:
			mapping[i] = i
		case i > position:
			mapping[i] = i - 1
		}
	}
	return mapping
}
