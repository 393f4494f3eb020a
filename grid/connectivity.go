package grid

// neighborOffsets are the 4-connectivity directions: cells are adjacent iff
// they differ by exactly 1 in one axis and 0 in the other.
var neighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Connected reports whether the occupancy set forms a single 4-connected
// component. Sets with zero or one cell are trivially connected.
func Connected(keys KeySet) bool {
	if len(keys) <= 1 {
		return true
	}

	var start Key
	for k := range keys {
		start = k
		break
	}

	visited := make(map[Key]struct{}, len(keys))
	queue := []Key{start}
	visited[start] = struct{}{}

	for len(queue) > 0 {
		k := queue[0]
		queue = queue[1:]
		gx, gy, ok := k.Coords()
		if !ok {
			continue
		}
		for _, off := range neighborOffsets {
			nk := MakeKey(gx+off[0], gy+off[1])
			if _, occ := keys[nk]; !occ {
				continue
			}
			if _, seen := visited[nk]; seen {
				continue
			}
			visited[nk] = struct{}{}
			queue = append(queue, nk)
		}
	}

	return len(visited) == len(keys)
}

// NeighborCount returns how many of the four neighbors of (gx, gy) are in
// the set.
func NeighborCount(keys KeySet, gx, gy int) int {
	n := 0
	for _, off := range neighborOffsets {
		if _, ok := keys[MakeKey(gx+off[0], gy+off[1])]; ok {
			n++
		}
	}
	return n
}
