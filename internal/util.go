package internal

// ReconstructPath follows parent links from current back to the root
// (the first id whose parent is negative) and returns the ids root first.
func ReconstructPath(parentOf func(id int) int, current int) []int {
	path := []int{current}
	for {
		previous := parentOf(current)
		if previous < 0 {
			break
		}
		path = append(path, previous)
		current = previous
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
