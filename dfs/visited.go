package dfs

// visitedSet tracks the cells on the active path, indexed row-major.
// It is owned by a single traversal. Every mark must be paired with an
// unmark on the same call frame.
type visitedSet struct {
	flags []bool
}

func newVisitedSet(size int) *visitedSet {
	return &visitedSet{flags: make([]bool, size)}
}

func (v *visitedSet) mark(idx int) {
	v.flags[idx] = true
}

func (v *visitedSet) unmark(idx int) {
	v.flags[idx] = false
}

func (v *visitedSet) isMarked(idx int) bool {
	return v.flags[idx]
}

// reset clears every flag. Used before each root traversal.
func (v *visitedSet) reset() {
	clear(v.flags)
}
