package sapling

// Path is the ancestry of a view: its IDs ordered root-first, ending with
// the view's own ID. An empty (or nil) Path is the canonical representation
// of a view that has not been registered yet.
type Path []ID

// Dispatch returns the ordered IDs including the root. Event routing walks
// the slice forward for capture and backward for bubbling. The returned
// slice shares the Path's backing array and MUST NOT be mutated.
func (p Path) Dispatch() []ID {
	return p
}

// Contains reports whether id appears anywhere on the path, i.e. whether id
// is the view itself or one of its ancestors.
func (p Path) Contains(id ID) bool {
	for _, pid := range p {
		if pid == id {
			return true
		}
	}
	return false
}

// extend returns a fresh path consisting of p followed by id. The input is
// never aliased, so registry entries stay independent of caller slices.
func (p Path) extend(id ID) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = id
	return out
}

// clone returns an independent copy of p, or nil if p is empty.
func (p Path) clone() Path {
	if len(p) == 0 {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}
