package sapling

import "fmt"

// Registry is the tree-shape cache: it maps each live ID to its ancestry
// Path. It is confined to a single owner context (typically the UI loop
// goroutine) and is NOT safe for concurrent use — only ID allocation is.
//
// Two invariants hold for every entry: the key is the last element of its
// own path, and if the second-to-last element is itself registered, its path
// is exactly the strict prefix. RemoveIDPath deliberately breaks neither:
// it removes a single entry and leaves descendants untouched.
type Registry struct {
	paths map[ID]Path
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{paths: make(map[ID]Path)}
}

// NewChild derives a child ID under `of` and registers its path.
//
// If `of` has no registered path it was allocated by NextID but never placed
// in the hierarchy, so `of` itself is reused as the child and registered
// with path [of]. Otherwise a fresh ID is allocated and registered with
// `of`'s path plus the new ID. Either way the returned ID is registered and
// its path ends with it.
func (r *Registry) NewChild(of ID) ID {
	parent := r.paths[of]
	id := of
	if len(parent) > 0 {
		id = NextID()
	}
	path := parent.extend(id)
	r.paths[id] = path
	if globalDebug {
		debugCheckPathDepth(id, path)
		debugCheckRegistrySize(len(r.paths))
	}
	return id
}

// SetParent forces id to become a child of parent, overwriting any path id
// already had. The parent must already be registered; attaching under an
// unregistered parent is a programmer error and panics.
func (r *Registry) SetParent(id, parent ID) {
	pp, ok := r.paths[parent]
	if !ok {
		panic(fmt.Sprintf("sapling: SetParent: parent %d has no registered path", parent.Raw()))
	}
	r.paths[id] = pp.extend(id)
}

// Parent returns the registered parent of id. ok is false when id is
// unregistered or is a root (its path has fewer than two elements).
func (r *Registry) Parent(id ID) (parent ID, ok bool) {
	path := r.paths[id]
	if len(path) < 2 {
		return 0, false
	}
	return path[len(path)-2], true
}

// RootID returns the first element of id's registered path, i.e. the root
// of the subtree id belongs to. ok is false when id is unregistered.
func (r *Registry) RootID(id ID) (root ID, ok bool) {
	path := r.paths[id]
	if len(path) == 0 {
		return 0, false
	}
	return path[0], true
}

// IDPath returns a copy of id's registered path, or nil if id is
// unregistered. Absence is a normal state, not an error: IDs that were
// allocated but never attached simply have no path yet.
func (r *Registry) IDPath(id ID) Path {
	return r.paths[id].clone()
}

// HasIDPath reports whether id is registered.
func (r *Registry) HasIDPath(id ID) bool {
	_, ok := r.paths[id]
	return ok
}

// RemoveIDPath removes id's registration. No-op if id is unregistered.
//
// Removal never cascades: descendants keep their (now stale) paths until
// they are removed individually. Teardown code removes each view's ID as
// the view itself is destroyed, so a cascading delete here would only race
// with that.
func (r *Registry) RemoveIDPath(id ID) {
	delete(r.paths, id)
}

// Len returns the number of registered IDs.
func (r *Registry) Len() int {
	return len(r.paths)
}
