package sapling

import (
	"fmt"
	"os"
)

// globalDebug mirrors the most recently set Context debug flag so that
// registry operations (which lack a Context pointer) can check it cheaply.
// Only valid with a single Context.
var globalDebug bool

// debugMaxPathDepth is the ancestry depth beyond which a warning is printed.
const debugMaxPathDepth = 32

// debugCheckPathDepth warns on stderr if a newly registered path is
// suspiciously deep, which usually means a derive loop.
func debugCheckPathDepth(id ID, path Path) {
	if len(path) > debugMaxPathDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[sapling] warning: path depth %d exceeds %d (id %d)\n",
			len(path), debugMaxPathDepth, id.Raw())
	}
}

// debugMaxRegistrySize is the entry count beyond which a warning is printed.
const debugMaxRegistrySize = 100000

// debugCheckRegistrySize warns on stderr if the registry keeps growing,
// which usually means teardown code is not removing IDs.
func debugCheckRegistrySize(n int) {
	if n > debugMaxRegistrySize {
		_, _ = fmt.Fprintf(os.Stderr, "[sapling] warning: registry holds %d paths (threshold %d)\n",
			n, debugMaxRegistrySize)
	}
}

// Validate checks every registry invariant and returns a description of
// each violation found, or nil if the registry is consistent. Intended for
// debug builds and tests; a violation always indicates a bug in code that
// bypassed NewChild/SetParent.
//
// Checked per entry: the path is non-empty, its last element is the entry's
// key, and — when the entry's parent is itself registered — the parent's
// path is exactly the strict prefix.
func (r *Registry) Validate() []string {
	var problems []string
	for id, path := range r.paths {
		if len(path) == 0 {
			problems = append(problems, fmt.Sprintf("id %d: empty path", id.Raw()))
			continue
		}
		if last := path[len(path)-1]; last != id {
			problems = append(problems, fmt.Sprintf("id %d: path ends with %d, not itself", id.Raw(), last.Raw()))
		}
		if len(path) < 2 {
			continue
		}
		parent := path[len(path)-2]
		pp, ok := r.paths[parent]
		if !ok {
			// Unregistered ancestors are allowed: removal is non-cascading,
			// so descendants legitimately outlive their parents' entries.
			continue
		}
		if len(pp) != len(path)-1 {
			problems = append(problems, fmt.Sprintf("id %d: parent %d path length %d, want %d",
				id.Raw(), parent.Raw(), len(pp), len(path)-1))
			continue
		}
		for i := range pp {
			if pp[i] != path[i] {
				problems = append(problems, fmt.Sprintf("id %d: parent %d path diverges at index %d",
					id.Raw(), parent.Raw(), i))
				break
			}
		}
	}
	return problems
}
