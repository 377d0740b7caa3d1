package sapling

import (
	"strings"
	"testing"
)

func TestValidateCleanRegistry(t *testing.T) {
	reg := NewRegistry()
	root := reg.NewChild(NextID())
	a := reg.NewChild(root)
	b := reg.NewChild(root)
	reg.NewChild(a)
	reg.SetParent(NextID(), b)

	if problems := reg.Validate(); len(problems) != 0 {
		t.Errorf("Validate() = %v, want none", problems)
	}
}

func TestValidateAllowsRemovedAncestors(t *testing.T) {
	reg := NewRegistry()
	root := reg.NewChild(NextID())
	mid := reg.NewChild(root)
	reg.NewChild(mid)
	reg.RemoveIDPath(mid)

	// Non-cascading removal leaves the grandchild's stale path in place;
	// that is documented behavior, not corruption.
	if problems := reg.Validate(); len(problems) != 0 {
		t.Errorf("Validate() = %v, want none", problems)
	}
}

func TestValidateDetectsBadTail(t *testing.T) {
	reg := NewRegistry()
	root := reg.NewChild(NextID())
	reg.paths[root] = Path{root, NextID()} // corrupt: entry no longer ends with its key

	problems := reg.Validate()
	if len(problems) == 0 {
		t.Fatal("Validate() should report the corrupted entry")
	}
	if !strings.Contains(problems[0], "not itself") {
		t.Errorf("problem = %q, want a bad-tail report", problems[0])
	}
}

func TestValidateDetectsDivergedPrefix(t *testing.T) {
	reg := NewRegistry()
	r1 := reg.NewChild(NextID())
	r2 := reg.NewChild(NextID())
	mid := reg.NewChild(r2)

	// Corrupt: claims mid as parent but starts under the wrong root.
	child := NextID()
	reg.paths[child] = Path{r1, mid, child}

	if problems := reg.Validate(); len(problems) == 0 {
		t.Error("Validate() should report the diverged prefix")
	}
}

func TestValidateDetectsLengthMismatch(t *testing.T) {
	reg := NewRegistry()
	root := reg.NewChild(NextID())
	mid := reg.NewChild(root)

	// Corrupt: mid's registered path has two elements, so a child path via
	// mid must have three.
	child := NextID()
	reg.paths[child] = Path{mid, child}

	if problems := reg.Validate(); len(problems) == 0 {
		t.Error("Validate() should report the prefix length mismatch")
	}
}

func TestSetDebugMode(t *testing.T) {
	ctx := NewContext()
	ctx.SetDebugMode(true)
	if !globalDebug {
		t.Error("SetDebugMode(true) should raise the package debug flag")
	}
	ctx.SetDebugMode(false)
	if globalDebug {
		t.Error("SetDebugMode(false) should clear the package debug flag")
	}
}
