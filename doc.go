// Package sapling provides stable view identity, ancestry tracking, and a
// decoupled update mailbox for retained-mode UI trees.
//
// Sapling is the addressing layer of a UI framework: it says nothing about
// rendering or layout. It gives every view a process-unique [ID], keeps each
// ID's root-to-self ancestry [Path] in a [Registry], and carries mutation
// requests through a [Mailbox] so that code running deep inside layout,
// paint, or event handling can ask for changes without mutable access to
// the tree.
//
// # Quick start
//
// All per-context state hangs off a [Context]:
//
//	ctx := sapling.NewContext()
//
//	root := ctx.NewChild(sapling.NextID()) // fresh IDs are reused as roots
//	label := ctx.NewChild(root)            // registered parents get new child IDs
//
//	ctx.RequestFocus(label)
//	ctx.UpdateStyle(label, sapling.Style{
//		Set:   sapling.StyleColor,
//		Color: sapling.Color{R: 0.3, G: 0.7, B: 1, A: 1},
//	}, 0)
//
// The framework's main loop drains the mailbox once per cycle and applies
// each message to the live tree:
//
//	for _, u := range ctx.Mailbox().Drain() {
//		applyToTree(u) // messages for removed IDs are no-ops
//	}
//	for _, d := range ctx.Mailbox().DrainDeferred() {
//		applyState(d.ID, d.State)
//	}
//
// # Ownership
//
// A Context (and its Registry and Mailbox) belongs to exactly one logical
// owner, typically the UI loop goroutine, and must never be shared across
// goroutines. Only [NextID] is safe for concurrent use.
//
// # Payloads
//
// Style, animation, listener, and menu payloads ([Style], [Animation],
// [EventCallback], [MenuCallback], ...) are carried opaquely; interpreting
// them is the consuming framework's job. Animations are tween descriptions
// built on [gween].
//
// [gween]: https://github.com/tanema/gween
package sapling
