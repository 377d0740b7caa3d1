package sapling

// Context is the single owner handle for one logical UI context: it owns
// that context's Registry and Mailbox and exposes the whole hierarchy and
// request surface through one object.
//
// A Context must stay confined to its owner (typically the UI loop
// goroutine). Nothing in it is synchronized; only NextID is safe to call
// from other goroutines. Re-entrant use within the owner is fine — request
// methods only append to the mailbox and hierarchy methods only touch the
// registry by key, so a callback running during a drain may freely enqueue
// more requests.
type Context struct {
	reg   *Registry
	box   *Mailbox
	debug bool
}

// NewContext creates a context with an empty registry and mailbox.
func NewContext() *Context {
	return &Context{
		reg: NewRegistry(),
		box: NewMailbox(),
	}
}

// Registry returns the context's path registry.
func (c *Context) Registry() *Registry {
	return c.reg
}

// Mailbox returns the context's update mailbox. The consumer loop drains it
// each cycle: first Drain, then DrainDeferred.
func (c *Context) Mailbox() *Mailbox {
	return c.box
}

// SetDebugMode enables or disables debug mode. When enabled, hierarchy
// operations warn on stderr about suspicious trees (see debug.go). Only
// valid with a single Context; multiple Contexts with differing debug modes
// reflect whichever called SetDebugMode last.
func (c *Context) SetDebugMode(enabled bool) {
	c.debug = enabled
	globalDebug = enabled
}

// --- Hierarchy surface ---

// NewChild derives a child ID under `of`. See Registry.NewChild.
func (c *Context) NewChild(of ID) ID {
	return c.reg.NewChild(of)
}

// SetParent attaches id under parent, overwriting id's previous path.
// Panics if parent is unregistered. See Registry.SetParent.
func (c *Context) SetParent(id, parent ID) {
	c.reg.SetParent(id, parent)
}

// Parent returns id's registered parent, if any.
func (c *Context) Parent(id ID) (ID, bool) {
	return c.reg.Parent(id)
}

// RootID returns the root of the subtree id belongs to, if registered.
func (c *Context) RootID(id ID) (ID, bool) {
	return c.reg.RootID(id)
}

// IDPath returns a copy of id's ancestry path, or nil if unregistered.
func (c *Context) IDPath(id ID) Path {
	return c.reg.IDPath(id)
}

// HasIDPath reports whether id is registered.
func (c *Context) HasIDPath(id ID) bool {
	return c.reg.HasIDPath(id)
}

// RemoveIDPath removes id's registration without touching descendants.
func (c *Context) RemoveIDPath(id ID) {
	c.reg.RemoveIDPath(id)
}

// --- Request surface ---
//
// Each method below is a thin constructor for one Update variant, pushed
// onto the immediate queue (UpdateStateDeferred excepted). Requests are
// fire-and-forget: they never block, never fail, and do not touch the
// registry or the view tree. They are the sanctioned way for code running
// during traversal or event handling to ask for a mutation.

// RequestFocus asks the consumer to give id keyboard focus.
func (c *Context) RequestFocus(id ID) {
	c.box.Push(Update{ID: id, Kind: UpdateFocus})
}

// ClearFocus asks the consumer to drop focus if id currently holds it.
func (c *Context) ClearFocus(id ID) {
	c.box.Push(Update{ID: id, Kind: UpdateClearFocus})
}

// RequestActive asks the consumer to make id the active (pressed) view.
func (c *Context) RequestActive(id ID) {
	c.box.Push(Update{ID: id, Kind: UpdateActive})
}

// ClearActive asks the consumer to drop active status if id holds it.
func (c *Context) ClearActive(id ID) {
	c.box.Push(Update{ID: id, Kind: UpdateClearActive})
}

// SetDisabled asks the consumer to enable or disable id.
func (c *Context) SetDisabled(id ID, disabled bool) {
	c.box.Push(Update{ID: id, Kind: UpdateDisabled, Disabled: disabled})
}

// RequestPaint asks the consumer to repaint id without relayout.
func (c *Context) RequestPaint(id ID) {
	c.box.Push(Update{ID: id, Kind: UpdateRequestPaint})
}

// RequestChange asks the consumer to recompute the aspects in flags for id.
func (c *Context) RequestChange(id ID, flags ChangeFlags) {
	c.box.Push(Update{ID: id, Kind: UpdateRequestChange, Flags: flags})
}

// RequestLayout asks the consumer to relayout id.
func (c *Context) RequestLayout(id ID) {
	c.RequestChange(id, ChangeLayout)
}

// UpdateState delivers a typed state value to id's view with the next
// immediate batch.
func (c *Context) UpdateState(id ID, state any) {
	c.box.Push(Update{ID: id, Kind: UpdateState, State: state})
}

// UpdateStateDeferred delivers a typed state value to id's view only after
// the next immediate batch has been applied.
func (c *Context) UpdateStateDeferred(id ID, state any) {
	c.box.PushDeferredState(id, state)
}

// UpdateStyle sets id's style layer at the given stack offset.
func (c *Context) UpdateStyle(id ID, style Style, offset StackOffset) {
	c.box.Push(Update{ID: id, Kind: UpdateStyle, Style: style, Offset: offset})
}

// UpdateClass assigns a named style class to id.
func (c *Context) UpdateClass(id ID, class StyleClass) {
	c.box.Push(Update{ID: id, Kind: UpdateClass, Class: class})
}

// UpdateStyleSelector sets the style id uses while in the selector's
// interaction state.
func (c *Context) UpdateStyleSelector(id ID, style Style, selector StyleSelector) {
	c.box.Push(Update{ID: id, Kind: UpdateStyleSelector, Style: style, Selector: selector})
}

// KeyboardNavigatable includes id in the keyboard tab order.
func (c *Context) KeyboardNavigatable(id ID) {
	c.box.Push(Update{ID: id, Kind: UpdateKeyboardNavigatable})
}

// Draggable allows id to be dragged.
func (c *Context) Draggable(id ID) {
	c.box.Push(Update{ID: id, Kind: UpdateDraggable})
}

// AddEventListener attaches action as id's listener for the given event
// type. Ownership of the callback transfers to the message.
func (c *Context) AddEventListener(id ID, event EventType, action EventCallback) {
	c.box.Push(Update{ID: id, Kind: UpdateEventListener, Event: event, OnEvent: action})
}

// AddResizeListener attaches action to run when id's bounds change.
func (c *Context) AddResizeListener(id ID, action ResizeCallback) {
	c.box.Push(Update{ID: id, Kind: UpdateResizeListener, OnResize: action})
}

// AddMoveListener attaches action to run when id's origin moves.
func (c *Context) AddMoveListener(id ID, action MoveCallback) {
	c.box.Push(Update{ID: id, Kind: UpdateMoveListener, OnMove: action})
}

// AddCleanupListener attaches action to run when id's view is torn down.
func (c *Context) AddCleanupListener(id ID, action CleanupCallback) {
	c.box.Push(Update{ID: id, Kind: UpdateCleanupListener, OnCleanup: action})
}

// Animate asks the consumer to start anim on id.
func (c *Context) Animate(id ID, anim *Animation) {
	c.box.Push(Update{ID: id, Kind: UpdateAnimation, Animation: anim})
}

// SetContextMenu attaches menu as id's context (right-click) menu.
func (c *Context) SetContextMenu(id ID, menu MenuCallback) {
	c.box.Push(Update{ID: id, Kind: UpdateContextMenu, Menu: menu})
}

// SetPopoutMenu attaches menu as id's popout menu.
func (c *Context) SetPopoutMenu(id ID, menu MenuCallback) {
	c.box.Push(Update{ID: id, Kind: UpdatePopoutMenu, Menu: menu})
}

// ScrollToView asks the consumer to scroll id into view. A non-nil rect
// scrolls that rectangle (in id's coordinates) into view instead of the
// whole view.
func (c *Context) ScrollToView(id ID, rect *Rect) {
	c.box.Push(Update{ID: id, Kind: UpdateScrollTo, ScrollTo: rect})
}

// Inspect asks the consumer to open its inspector on id.
func (c *Context) Inspect(id ID) {
	c.box.Push(Update{ID: id, Kind: UpdateInspect})
}
