package sapling

// UpdateKind tags the variant of an Update message.
type UpdateKind uint8

const (
	UpdateFocus               UpdateKind = iota // give the view keyboard focus
	UpdateClearFocus                            // drop focus if the view holds it
	UpdateActive                                // make the view the active (pressed) view
	UpdateClearActive                           // drop active status if the view holds it
	UpdateDisabled                              // enable or disable the view (Disabled field)
	UpdateRequestPaint                          // repaint without relayout
	UpdateRequestChange                         // recompute the aspects in Flags
	UpdateState                                 // deliver a typed state value (State field)
	UpdateStyle                                 // set the style layer at Offset
	UpdateClass                                 // assign a named style class
	UpdateStyleSelector                         // set the style for an interaction state
	UpdateKeyboardNavigatable                   // include the view in tab order
	UpdateDraggable                             // allow the view to be dragged
	UpdateEventListener                         // attach OnEvent for the Event type
	UpdateResizeListener                        // attach OnResize
	UpdateMoveListener                          // attach OnMove
	UpdateCleanupListener                       // attach OnCleanup, run at teardown
	UpdateAnimation                             // start the Animation payload
	UpdateContextMenu                           // attach Menu as the context menu
	UpdatePopoutMenu                            // attach Menu as the popout menu
	UpdateScrollTo                              // scroll the view (or ScrollTo rect) into view
	UpdateInspect                               // open the inspector on the view
)

// Update is a single queued request addressed to a view. A single flat
// struct is used for all message kinds; Kind says which payload fields are
// meaningful and the rest stay zero. The mailbox stores payloads opaquely —
// interpreting them is entirely the consumer's job.
type Update struct {
	ID   ID
	Kind UpdateKind

	Disabled bool        // UpdateDisabled
	Flags    ChangeFlags // UpdateRequestChange
	State    any         // UpdateState
	Style    Style       // UpdateStyle, UpdateStyleSelector
	Offset   StackOffset // UpdateStyle
	Class    StyleClass  // UpdateClass
	Selector StyleSelector

	Event     EventType     // UpdateEventListener
	OnEvent   EventCallback // UpdateEventListener
	OnResize  ResizeCallback
	OnMove    MoveCallback
	OnCleanup CleanupCallback

	Animation *Animation   // UpdateAnimation
	Menu      MenuCallback // UpdateContextMenu, UpdatePopoutMenu
	ScrollTo  *Rect        // UpdateScrollTo; nil scrolls the whole view into view
}

// ChangeFlags is a bitmask of tree aspects a view asks the consumer to
// recompute. Values combine with bitwise OR.
type ChangeFlags uint8

const (
	ChangeLayout ChangeFlags = 1 << iota // recompute layout
	ChangeStyle                          // recompute resolved style
	ChangePaint                          // repaint
)

// Has reports whether all bits in flag are set.
func (f ChangeFlags) Has(flag ChangeFlags) bool {
	return f&flag == flag
}

// StackOffset addresses one layer in a view's style stack. Style updates at
// the same offset replace each other; distinct offsets layer in order, so
// style messages for one view must reach the consumer in FIFO order.
type StackOffset int
