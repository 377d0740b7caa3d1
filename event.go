package sapling

// EventType identifies a kind of interaction event a view can listen for.
type EventType uint8

const (
	EventPointerDown  EventType = iota // a pointer button was pressed
	EventPointerUp                     // a pointer button was released
	EventPointerMove                   // the pointer moved over the view
	EventClick                         // press then release over the same view
	EventDragStart                     // movement exceeded the drag dead zone
	EventDrag                          // fires each frame while dragging
	EventDragEnd                       // the pointer was released after dragging
	EventPointerEnter                  // the pointer entered the view's bounds
	EventPointerLeave                  // the pointer left the view's bounds
	EventKeyDown                       // a key was pressed while the view had focus
	EventKeyUp                         // a key was released while the view had focus
	EventFocusGained                   // the view received keyboard focus
	EventFocusLost                     // the view lost keyboard focus
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values combine with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// EventContext carries the data delivered to an event listener. Which
// fields are populated depends on Type: pointer events fill the coordinate
// and button fields, key events fill Key.
type EventContext struct {
	Target    ID
	Type      EventType
	GlobalX   float64
	GlobalY   float64
	LocalX    float64
	LocalY    float64
	Button    MouseButton
	Modifiers KeyModifiers
	Key       string
}

// EventCallback handles one event. Returning true marks the event handled
// and stops further propagation along the dispatch path.
type EventCallback func(EventContext) bool

// ResizeCallback is invoked with the view's new bounds after layout.
type ResizeCallback func(Rect)

// MoveCallback is invoked with the view's new origin after it moves.
type MoveCallback func(Vec2)

// CleanupCallback is invoked once when the view is torn down.
type CleanupCallback func()

// MenuCallback builds a menu on demand, when the consumer is about to show
// it.
type MenuCallback func() Menu

// Menu is a flat list of entries shown as a context or popout menu.
type Menu struct {
	Items []MenuItem
}

// MenuItem is a single menu entry. A nil Action renders as a separator.
type MenuItem struct {
	Label  string
	Action func()
}
