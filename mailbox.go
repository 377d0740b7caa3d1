package sapling

// DeferredState is a typed-state update held back until after the current
// cycle's immediate batch has been applied.
type DeferredState struct {
	ID    ID
	State any
}

// Mailbox buffers update requests between the code that produces them
// (running inside layout, paint, or event handling, where the tree cannot
// be mutated) and the consumer that drains and applies them each cycle.
//
// It holds two FIFO queues: the immediate queue of Update messages, and a
// deferred queue restricted to typed state values, consumed only after the
// immediate batch. Like the Registry, a Mailbox belongs to a single owner
// context and is not safe for concurrent use.
type Mailbox struct {
	updates  []Update
	deferred []DeferredState
}

// NewMailbox creates an empty mailbox.
func NewMailbox() *Mailbox {
	return &Mailbox{}
}

// Push appends an update to the immediate queue. It never blocks and never
// fails; once pushed, a message cannot be retracted — supersede it with a
// later message instead.
func (m *Mailbox) Push(u Update) {
	m.updates = append(m.updates, u)
}

// PushDeferredState appends a typed state value to the deferred queue. Use
// this when the state change must become visible only after the current
// immediate batch, e.g. to avoid re-entrant mutation while that batch is
// still being applied.
func (m *Mailbox) PushDeferredState(id ID, state any) {
	m.deferred = append(m.deferred, DeferredState{ID: id, State: state})
}

// Drain returns every queued immediate update in FIFO order and resets the
// queue. Messages pushed while the returned batch is being processed land
// in the next batch, never the returned one.
func (m *Mailbox) Drain() []Update {
	batch := m.updates
	m.updates = nil
	return batch
}

// DrainDeferred returns every queued deferred state in FIFO order and
// resets the deferred queue. Call it after applying the immediate batch.
func (m *Mailbox) DrainDeferred() []DeferredState {
	batch := m.deferred
	m.deferred = nil
	return batch
}

// DrainInto appends the immediate batch to dst and returns the result,
// letting a consumer reuse one buffer across cycles. The mailbox's own
// backing array is kept for future pushes.
func (m *Mailbox) DrainInto(dst []Update) []Update {
	dst = append(dst, m.updates...)
	m.updates = m.updates[:0]
	return dst
}

// Len returns the number of queued immediate updates.
func (m *Mailbox) Len() int {
	return len(m.updates)
}

// DeferredLen returns the number of queued deferred states.
func (m *Mailbox) DeferredLen() int {
	return len(m.deferred)
}
