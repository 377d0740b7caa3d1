package sapling

import "testing"

// --- FIFO ---

func TestMailboxFIFO(t *testing.T) {
	m := NewMailbox()
	x := NextID()
	m.Push(Update{ID: x, Kind: UpdateFocus})
	m.Push(Update{ID: x, Kind: UpdateRequestPaint})

	batch := m.Drain()
	if len(batch) != 2 {
		t.Fatalf("Drain() len = %d, want 2", len(batch))
	}
	if batch[0].Kind != UpdateFocus || batch[1].Kind != UpdateRequestPaint {
		t.Error("messages for the same ID must drain in push order")
	}
}

func TestMailboxDrainResets(t *testing.T) {
	m := NewMailbox()
	m.Push(Update{ID: NextID(), Kind: UpdateFocus})
	m.Drain()

	if m.Len() != 0 {
		t.Errorf("Len() after Drain = %d, want 0", m.Len())
	}
	if batch := m.Drain(); len(batch) != 0 {
		t.Errorf("second Drain() len = %d, want 0", len(batch))
	}
}

// --- Deferred queue ---

func TestDeferredIsolation(t *testing.T) {
	m := NewMailbox()
	id := NextID()
	m.Push(Update{ID: id, Kind: UpdateState, State: "immediate"})

	// Enqueue a deferred state mid-drain, as a re-entrant handler would.
	batch := m.Drain()
	for range batch {
		m.PushDeferredState(id, "deferred")
	}
	if len(batch) != 1 {
		t.Fatalf("immediate batch len = %d, want 1", len(batch))
	}
	if m.Len() != 0 {
		t.Error("deferred push must not land in the immediate queue")
	}

	deferred := m.DrainDeferred()
	if len(deferred) != 1 {
		t.Fatalf("deferred batch len = %d, want 1", len(deferred))
	}
	if deferred[0].ID != id || deferred[0].State != "deferred" {
		t.Errorf("deferred = %+v, want {%d deferred}", deferred[0], id.Raw())
	}
	if m.DeferredLen() != 0 {
		t.Error("DrainDeferred should reset the deferred queue")
	}
}

func TestDeferredFIFO(t *testing.T) {
	m := NewMailbox()
	id := NextID()
	m.PushDeferredState(id, 1)
	m.PushDeferredState(id, 2)

	batch := m.DrainDeferred()
	if len(batch) != 2 || batch[0].State != 1 || batch[1].State != 2 {
		t.Errorf("deferred batch = %+v, want states [1, 2]", batch)
	}
}

// --- Re-entrant producers ---

func TestPushDuringDrainLandsInNextBatch(t *testing.T) {
	m := NewMailbox()
	id := NextID()
	m.Push(Update{ID: id, Kind: UpdateFocus})

	batch := m.Drain()
	for range batch {
		m.Push(Update{ID: id, Kind: UpdateRequestPaint})
	}
	if len(batch) != 1 {
		t.Fatalf("first batch len = %d, want 1", len(batch))
	}

	next := m.Drain()
	if len(next) != 1 || next[0].Kind != UpdateRequestPaint {
		t.Errorf("next batch = %+v, want one UpdateRequestPaint", next)
	}
}

// --- DrainInto ---

func TestDrainInto(t *testing.T) {
	m := NewMailbox()
	id := NextID()
	buf := make([]Update, 0, 8)

	for cycle := 0; cycle < 3; cycle++ {
		m.Push(Update{ID: id, Kind: UpdateFocus})
		m.Push(Update{ID: id, Kind: UpdateClearFocus})

		buf = m.DrainInto(buf[:0])
		if len(buf) != 2 {
			t.Fatalf("cycle %d: DrainInto len = %d, want 2", cycle, len(buf))
		}
		if buf[0].Kind != UpdateFocus || buf[1].Kind != UpdateClearFocus {
			t.Errorf("cycle %d: order not preserved", cycle)
		}
		if m.Len() != 0 {
			t.Errorf("cycle %d: mailbox not reset", cycle)
		}
	}
}

// --- Payload opacity ---

func TestMailboxCarriesPayloadsOpaquely(t *testing.T) {
	m := NewMailbox()
	id := NextID()

	called := false
	m.Push(Update{ID: id, Kind: UpdateCleanupListener, OnCleanup: func() { called = true }})

	batch := m.Drain()
	if len(batch) != 1 || batch[0].OnCleanup == nil {
		t.Fatal("callback payload should survive the queue")
	}
	batch[0].OnCleanup()
	if !called {
		t.Error("drained callback should be the one pushed")
	}
}
