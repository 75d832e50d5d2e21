package event

// There is no separate EventContainer wrapper type here: an Event value
// stored directly in a pqueue.BinaryHeapQueue[Event] already behaves as
// the reference's boxed, pointer-identity-ordered EventContainer did, but
// tie-breaking at equal ticks is handled by the queue's own insertion
// sequence number instead of comparing interface identity (see
// pkg/pqueue and DESIGN.md "tie-break order").
