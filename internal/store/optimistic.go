package store

// Optimistic tracks a confirmed value plus a speculative preview for fields
// saved with confirm/rollback semantics (currently the list color). The
// preview diverges from confirmed only while a save is pending or has
// failed and not yet been reverted.
//
// Saves are tagged with the value they carry: Confirm and Rollback take that
// value back, so a late failure for a superseded save cannot clobber a newer
// preview the user already set.
type Optimistic[T comparable] struct {
	confirmed T
	preview   T
}

// NewOptimistic starts with preview == confirmed == v.
func NewOptimistic[T comparable](v T) Optimistic[T] {
	return Optimistic[T]{confirmed: v, preview: v}
}

// Preview applies a speculative value for instant feedback. Returns false
// when v already equals the confirmed value and nothing is pending; the
// caller then skips the save entirely (no-op guard).
func (o *Optimistic[T]) Preview(v T) bool {
	if v == o.confirmed && o.preview == o.confirmed {
		return false
	}
	o.preview = v
	return true
}

// Confirm records that the save carrying saved succeeded.
func (o *Optimistic[T]) Confirm(saved T) {
	o.confirmed = saved
}

// Rollback reverts the preview to confirmed after the save carrying saved
// failed. Returns false (and changes nothing) when the preview has already
// moved past saved — the failure belongs to a superseded save.
func (o *Optimistic[T]) Rollback(saved T) bool {
	if o.preview != saved {
		return false
	}
	o.preview = o.confirmed
	return true
}

// Value returns the value to display: the preview.
func (o Optimistic[T]) Value() T {
	return o.preview
}

// Confirmed returns the last value known to be persisted.
func (o Optimistic[T]) Confirmed() T {
	return o.confirmed
}

// Dirty reports whether a preview is outstanding.
func (o Optimistic[T]) Dirty() bool {
	return o.preview != o.confirmed
}
