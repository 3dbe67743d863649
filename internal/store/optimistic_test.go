package store

import "testing"

func TestOptimisticPreviewAndConfirm(t *testing.T) {
	o := NewOptimistic("#c0c0c0")

	if o.Dirty() {
		t.Error("fresh state should not be dirty")
	}
	if !o.Preview("#ff0000") {
		t.Fatal("Preview of a new value should report a change")
	}
	if o.Value() != "#ff0000" {
		t.Errorf("Value = %q, want preview #ff0000", o.Value())
	}
	if o.Confirmed() != "#c0c0c0" {
		t.Errorf("Confirmed = %q, want #c0c0c0", o.Confirmed())
	}
	if !o.Dirty() {
		t.Error("pending preview should be dirty")
	}

	o.Confirm("#ff0000")
	if o.Confirmed() != "#ff0000" || o.Dirty() {
		t.Errorf("after confirm: confirmed=%q dirty=%v", o.Confirmed(), o.Dirty())
	}
}

func TestOptimisticNoOpGuard(t *testing.T) {
	o := NewOptimistic("#c0c0c0")
	if o.Preview("#c0c0c0") {
		t.Error("previewing the confirmed value should be a no-op (skip the save)")
	}
}

func TestOptimisticRollback(t *testing.T) {
	o := NewOptimistic("#c0c0c0")
	o.Preview("#ff0000")

	if !o.Rollback("#ff0000") {
		t.Fatal("Rollback of the current preview should apply")
	}
	if o.Value() != "#c0c0c0" {
		t.Errorf("Value = %q, want confirmed #c0c0c0 after rollback", o.Value())
	}
}

func TestOptimisticLateFailureDoesNotClobberNewerPreview(t *testing.T) {
	o := NewOptimistic("#c0c0c0")
	o.Preview("#ff0000") // save A issued
	o.Preview("#00ff00") // user picks again while A is in flight

	if o.Rollback("#ff0000") {
		t.Error("failure of superseded save A must not roll back past the newer preview")
	}
	if o.Value() != "#00ff00" {
		t.Errorf("Value = %q, want the newer preview #00ff00", o.Value())
	}
}

func TestOptimisticConfirmTracksSavedValue(t *testing.T) {
	o := NewOptimistic("#c0c0c0")
	o.Preview("#ff0000")
	o.Preview("#00ff00")

	// A's success confirms A's value, not the newer preview.
	o.Confirm("#ff0000")
	if o.Confirmed() != "#ff0000" {
		t.Errorf("Confirmed = %q, want #ff0000", o.Confirmed())
	}
	if o.Value() != "#00ff00" {
		t.Errorf("Value = %q, preview must survive", o.Value())
	}
}
