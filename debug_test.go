package atlaspack

import "testing"

func TestCheckConsistencyOnFreshManager(t *testing.T) {
	m, err := New(100, 100)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.CheckConsistency(); err != nil {
		t.Errorf("fresh manager should be consistent: %v", err)
	}
}

func TestCheckConsistencyDetectsAreaMismatch(t *testing.T) {
	m, err := New(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	// Corrupt the root region directly to simulate a bug the checker
	// should catch.
	m.root.region.Width = 9

	if err := m.CheckConsistency(); err == nil {
		t.Error("expected CheckConsistency to detect the corrupted root region")
	}
}

func TestCheckConsistencyAfterManyOperations(t *testing.T) {
	m, err := New(256, 256)
	if err != nil {
		t.Fatal(err)
	}

	var placed []Region
	for i := uint32(1); i <= 20; i++ {
		r := m.Allocate(i*3, i*2)
		if !r.IsEmpty() {
			placed = append(placed, r)
		}
	}
	if err := m.CheckConsistency(); err != nil {
		t.Fatalf("CheckConsistency() after allocations = %v", err)
	}

	for _, r := range placed {
		m.Free(r)
	}
	if err := m.CheckConsistency(); err != nil {
		t.Fatalf("CheckConsistency() after freeing everything = %v", err)
	}
	if m.idx.freeLen() != 1 || m.idx.allocatedLen() != 0 {
		t.Errorf("expected fully merged state, free=%d allocated=%d", m.idx.freeLen(), m.idx.allocatedLen())
	}
}

func TestWithConsistencyChecksPanicsOnCorruption(t *testing.T) {
	m, err := New(10, 10, WithConsistencyChecks(true))
	if err != nil {
		t.Fatal(err)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic from automatic consistency check on corrupted state")
		}
	}()

	// Corrupt state, then trigger the automatic check via Allocate.
	m.root.region.Width = 9
	m.Allocate(1, 1)
}
