package pbx

import "testing"

func TestNewObjectIDFormat(t *testing.T) {
	for i := 0; i < 32; i++ {
		id := NewObjectID()
		if len(id) != ObjectIDLen {
			t.Fatalf("len(%q) = %d, want %d", id, len(id), ObjectIDLen)
		}
		for _, r := range id {
			if (r < '0' || r > '9') && (r < 'A' || r > 'F') {
				t.Fatalf("id %q contains non-uppercase-hex rune %q", id, r)
			}
		}
	}
}

func TestNewObjectIDsUnique(t *testing.T) {
	ids := NewObjectIDs(64)
	if len(ids) != 64 {
		t.Fatalf("got %d ids, want 64", len(ids))
	}
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			t.Fatalf("duplicate object id %q", id)
		}
		seen[id] = true
	}
}

func TestNewObjectIDsNonPositive(t *testing.T) {
	if got := NewObjectIDs(0); got != nil {
		t.Errorf("NewObjectIDs(0) = %v, want nil", got)
	}
	if got := NewObjectIDs(-3); got != nil {
		t.Errorf("NewObjectIDs(-3) = %v, want nil", got)
	}
}
