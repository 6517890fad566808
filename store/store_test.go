package store

import "testing"

func TestGetAbsent(t *testing.T) {
	s := NewMemoryStore()

	if _, found := s.Get("u1"); found {
		t.Fatalf("expected no record for an unknown participant")
	}
}

func TestResetOverwrites(t *testing.T) {
	s := NewMemoryStore()

	rec := s.Reset("u1")
	rec.FullName = "Jane Doe"
	rec.Phone = "+1-555-0100"

	fresh := s.Reset("u1")
	if fresh.FullName != "" || fresh.Phone != "" {
		t.Fatalf("reset must discard collected fields, got %+v", fresh)
	}
	if fresh.UserID != "u1" {
		t.Fatalf("unexpected user id %q", fresh.UserID)
	}

	got, found := s.Get("u1")
	if !found || got != fresh {
		t.Fatalf("get should return the record created by the last reset")
	}
}

func TestRemove(t *testing.T) {
	s := NewMemoryStore()

	s.Reset("u1")
	s.Remove("u1")

	if _, found := s.Get("u1"); found {
		t.Fatalf("record should be gone after remove")
	}

	// Removing an absent key is a no-op.
	s.Remove("u2")
}

func TestParticipantsAreIndependent(t *testing.T) {
	s := NewMemoryStore()

	a := s.Reset("u1")
	b := s.Reset("u2")
	a.FullName = "Jane Doe"

	if b.FullName != "" {
		t.Fatalf("records must be independent per participant")
	}

	s.Remove("u1")
	if _, found := s.Get("u2"); !found {
		t.Fatalf("removing one participant must not affect another")
	}
}
