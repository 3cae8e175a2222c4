package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mergington/activities/internal/store"
	"github.com/mergington/activities/internal/store/sqlite"
)

func openTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.Open(":memory:", store.Seed())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenSeedsDirectory(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	activities, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(activities) != 9 {
		t.Fatalf("len(activities) = %d, want 9", len(activities))
	}

	chess, ok := activities["Chess Club"]
	if !ok {
		t.Fatal("Chess Club missing from directory")
	}
	if chess.MaxParticipants != 12 {
		t.Errorf("MaxParticipants = %d, want 12", chess.MaxParticipants)
	}
	if len(chess.Participants) != 2 || chess.Participants[0] != "michael@mergington.edu" {
		t.Errorf("participants = %v, want michael then daniel", chess.Participants)
	}
}

func TestOpenRejectsBlankDSN(t *testing.T) {
	t.Parallel()

	if _, err := sqlite.Open("  ", store.Seed()); err == nil {
		t.Fatal("Open() with blank dsn did not fail")
	}
}

func TestSignUpPreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	ctx := context.Background()

	for _, email := range []string{"a@mergington.edu", "b@mergington.edu", "c@mergington.edu"} {
		if err := s.SignUp(ctx, "Swimming Club", email); err != nil {
			t.Fatalf("SignUp(%q) error = %v", email, err)
		}
	}

	activities, _ := s.List(ctx)
	got := activities["Swimming Club"].Participants
	want := []string{"sarah@mergington.edu", "a@mergington.edu", "b@mergington.edu", "c@mergington.edu"}
	if len(got) != len(want) {
		t.Fatalf("participants = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("participants[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSignUpDuplicateRejected(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	err := s.SignUp(context.Background(), "Chess Club", "daniel@mergington.edu")
	if !errors.Is(err, store.ErrAlreadyRegistered) {
		t.Fatalf("SignUp() error = %v, want ErrAlreadyRegistered", err)
	}
}

func TestSignUpUnknownActivity(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	err := s.SignUp(context.Background(), "Nonexistent Activity", "x@y.edu")
	if !errors.Is(err, store.ErrActivityNotFound) {
		t.Fatalf("SignUp() error = %v, want ErrActivityNotFound", err)
	}
}

func TestUnregisterRemovesOneOccurrence(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Unregister(ctx, "Art Studio", "emily@mergington.edu"); err != nil {
		t.Fatalf("Unregister() error = %v", err)
	}

	activities, _ := s.List(ctx)
	got := activities["Art Studio"].Participants
	if len(got) != 1 || got[0] != "mia@mergington.edu" {
		t.Fatalf("participants = %v, want only mia left", got)
	}
}

func TestUnregisterAbsentEmail(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	err := s.Unregister(context.Background(), "Art Studio", "ghost@mergington.edu")
	if !errors.Is(err, store.ErrNotRegistered) {
		t.Fatalf("Unregister() error = %v, want ErrNotRegistered", err)
	}
}

func TestUnregisterUnknownActivity(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	err := s.Unregister(context.Background(), "Nonexistent Activity", "x@y.edu")
	if !errors.Is(err, store.ErrActivityNotFound) {
		t.Fatalf("Unregister() error = %v, want ErrActivityNotFound", err)
	}
}

func TestSignUpThenUnregisterRestoresState(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	ctx := context.Background()

	if err := s.SignUp(ctx, "Gym Class", "round@mergington.edu"); err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}
	if err := s.Unregister(ctx, "Gym Class", "round@mergington.edu"); err != nil {
		t.Fatalf("Unregister() error = %v", err)
	}

	activities, _ := s.List(ctx)
	gym := activities["Gym Class"]
	if len(gym.Participants) != 2 {
		t.Errorf("len(participants) = %d, want 2", len(gym.Participants))
	}
	if gym.IsRegistered("round@mergington.edu") {
		t.Error("round-trip left the email registered")
	}
}
