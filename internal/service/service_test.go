package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mergington/activities/internal/service"
	"github.com/mergington/activities/internal/store"
	"github.com/mergington/activities/internal/store/memory"
)

func newService() *service.DirectoryService {
	return service.New(memory.New(store.Seed()))
}

func TestSignUpMessage(t *testing.T) {
	t.Parallel()

	svc := newService()
	msg, err := svc.SignUp(context.Background(), "Chess Club", "new@mergington.edu")
	if err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}
	if want := "Signed up new@mergington.edu for Chess Club"; msg != want {
		t.Errorf("message = %q, want %q", msg, want)
	}
}

func TestUnregisterMessage(t *testing.T) {
	t.Parallel()

	svc := newService()
	msg, err := svc.Unregister(context.Background(), "Chess Club", "michael@mergington.edu")
	if err != nil {
		t.Fatalf("Unregister() error = %v", err)
	}
	if want := "Unregistered michael@mergington.edu from Chess Club"; msg != want {
		t.Errorf("message = %q, want %q", msg, want)
	}
}

func TestBlankEmailRejected(t *testing.T) {
	t.Parallel()

	svc := newService()
	if _, err := svc.SignUp(context.Background(), "Chess Club", "   "); !errors.Is(err, service.ErrEmailRequired) {
		t.Fatalf("SignUp() error = %v, want ErrEmailRequired", err)
	}
	if _, err := svc.Unregister(context.Background(), "Chess Club", ""); !errors.Is(err, service.ErrEmailRequired) {
		t.Fatalf("Unregister() error = %v, want ErrEmailRequired", err)
	}
}

func TestEmailTrimmedBeforeUse(t *testing.T) {
	t.Parallel()

	svc := newService()
	ctx := context.Background()
	if _, err := svc.SignUp(ctx, "Drama Club", "  padded@mergington.edu  "); err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	activities, err := svc.ListActivities(ctx)
	if err != nil {
		t.Fatalf("ListActivities() error = %v", err)
	}
	if !activities["Drama Club"].IsRegistered("padded@mergington.edu") {
		t.Error("trimmed email missing from participants")
	}
}

func TestSentinelErrorsSurfaced(t *testing.T) {
	t.Parallel()

	svc := newService()
	ctx := context.Background()

	if _, err := svc.SignUp(ctx, "Nonexistent Activity", "x@y.edu"); !errors.Is(err, store.ErrActivityNotFound) {
		t.Errorf("SignUp() error = %v, want ErrActivityNotFound", err)
	}
	if _, err := svc.SignUp(ctx, "Chess Club", "michael@mergington.edu"); !errors.Is(err, store.ErrAlreadyRegistered) {
		t.Errorf("SignUp() error = %v, want ErrAlreadyRegistered", err)
	}
	if _, err := svc.Unregister(ctx, "Chess Club", "ghost@mergington.edu"); !errors.Is(err, store.ErrNotRegistered) {
		t.Errorf("Unregister() error = %v, want ErrNotRegistered", err)
	}
}
