// Package service implements validation and orchestration between the HTTP
// handlers and the directory store.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mergington/activities/internal/model"
	"github.com/mergington/activities/internal/store"
)

// ErrEmailRequired is returned when the email parameter is missing or blank.
var ErrEmailRequired = errors.New("email is required")

// DirectoryService orchestrates activity directory operations.
type DirectoryService struct {
	directory store.Directory
}

// New constructs a DirectoryService backed by the given directory.
func New(directory store.Directory) *DirectoryService {
	return &DirectoryService{directory: directory}
}

// ListActivities returns the full directory.
func (s *DirectoryService) ListActivities(ctx context.Context) (map[string]model.Activity, error) {
	return s.directory.List(ctx)
}

// SignUp registers email for the named activity and returns the confirmation
// message. The email is used verbatim apart from trimming whitespace; emails
// are case-sensitive like activity names.
func (s *DirectoryService) SignUp(ctx context.Context, activity, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrEmailRequired
	}
	if err := s.directory.SignUp(ctx, activity, email); err != nil {
		if errors.Is(err, store.ErrActivityNotFound) || errors.Is(err, store.ErrAlreadyRegistered) {
			return "", err
		}
		return "", fmt.Errorf("sign up for activity: %w", err)
	}
	return fmt.Sprintf("Signed up %s for %s", email, activity), nil
}

// Unregister removes email from the named activity and returns the
// confirmation message.
func (s *DirectoryService) Unregister(ctx context.Context, activity, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrEmailRequired
	}
	if err := s.directory.Unregister(ctx, activity, email); err != nil {
		if errors.Is(err, store.ErrActivityNotFound) || errors.Is(err, store.ErrNotRegistered) {
			return "", err
		}
		return "", fmt.Errorf("unregister from activity: %w", err)
	}
	return fmt.Sprintf("Unregistered %s from %s", email, activity), nil
}
