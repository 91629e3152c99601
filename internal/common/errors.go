// Package common defines shared sentinel errors used across the client and
// server layers of Storefront. Callers should use errors.Is to match these
// values; services wrap them with request-specific detail.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// ErrValidation marks missing or malformed input. The client must fix the
	// request and resubmit.
	ErrValidation = errors.New("validation error")

	// ErrConflict marks a uniqueness violation, e.g. an email that is already
	// registered.
	ErrConflict = errors.New("already exists")

	// ErrPolicyViolation marks a credential rejected by the password policy
	// (too weak, or identical to the current one).
	ErrPolicyViolation = errors.New("policy violation")

	// ErrDependency marks a failure of the persistence collaborator. It is
	// transient from the caller's point of view and safe to retry.
	ErrDependency = errors.New("dependency failure")

	// ErrStoreRequired is returned when a category is added without a store
	// identifier. Stores must be created before their categories.
	ErrStoreRequired = fmt.Errorf("%w: store must exist before categories can be added", ErrValidation)
)

// Validationf builds an ErrValidation-wrapped error with a formatted detail.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// PolicyViolationf builds an ErrPolicyViolation-wrapped error with a formatted detail.
func PolicyViolationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrPolicyViolation, fmt.Sprintf(format, args...))
}

// Dependency wraps a persistence failure so it matches ErrDependency while
// keeping the original cause reachable through errors.Is / errors.As.
func Dependency(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrDependency, err)
}
