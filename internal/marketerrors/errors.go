package marketerrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Upstream and lookup errors
var (
	ErrNotFound        = errors.New("resource not found")
	ErrUnauthenticated = errors.New("not signed in")
	ErrSessionNotFound = errors.New("session not found")
	ErrUpstream        = errors.New("upstream request failed")
)

// Bid rule errors
var (
	ErrBidNotNumeric   = errors.New("bid must be a number")
	ErrBidTooLow       = errors.New("bid must be higher than the current highest bid")
	ErrSellerCannotBid = errors.New("seller cannot bid on their own product")
	ErrAuctionEnded    = errors.New("auction has ended")
	ErrNotAnAuction    = errors.New("product is not sold by auction")
)

// Form and upload errors
var (
	ErrValidation     = errors.New("validation failed")
	ErrUnsupportedImg = errors.New("unsupported image type")
	ErrPreviewMissing = errors.New("preview not found")
)

// FieldErrors maps a form field to the message shown next to it.
// All violated fields are reported together.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, fe[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is makes errors.Is(fe, ErrValidation) hold.
func (fe FieldErrors) Is(target error) bool {
	return target == ErrValidation
}

// APIError is a non-2xx answer from the marketplace API.
// Message holds the server-provided text verbatim when there was one.
type APIError struct {
	Status  int
	Message string
	Path    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream %s returned %d: %s", e.Path, e.Status, e.Message)
	}
	return fmt.Sprintf("upstream %s returned %d", e.Path, e.Status)
}

// Unwrap lets callers match upstream failures with errors.Is(err, ErrUpstream)
// and 404s with errors.Is(err, ErrNotFound).
func (e *APIError) Unwrap() []error {
	if e.Status == 404 {
		return []error{ErrUpstream, ErrNotFound}
	}
	if e.Status == 401 {
		return []error{ErrUpstream, ErrUnauthenticated}
	}
	return []error{ErrUpstream}
}

// UserMessage returns the server message when present, else fallback.
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// ActionError is a failed submission. Message is what the user sees:
// the server's own text when it sent one, else the action's fallback.
type ActionError struct {
	Message string
	Err     error
}

func (e *ActionError) Error() string {
	return e.Message + ": " + e.Err.Error()
}

func (e *ActionError) Unwrap() error {
	return e.Err
}

// Action wraps err for display, preferring the server message over fallback
func Action(err error, fallback string) error {
	if err == nil {
		return nil
	}
	return &ActionError{Message: UserMessage(err, fallback), Err: err}
}
