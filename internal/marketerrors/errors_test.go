package marketerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldErrors(t *testing.T) {
	fe := FieldErrors{"password": "missing a digit", "email": "must be a valid email"}

	require.Equal(t, "validation failed: email: must be a valid email; password: missing a digit", fe.Error())
	require.ErrorIs(t, fe, ErrValidation)
	require.ErrorIs(t, fmt.Errorf("forms: %w", fe), ErrValidation)
	require.NotErrorIs(t, fe, ErrNotFound)
}

func TestAPIError(t *testing.T) {
	tests := []struct {
		name      string
		err       *APIError
		wantText  string
		wantIs    []error
		wantIsNot []error
	}{
		{
			name:      "with_message",
			err:       &APIError{Status: http.StatusBadRequest, Message: "Invalid bid", Path: "/products/p1/bids"},
			wantText:  "upstream /products/p1/bids returned 400: Invalid bid",
			wantIs:    []error{ErrUpstream},
			wantIsNot: []error{ErrNotFound, ErrUnauthenticated},
		},
		{
			name:     "not_found",
			err:      &APIError{Status: http.StatusNotFound, Path: "/products/x"},
			wantText: "upstream /products/x returned 404",
			wantIs:   []error{ErrUpstream, ErrNotFound},
		},
		{
			name:     "unauthorized",
			err:      &APIError{Status: http.StatusUnauthorized, Path: "/auth/verify"},
			wantText: "upstream /auth/verify returned 401",
			wantIs:   []error{ErrUpstream, ErrUnauthenticated},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.wantText, tt.err.Error())
			for _, target := range tt.wantIs {
				require.ErrorIs(t, tt.err, target)
			}
			for _, target := range tt.wantIsNot {
				require.NotErrorIs(t, tt.err, target)
			}
		})
	}
}

func TestUserMessageAndAction(t *testing.T) {
	withMessage := fmt.Errorf("service: %w", &APIError{Status: 409, Message: "Auction closed"})
	withoutMessage := errors.New("dial tcp: connection refused")

	require.Equal(t, "Auction closed", UserMessage(withMessage, "failed to place bid"))
	require.Equal(t, "failed to place bid", UserMessage(withoutMessage, "failed to place bid"))

	require.NoError(t, Action(nil, "x"))

	err := Action(withMessage, "failed to place bid")
	var actionErr *ActionError
	require.True(t, errors.As(err, &actionErr))
	require.Equal(t, "Auction closed", actionErr.Message)
	require.ErrorIs(t, err, ErrUpstream)

	err = Action(withoutMessage, "failed to send message")
	require.True(t, errors.As(err, &actionErr))
	require.Equal(t, "failed to send message", actionErr.Message)
	require.Equal(t, "failed to send message: dial tcp: connection refused", err.Error())
}
