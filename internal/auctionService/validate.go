package auction

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"carmarket-bff/internal/countdown"
	"carmarket-bff/internal/marketerrors"
	"carmarket-bff/internal/models"
)

// BidInput is everything needed to judge a bid before it is sent
type BidInput struct {
	Raw      string
	Floor    float64
	SellerID string
	UserID   string
	State    countdown.State
}

// ValidateBid checks a candidate bid and returns the parsed amount.
// Rules run in a fixed order so the first failing one decides the message.
func ValidateBid(in BidInput) (float64, error) {
	if in.UserID == "" {
		return 0, fmt.Errorf("service: %w - sign in to bid", marketerrors.ErrUnauthenticated)
	}
	if in.UserID == in.SellerID {
		return 0, fmt.Errorf("service: %w", marketerrors.ErrSellerCannotBid)
	}
	if in.State == countdown.Ended {
		return 0, fmt.Errorf("service: %w", marketerrors.ErrAuctionEnded)
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(in.Raw), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("service: %w - got %q", marketerrors.ErrBidNotNumeric, in.Raw)
	}
	if amount <= in.Floor {
		return 0, fmt.Errorf("service: %w - current highest bid is %.2f", marketerrors.ErrBidTooLow, in.Floor)
	}
	return amount, nil
}

// CanBid reports whether userID may bid on the auction at all, independent of the amount
func CanBid(view models.AuctionView, userID string) bool {
	return view.Product.IsAuction &&
		userID != "" &&
		userID != view.Product.SellerID &&
		!view.Ended
}
