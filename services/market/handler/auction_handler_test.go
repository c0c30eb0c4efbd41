package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	auction "carmarket-bff/internal/auctionService"
	"carmarket-bff/internal/countdown"
	"carmarket-bff/internal/marketerrors"
	"carmarket-bff/internal/models"
	"carmarket-bff/internal/session"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

// Test PlaceBidHandler: highestBid=100, seller=U1
func TestPlaceBidHandler(t *testing.T) {
	now := time.Now().UTC()
	view := &models.AuctionView{HighestBid: 150, HighestBidder: "U2", BidCount: 2, CanBid: true}

	tests := []struct {
		name           string
		sess           *session.Session
		requestBody    any
		mockSetup      func(env testEnv)
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name:        "accepted_150_as_number",
			requestBody: `{"amount":150}`,
			mockSetup: func(env testEnv) {
				env.auctions.EXPECT().
					PlaceBid(gomock.Any(), bidderSession, "p1", "150").
					Return(auction.BidResult{
						Bid:  models.Bid{BidID: "b1", UserID: "U2", Amount: 150, CreatedAt: now},
						View: view,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "bid placed successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "b1", data["id"])
				require.Equal(t, 150.0, data["bidAmount"])
				require.Equal(t, "p1", data["productId"])
				_, err := time.Parse(time.RFC3339, data["createdAt"].(string))
				require.NoError(t, err)
				auctionData := data["auction"].(map[string]any)
				require.Equal(t, 150.0, auctionData["highestBid"])
			},
		},
		{
			name:        "accepted_150_as_string",
			requestBody: `{"amount":"150"}`,
			mockSetup: func(env testEnv) {
				env.auctions.EXPECT().
					PlaceBid(gomock.Any(), bidderSession, "p1", "150").
					Return(auction.BidResult{Bid: models.Bid{BidID: "b1", UserID: "U2", Amount: 150, CreatedAt: now}}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "bid placed successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Nil(t, data["auction"])
			},
		},
		{
			name:        "rejected_90",
			requestBody: `{"amount":"90"}`,
			mockSetup: func(env testEnv) {
				env.auctions.EXPECT().
					PlaceBid(gomock.Any(), bidderSession, "p1", "90").
					Return(auction.BidResult{}, fmt.Errorf("service: %w - current highest bid is 100.00", marketerrors.ErrBidTooLow))
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "bid must be higher than the current highest bid",
		},
		{
			name:        "not_numeric",
			requestBody: `{"amount":"lots"}`,
			mockSetup: func(env testEnv) {
				env.auctions.EXPECT().
					PlaceBid(gomock.Any(), bidderSession, "p1", "lots").
					Return(auction.BidResult{}, fmt.Errorf("service: %w", marketerrors.ErrBidNotNumeric))
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "bid must be a number",
		},
		{
			name:        "seller_forbidden",
			sess:        sellerSession,
			requestBody: `{"amount":"150"}`,
			mockSetup: func(env testEnv) {
				env.auctions.EXPECT().
					PlaceBid(gomock.Any(), sellerSession, "p1", "150").
					Return(auction.BidResult{}, fmt.Errorf("service: %w", marketerrors.ErrSellerCannotBid))
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "seller cannot bid on their own product",
		},
		{
			name:        "auction_ended",
			requestBody: `{"amount":"150"}`,
			mockSetup: func(env testEnv) {
				env.auctions.EXPECT().
					PlaceBid(gomock.Any(), bidderSession, "p1", "150").
					Return(auction.BidResult{}, fmt.Errorf("service: %w", marketerrors.ErrAuctionEnded))
			},
			expectedStatus: http.StatusGone,
			expectedMsg:    "auction has ended",
		},
		{
			name:        "server_message_verbatim",
			requestBody: `{"amount":"150"}`,
			mockSetup: func(env testEnv) {
				env.auctions.EXPECT().
					PlaceBid(gomock.Any(), bidderSession, "p1", "150").
					Return(auction.BidResult{}, marketerrors.Action(
						&marketerrors.APIError{Status: http.StatusConflict, Message: "Someone outbid you"}, auction.FallbackBidMessage))
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "Someone outbid you",
		},
		{
			name:        "fallback_message",
			requestBody: `{"amount":"150"}`,
			mockSetup: func(env testEnv) {
				env.auctions.EXPECT().
					PlaceBid(gomock.Any(), bidderSession, "p1", "150").
					Return(auction.BidResult{}, marketerrors.Action(errors.New("connection reset"), auction.FallbackBidMessage))
			},
			expectedStatus: http.StatusBadGateway,
			expectedMsg:    "failed to place bid",
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func(env testEnv) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "missing_amount",
			requestBody:    `{}`,
			mockSetup:      func(env testEnv) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := tt.sess
			if sess == nil {
				sess = bidderSession
			}
			env := newTestEnv(t, sess)
			tt.mockSetup(env)

			w, resp := env.do(t, http.MethodPost, "/auctions/p1/bids", tt.requestBody)
			require.Equal(t, tt.expectedStatus, w.Code)
			require.Equal(t, tt.expectedMsg, resp["message"])

			if tt.validateData != nil {
				tt.validateData(t, resp["data"].(map[string]any))
			}
		})
	}
}

func TestGetAuctionHandler(t *testing.T) {
	t.Run("anonymous_view", func(t *testing.T) {
		env := newTestEnv(t, anonSession)
		env.auctions.EXPECT().GetAuctionView(gomock.Any(), "p1", "").
			Return(models.AuctionView{HighestBid: 100, Floor: 100, BidCount: 1, CanBid: false}, nil)

		w, resp := env.do(t, http.MethodGet, "/auctions/p1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		data := resp["data"].(map[string]any)
		require.Equal(t, 100.0, data["highestBid"])
		require.Equal(t, false, data["canBid"])
	})

	t.Run("seller_sees_disabled_bidding", func(t *testing.T) {
		env := newTestEnv(t, sellerSession)
		env.auctions.EXPECT().GetAuctionView(gomock.Any(), "p1", "U1").
			Return(models.AuctionView{HighestBid: 100, CanBid: false}, nil)

		w, resp := env.do(t, http.MethodGet, "/auctions/p1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, false, resp["data"].(map[string]any)["canBid"])
	})

	t.Run("not_found", func(t *testing.T) {
		env := newTestEnv(t, anonSession)
		env.auctions.EXPECT().GetAuctionView(gomock.Any(), "nope", "").
			Return(models.AuctionView{}, fmt.Errorf("service: %w", &marketerrors.APIError{Status: http.StatusNotFound, Path: "/products/nope"}))

		w, resp := env.do(t, http.MethodGet, "/auctions/nope", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
		require.Equal(t, "upstream request failed", resp["message"])
	})

	t.Run("not_an_auction", func(t *testing.T) {
		env := newTestEnv(t, anonSession)
		env.auctions.EXPECT().GetAuctionView(gomock.Any(), "p2", "").
			Return(models.AuctionView{}, fmt.Errorf("service: %w", marketerrors.ErrNotAnAuction))

		w, _ := env.do(t, http.MethodGet, "/auctions/p2", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCountdownHandler(t *testing.T) {
	t.Run("streams_until_ended", func(t *testing.T) {
		env := newTestEnv(t, anonSession)
		end := time.Now().Add(30 * time.Millisecond)
		env.auctions.EXPECT().Countdown(gomock.Any(), "p1").
			Return(countdown.New(end, countdown.WithInterval(10*time.Millisecond)), nil)

		w, _ := env.do(t, http.MethodGet, "/auctions/p1/countdown", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))

		body := w.Body.String()
		require.Contains(t, body, "event:tick")
		require.Contains(t, body, `"state":"running"`)
		require.Contains(t, body, `"state":"ended"`)
	})

	t.Run("already_ended_sends_one_tick", func(t *testing.T) {
		env := newTestEnv(t, anonSession)
		env.auctions.EXPECT().Countdown(gomock.Any(), "p1").
			Return(countdown.New(time.Now().Add(-time.Minute)), nil)

		w, _ := env.do(t, http.MethodGet, "/auctions/p1/countdown", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, 1, strings.Count(w.Body.String(), "event:tick"))
		require.Contains(t, w.Body.String(), `"state":"ended"`)
	})

	t.Run("not_an_auction", func(t *testing.T) {
		env := newTestEnv(t, anonSession)
		env.auctions.EXPECT().Countdown(gomock.Any(), "p2").
			Return(nil, fmt.Errorf("service: %w", marketerrors.ErrNotAnAuction))

		w, resp := env.do(t, http.MethodGet, "/auctions/p2/countdown", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, "product is not sold by auction", resp["message"])
	})
}
