package auction

import (
	"context"
	"fmt"
	"slices"
	"time"

	"carmarket-bff/internal/countdown"
	"carmarket-bff/internal/marketapi"
	"carmarket-bff/internal/marketerrors"
	"carmarket-bff/internal/models"
	"carmarket-bff/internal/session"
	"carmarket-bff/utils"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// FallbackBidMessage is shown when a bid fails without a server message
const FallbackBidMessage = "failed to place bid"

// BidResult is an accepted bid and the auction as re-read afterwards.
// View is nil when the re-read failed; the bid itself still went through.
type BidResult struct {
	Bid  models.Bid
	View *models.AuctionView
}

// Service derives auction views from the marketplace API and submits bids
type Service struct {
	api      marketapi.MarketplaceAPI
	interval time.Duration
	now      func() time.Time
}

// NewService creates a Service; tick is the countdown interval
func NewService(api marketapi.MarketplaceAPI, tick time.Duration) *Service {
	return &Service{api: api, interval: tick, now: time.Now}
}

// GetAuctionView fetches the product and its bids concurrently and derives the view for userID
func (s *Service) GetAuctionView(ctx context.Context, productID, userID string) (models.AuctionView, error) {
	if productID == "" {
		return models.AuctionView{}, fmt.Errorf("service: %w - empty product ID", marketerrors.ErrNotFound)
	}

	var (
		product models.Product
		bids    []models.Bid
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.api.GetProduct(gctx, productID)
		if err != nil {
			return fmt.Errorf("service: failed to get product %s: %w", productID, err)
		}
		product = p
		return nil
	})
	g.Go(func() error {
		b, err := s.api.ListBids(gctx, productID)
		if err != nil {
			return fmt.Errorf("service: failed to get bids for product %s: %w", productID, err)
		}
		bids = b
		return nil
	})
	if err := g.Wait(); err != nil {
		return models.AuctionView{}, err
	}

	if !product.IsAuction {
		return models.AuctionView{}, fmt.Errorf("service: %w - product %s", marketerrors.ErrNotAnAuction, productID)
	}
	return BuildView(product, bids, userID, s.now()), nil
}

// BuildView derives the auction view model from a product snapshot and its bids.
// An auction without an end date is treated as ended.
func BuildView(product models.Product, bids []models.Bid, userID string, now time.Time) models.AuctionView {
	sorted := slices.Clone(bids)
	if sorted == nil {
		sorted = []models.Bid{}
	}
	slices.SortStableFunc(sorted, func(a, b models.Bid) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	view := models.AuctionView{
		Product:  product,
		Floor:    product.Price,
		BidCount: len(sorted),
		Bids:     sorted,
		Ended:    true,
	}

	if len(sorted) > 0 {
		top := lo.MaxBy(sorted, func(a, b models.Bid) bool { return a.Amount > b.Amount })
		view.HighestBid = top.Amount
		view.HighestBidder = top.UserID
		view.Floor = top.Amount
	}

	if product.AuctionEndDate != nil {
		tick := countdown.Evaluate(*product.AuctionEndDate, now)
		view.Ended = tick.State == countdown.Ended
		view.Remaining = tick.Remaining
	}

	view.CanBid = CanBid(view, userID)
	return view
}

// PlaceBid validates raw against a fresh view, sends exactly one create-bid request
// and re-reads the auction. Nothing is retried or merged locally.
func (s *Service) PlaceBid(ctx context.Context, sess *session.Session, productID, raw string) (BidResult, error) {
	var userID string
	if sess.Authenticated() {
		userID = sess.UserID
	}

	view, err := s.GetAuctionView(ctx, productID, userID)
	if err != nil {
		return BidResult{}, err
	}

	state := countdown.Running
	if view.Ended {
		state = countdown.Ended
	}
	amount, err := ValidateBid(BidInput{
		Raw:      raw,
		Floor:    view.Floor,
		SellerID: view.Product.SellerID,
		UserID:   userID,
		State:    state,
	})
	if err != nil {
		return BidResult{}, err
	}

	bid, err := s.api.CreateBid(ctx, sess, productID, amount)
	if err != nil {
		return BidResult{}, fmt.Errorf("service: create bid on %s: %w", productID, marketerrors.Action(err, FallbackBidMessage))
	}

	result := BidResult{Bid: bid}
	fresh, err := s.GetAuctionView(ctx, productID, userID)
	if err != nil {
		utils.Warn("PlaceBid: bid placed but auction refresh failed", map[string]any{
			"product_id": productID,
			"bid_id":     bid.BidID,
			"error":      err.Error(),
		})
		return result, nil
	}
	result.View = &fresh
	return result, nil
}

// Countdown builds an unstarted countdown to the auction's end
func (s *Service) Countdown(ctx context.Context, productID string) (*countdown.Countdown, error) {
	product, err := s.api.GetProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get product %s: %w", productID, err)
	}
	if !product.IsAuction || product.AuctionEndDate == nil {
		return nil, fmt.Errorf("service: %w - product %s has no auction deadline", marketerrors.ErrNotAnAuction, productID)
	}
	return countdown.New(*product.AuctionEndDate, countdown.WithInterval(s.interval)), nil
}
