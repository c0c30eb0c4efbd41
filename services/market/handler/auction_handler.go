package handler

import (
	"net/http"
	"time"

	"carmarket-bff/services/market/helpers"
	"carmarket-bff/utils"

	"github.com/gin-gonic/gin"
)

// GetAuctionHandler handles GET /auctions/:product_id
func (h *MarketHandler) GetAuctionHandler(c *gin.Context) {
	productID := c.Param("product_id")

	var userID string
	if sess := helpers.CurrentSession(c); sess.Authenticated() {
		userID = sess.UserID
	}

	view, err := h.auctions.GetAuctionView(c.Request.Context(), productID, userID)
	if err != nil {
		helpers.RespondError(c, "GetAuctionHandler", err, map[string]any{"product_id": productID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, view, "auction retrieved successfully")
	helpers.LogSuccess("GetAuctionHandler", "auction retrieved successfully", map[string]any{
		"product_id": productID,
		"bid_count":  view.BidCount,
	})
}

// PlaceBidHandler handles POST /auctions/:product_id/bids
func (h *MarketHandler) PlaceBidHandler(c *gin.Context) {
	productID := c.Param("product_id")

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	sess := helpers.CurrentSession(c)
	res, err := h.auctions.PlaceBid(c.Request.Context(), sess, productID, string(req.Amount))
	if err != nil {
		helpers.RespondError(c, "PlaceBidHandler", err, map[string]any{
			"product_id": productID,
			"amount":     string(req.Amount),
		})
		return
	}

	resp := helpers.BidResponse{
		BidID:     res.Bid.BidID,
		ProductID: productID,
		UserID:    res.Bid.UserID,
		Amount:    res.Bid.Amount,
		CreatedAt: res.Bid.CreatedAt.UTC().Format(time.RFC3339),
		Auction:   res.View,
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":     res.Bid.BidID,
		"product_id": productID,
		"user_id":    sess.UserID,
		"amount":     res.Bid.Amount,
	})
}

// CountdownHandler handles GET /auctions/:product_id/countdown as a server-sent event stream.
// One "tick" event per interval until the auction ends or the client goes away.
func (h *MarketHandler) CountdownHandler(c *gin.Context) {
	productID := c.Param("product_id")
	ctx := c.Request.Context()

	cd, err := h.auctions.Countdown(ctx, productID)
	if err != nil {
		helpers.RespondError(c, "CountdownHandler", err, map[string]any{"product_id": productID})
		return
	}

	ticks, unsubscribe := cd.Subscribe()
	defer unsubscribe()
	cd.Start(ctx)
	defer cd.Stop()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)

	sent := 0
	for {
		select {
		case <-ctx.Done():
			utils.Info("CountdownHandler: client disconnected", map[string]any{"product_id": productID, "ticks": sent})
			return
		case tick, ok := <-ticks:
			if !ok {
				helpers.LogSuccess("CountdownHandler", "countdown finished", map[string]any{"product_id": productID, "ticks": sent})
				return
			}
			c.SSEvent("tick", tick)
			c.Writer.Flush()
			sent++
		}
	}
}
