package helpers

import (
	"bytes"
	"encoding/json"

	"carmarket-bff/internal/listing"
	"carmarket-bff/internal/models"
	"carmarket-bff/internal/session"
)

// BidAmount keeps the candidate bid exactly as typed. It accepts a JSON string or number.
type BidAmount string

func (a *BidAmount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*a = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = BidAmount(s)
		return nil
	}
	*a = BidAmount(b)
	return nil
}

// Request DTOs
type PlaceBidRequest struct {
	Amount BidAmount `json:"amount" binding:"required"`
}

type VoteRequest struct {
	Value int `json:"value" binding:"required"`
}

// Response DTOs
type SessionResponse struct {
	UserID string        `json:"userId,omitempty"`
	Theme  session.Theme `json:"theme"`
	User   *models.User  `json:"user,omitempty"`
}

type ThemeResponse struct {
	Theme session.Theme `json:"theme"`
}

type BidResponse struct {
	BidID     string              `json:"id"`
	ProductID string              `json:"productId"`
	UserID    string              `json:"userId"`
	Amount    float64             `json:"bidAmount"`
	CreatedAt string              `json:"createdAt"`
	Auction   *models.AuctionView `json:"auction,omitempty"`
}

// ListResponse is one Lister state as sent to the browser
type ListResponse[T any] struct {
	Status     listing.Status    `json:"status"`
	Items      []T               `json:"items"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalPages int               `json:"totalPages"`
	Search     string            `json:"search,omitempty"`
	Sort       string            `json:"sort,omitempty"`
	Filters    map[string]string `json:"filters,omitempty"`
	Message    string            `json:"message,omitempty"`
}

// NewListResponse flattens a lister state
func NewListResponse[T any](st listing.State[T]) ListResponse[T] {
	items := st.Items
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{
		Status:     st.Status,
		Items:      items,
		Page:       st.Query.Page,
		PageSize:   st.Query.PageSize,
		TotalPages: st.TotalPages,
		Search:     st.Query.Search,
		Sort:       st.Query.Sort,
		Filters:    st.Query.Filters,
		Message:    st.Message,
	}
}

type PreviewResponse struct {
	Handle      string `json:"handle"`
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Size        int    `json:"size"`
	URL         string `json:"url"`
}

type CommitResponse struct {
	Path string `json:"path"`
	URL  string `json:"url"`
}
