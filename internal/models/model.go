package models

import "time"

// User represents a marketplace member as returned by the API
type User struct {
	UserID          string   `json:"id"`
	Username        string   `json:"username"`
	Email           string   `json:"email,omitempty"`
	ProfileImage    string   `json:"profileImage,omitempty"`
	ReputationScore int      `json:"reputationScore"`
	Badges          []string `json:"badges,omitempty"`
}

// Product represents a listing; auctions are products with IsAuction set
type Product struct {
	ProductID        string     `json:"id"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	Price            float64    `json:"price"`
	Image            string     `json:"image,omitempty"`
	Images           []string   `json:"images,omitempty"`
	Category         string     `json:"category,omitempty"`
	Address          string     `json:"address,omitempty"`
	IsAuction        bool       `json:"is_auction"`
	AuctionStartDate *time.Time `json:"auction_start_date,omitempty"`
	AuctionEndDate   *time.Time `json:"auction_end_date,omitempty"`
	SellerID         string     `json:"sellerId"`
}

// Bid represents a user's bid on a product
type Bid struct {
	BidID     string    `json:"id"`
	ProductID string    `json:"productId,omitempty"`
	UserID    string    `json:"userId"`
	Amount    float64   `json:"bidAmount"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuctionView is derived from a product snapshot and its bid list
type AuctionView struct {
	Product       Product       `json:"product"`
	HighestBid    float64       `json:"highestBid"`
	HighestBidder string        `json:"highestBidder,omitempty"`
	Floor         float64       `json:"floor"`
	BidCount      int           `json:"bidCount"`
	Bids          []Bid         `json:"bids"`
	Ended         bool          `json:"ended"`
	Remaining     time.Duration `json:"remainingNanos"`
	CanBid        bool          `json:"canBid"`
}

// Question is a car-repair question
type Question struct {
	QuestionID  string    `json:"id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Category    string    `json:"category,omitempty"`
	AuthorID    string    `json:"authorId"`
	Votes       int       `json:"votes"`
	AnswerCount int       `json:"answerCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Answer is a reply to a Question
type Answer struct {
	AnswerID   string    `json:"id"`
	QuestionID string    `json:"questionId"`
	Body       string    `json:"body"`
	AuthorID   string    `json:"authorId"`
	Votes      int       `json:"votes"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Proposal is a subscription-gated mechanic service request
type Proposal struct {
	ProposalID  string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CarMake     string    `json:"carMake,omitempty"`
	CarModel    string    `json:"carModel,omitempty"`
	CarYear     int       `json:"carYear,omitempty"`
	Budget      float64   `json:"budget"`
	Status      string    `json:"status"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Sale is the result of a checkout
type Sale struct {
	SaleID    string    `json:"id"`
	ProductID string    `json:"productId"`
	BuyerID   string    `json:"buyerId"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactMessage is a support request
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Page is one page of a paginated collection
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	TotalPages int `json:"totalPages"`
}

// AuthResult is what the API returns on login or signup
type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
