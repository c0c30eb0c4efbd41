package handler

//go:generate mockgen -source=handler.go -destination=mock_handler.go -package=handler

import (
	"context"
	"io"
	"net/http"

	auction "carmarket-bff/internal/auctionService"
	"carmarket-bff/internal/countdown"
	"carmarket-bff/internal/forms"
	"carmarket-bff/internal/listing"
	"carmarket-bff/internal/models"
	"carmarket-bff/internal/session"
	"carmarket-bff/internal/uploads"
	"carmarket-bff/utils"

	"github.com/gin-gonic/gin"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, current *session.Session, form forms.LoginForm) (*session.Session, models.User, error)
	Signup(ctx context.Context, current *session.Session, form forms.SignupForm) (*session.Session, models.User, error)
	ForgotPassword(ctx context.Context, form forms.ForgotPasswordForm) error
	ResetPassword(ctx context.Context, form forms.ResetPasswordForm) error
	Logout(ctx context.Context, sess *session.Session) error
	Me(ctx context.Context, sess *session.Session) (models.User, error)
	UpdateProfile(ctx context.Context, sess *session.Session, form forms.ProfileForm) (models.User, error)
	ToggleTheme(ctx context.Context, sess *session.Session) (session.Theme, error)
}

type AuctionServiceInterface interface {
	GetAuctionView(ctx context.Context, productID, userID string) (models.AuctionView, error)
	PlaceBid(ctx context.Context, sess *session.Session, productID, raw string) (auction.BidResult, error)
	Countdown(ctx context.Context, productID string) (*countdown.Countdown, error)
}

type CatalogServiceInterface interface {
	ListQuestions(ctx context.Context, sess *session.Session, q listing.Query) (listing.State[models.Question], error)
	ListProducts(ctx context.Context, sess *session.Session, q listing.Query) (listing.State[models.Product], error)
	ListProposals(ctx context.Context, sess *session.Session, q listing.Query) (listing.State[models.Proposal], error)
	ListAnswers(ctx context.Context, sess *session.Session, questionID string, q listing.Query) (listing.State[models.Answer], error)
	GetProduct(ctx context.Context, productID string) (models.Product, error)
	CreateProduct(ctx context.Context, sess *session.Session, form forms.ProductForm) (models.Product, error)
	UpdateProduct(ctx context.Context, sess *session.Session, productID string, form forms.ProductForm) (models.Product, error)
	CreateQuestion(ctx context.Context, sess *session.Session, form forms.QuestionForm) (models.Question, error)
	CreateAnswer(ctx context.Context, sess *session.Session, questionID string, form forms.AnswerForm) (models.Answer, error)
	Vote(ctx context.Context, sess *session.Session, answerID string, value int) (models.Answer, error)
	RequestProposal(ctx context.Context, sess *session.Session, form forms.ProposalForm) (models.Proposal, error)
	UpdateProposal(ctx context.Context, sess *session.Session, proposalID string, form forms.ProposalForm) (models.Proposal, error)
	DeleteProposal(ctx context.Context, sess *session.Session, proposalID string) error
	Checkout(ctx context.Context, sess *session.Session, form forms.CheckoutForm) (models.Sale, error)
	SalePDF(ctx context.Context, sess *session.Session, saleID string) ([]byte, error)
	Contact(ctx context.Context, form forms.ContactForm) error
	StagePreview(sess *session.Session, filename string, r io.Reader) (uploads.Preview, error)
	GetPreview(sess *session.Session, handle string) (uploads.Preview, error)
	RevokePreview(sess *session.Session, handle string) error
	CommitPreview(ctx context.Context, sess *session.Session, handle string) (string, error)
}

// AssetResolver turns a stored image path into a public URL
type AssetResolver interface {
	AssetURL(path string) string
}

type MarketHandler struct {
	accounts AccountServiceInterface
	auctions AuctionServiceInterface
	catalog  CatalogServiceInterface
	cookie   session.Cookie
	assets   AssetResolver
}

func NewMarketHandler(accounts AccountServiceInterface, auctions AuctionServiceInterface, catalog CatalogServiceInterface, cookie session.Cookie, assets AssetResolver) *MarketHandler {
	return &MarketHandler{
		accounts: accounts,
		auctions: auctions,
		catalog:  catalog,
		cookie:   cookie,
		assets:   assets,
	}
}

// HealthHandler handles GET /health
func (h *MarketHandler) HealthHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, gin.H{"state": "ok"}, "service healthy")
}
