package marketapi

//go:generate mockgen -source=api.go -destination=mock_api.go -package=marketapi

import (
	"context"
	"net/http"

	"carmarket-bff/internal/forms"
	"carmarket-bff/internal/listing"
	"carmarket-bff/internal/models"
)

// Authorizer attaches credentials to an outgoing request.
// *session.Session satisfies it; a nil session sends the request anonymously.
type Authorizer interface {
	Authorize(req *http.Request)
}

// MarketplaceAPI is the marketplace REST API as seen by the BFF.
// Every method issues exactly one request and never retries.
type MarketplaceAPI interface {
	Login(ctx context.Context, form forms.LoginForm) (models.AuthResult, error)
	Signup(ctx context.Context, form forms.SignupForm) (models.AuthResult, error)
	RequestPasswordReset(ctx context.Context, form forms.ForgotPasswordForm) error
	ResetPassword(ctx context.Context, form forms.ResetPasswordForm) error
	VerifyToken(ctx context.Context, auth Authorizer) (models.User, error)
	UpdateProfile(ctx context.Context, auth Authorizer, form forms.ProfileForm) (models.User, error)

	ListQuestions(ctx context.Context, q listing.Query) (models.Page[models.Question], error)
	GetQuestion(ctx context.Context, questionID string) (models.Question, error)
	CreateQuestion(ctx context.Context, auth Authorizer, form forms.QuestionForm) (models.Question, error)
	ListAnswers(ctx context.Context, questionID string, q listing.Query) (models.Page[models.Answer], error)
	CreateAnswer(ctx context.Context, auth Authorizer, questionID string, form forms.AnswerForm) (models.Answer, error)
	Vote(ctx context.Context, auth Authorizer, answerID string, value int) (models.Answer, error)

	ListProducts(ctx context.Context, q listing.Query) (models.Page[models.Product], error)
	GetProduct(ctx context.Context, productID string) (models.Product, error)
	CreateProduct(ctx context.Context, auth Authorizer, form forms.ProductForm) (models.Product, error)
	UpdateProduct(ctx context.Context, auth Authorizer, productID string, form forms.ProductForm) (models.Product, error)
	ListBids(ctx context.Context, productID string) ([]models.Bid, error)
	CreateBid(ctx context.Context, auth Authorizer, productID string, amount float64) (models.Bid, error)

	CreateSale(ctx context.Context, auth Authorizer, form forms.CheckoutForm) (models.Sale, error)
	GetSalePDF(ctx context.Context, auth Authorizer, saleID string) ([]byte, error)

	ListProposals(ctx context.Context, auth Authorizer, q listing.Query) (models.Page[models.Proposal], error)
	RequestProposal(ctx context.Context, auth Authorizer, form forms.ProposalForm) (models.Proposal, error)
	UpdateProposal(ctx context.Context, auth Authorizer, proposalID string, form forms.ProposalForm) (models.Proposal, error)
	DeleteProposal(ctx context.Context, auth Authorizer, proposalID string) error

	SendContactMessage(ctx context.Context, form forms.ContactForm) error
	UploadImage(ctx context.Context, auth Authorizer, image Image) (string, error)
}

// Image is a file forwarded to the upload endpoint
type Image struct {
	Filename    string
	ContentType string
	Data        []byte
}

type bidRequest struct {
	Amount float64 `json:"bidAmount"`
}

type voteRequest struct {
	Value int `json:"value"`
}

type uploadResponse struct {
	URL string `json:"url"`
}

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
