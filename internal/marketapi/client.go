package marketapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"carmarket-bff/internal/forms"
	"carmarket-bff/internal/listing"
	"carmarket-bff/internal/marketerrors"
	"carmarket-bff/internal/models"
	"carmarket-bff/utils"
)

// APIPrefix is prepended to every endpoint path
const APIPrefix = "/api/v1"

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// maxErrorBody bounds how much of a failed response is read for its message
const maxErrorBody = 64 << 10

// HTTPClient implements MarketplaceAPI over plain HTTP
type HTTPClient struct {
	baseURL   string
	assetBase string
	client    *http.Client
}

// NewHTTPClient creates a client for the API at baseURL. Static assets are served from assetBase.
func NewHTTPClient(baseURL, assetBase string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		assetBase: strings.TrimRight(assetBase, "/"),
		client:    &http.Client{Timeout: timeout},
	}
}

// AssetURL joins the static base URL with a stored image path. Absolute URLs are returned unchanged.
func (c *HTTPClient) AssetURL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return c.assetBase + "/" + strings.TrimLeft(path, "/")
}

func (c *HTTPClient) endpoint(path string, query url.Values) string {
	u := c.baseURL + APIPrefix + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *HTTPClient) newJSONRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marketapi: encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reader)
	if err != nil {
		return nil, fmt.Errorf("marketapi: build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// do sends req and returns the body of a 2xx response.
// Non-2xx responses become *marketerrors.APIError carrying the server message.
func (c *HTTPClient) do(req *http.Request, auth Authorizer, path string) ([]byte, error) {
	if auth != nil {
		auth.Authorize(req)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("marketapi: %w - %s %s: %v", marketerrors.ErrUpstream, req.Method, path, err)
	}
	defer resp.Body.Close()

	utils.Debug("upstream request", map[string]any{
		"method":  req.Method,
		"path":    path,
		"status":  resp.StatusCode,
		"latency": time.Since(start).String(),
	})

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &marketerrors.APIError{
			Status:  resp.StatusCode,
			Message: serverMessage(raw),
			Path:    path,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("marketapi: %w - read %s %s: %v", marketerrors.ErrUpstream, req.Method, path, err)
	}
	return body, nil
}

func serverMessage(raw []byte) string {
	var er errorResponse
	if err := json.Unmarshal(raw, &er); err != nil {
		return ""
	}
	if er.Message != "" {
		return er.Message
	}
	return er.Error
}

func (c *HTTPClient) call(ctx context.Context, method, path string, query url.Values, auth Authorizer, body, out any) error {
	req, err := c.newJSONRequest(ctx, method, path, query, body)
	if err != nil {
		return err
	}

	raw, err := c.do(req, auth, path)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("marketapi: %w - decode %s %s: %v", marketerrors.ErrUpstream, method, path, err)
	}
	return nil
}

func escape(id string) string {
	return url.PathEscape(id)
}

// Login exchanges credentials for a token
func (c *HTTPClient) Login(ctx context.Context, form forms.LoginForm) (models.AuthResult, error) {
	var out models.AuthResult
	err := c.call(ctx, http.MethodPost, "/auth/login", nil, nil, form, &out)
	return out, err
}

// Signup registers a new account and returns its token
func (c *HTTPClient) Signup(ctx context.Context, form forms.SignupForm) (models.AuthResult, error) {
	var out models.AuthResult
	err := c.call(ctx, http.MethodPost, "/auth/signup", nil, nil, form, &out)
	return out, err
}

func (c *HTTPClient) RequestPasswordReset(ctx context.Context, form forms.ForgotPasswordForm) error {
	return c.call(ctx, http.MethodPost, "/auth/forgot-password", nil, nil, form, nil)
}

func (c *HTTPClient) ResetPassword(ctx context.Context, form forms.ResetPasswordForm) error {
	return c.call(ctx, http.MethodPost, "/auth/reset-password", nil, nil, form, nil)
}

// VerifyToken returns the user the token belongs to
func (c *HTTPClient) VerifyToken(ctx context.Context, auth Authorizer) (models.User, error) {
	var out models.User
	err := c.call(ctx, http.MethodGet, "/auth/verify", nil, auth, nil, &out)
	return out, err
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, auth Authorizer, form forms.ProfileForm) (models.User, error) {
	var out models.User
	err := c.call(ctx, http.MethodPut, "/users/me", nil, auth, form, &out)
	return out, err
}

func (c *HTTPClient) ListQuestions(ctx context.Context, q listing.Query) (models.Page[models.Question], error) {
	var out models.Page[models.Question]
	err := c.call(ctx, http.MethodGet, "/questions", q.Values(), nil, nil, &out)
	return out, err
}

func (c *HTTPClient) GetQuestion(ctx context.Context, questionID string) (models.Question, error) {
	var out models.Question
	err := c.call(ctx, http.MethodGet, "/questions/"+escape(questionID), nil, nil, nil, &out)
	return out, err
}

func (c *HTTPClient) CreateQuestion(ctx context.Context, auth Authorizer, form forms.QuestionForm) (models.Question, error) {
	var out models.Question
	err := c.call(ctx, http.MethodPost, "/questions", nil, auth, form, &out)
	return out, err
}

func (c *HTTPClient) ListAnswers(ctx context.Context, questionID string, q listing.Query) (models.Page[models.Answer], error) {
	var out models.Page[models.Answer]
	err := c.call(ctx, http.MethodGet, "/questions/"+escape(questionID)+"/answers", q.Values(), nil, nil, &out)
	return out, err
}

func (c *HTTPClient) CreateAnswer(ctx context.Context, auth Authorizer, questionID string, form forms.AnswerForm) (models.Answer, error) {
	var out models.Answer
	err := c.call(ctx, http.MethodPost, "/questions/"+escape(questionID)+"/answers", nil, auth, form, &out)
	return out, err
}

// Vote casts an up (+1) or down (-1) vote on an answer
func (c *HTTPClient) Vote(ctx context.Context, auth Authorizer, answerID string, value int) (models.Answer, error) {
	var out models.Answer
	err := c.call(ctx, http.MethodPost, "/answers/"+escape(answerID)+"/vote", nil, auth, voteRequest{Value: value}, &out)
	return out, err
}

func (c *HTTPClient) ListProducts(ctx context.Context, q listing.Query) (models.Page[models.Product], error) {
	var out models.Page[models.Product]
	err := c.call(ctx, http.MethodGet, "/products", q.Values(), nil, nil, &out)
	return out, err
}

func (c *HTTPClient) GetProduct(ctx context.Context, productID string) (models.Product, error) {
	var out models.Product
	err := c.call(ctx, http.MethodGet, "/products/"+escape(productID), nil, nil, nil, &out)
	return out, err
}

func (c *HTTPClient) CreateProduct(ctx context.Context, auth Authorizer, form forms.ProductForm) (models.Product, error) {
	var out models.Product
	err := c.call(ctx, http.MethodPost, "/products", nil, auth, form, &out)
	return out, err
}

func (c *HTTPClient) UpdateProduct(ctx context.Context, auth Authorizer, productID string, form forms.ProductForm) (models.Product, error) {
	var out models.Product
	err := c.call(ctx, http.MethodPut, "/products/"+escape(productID), nil, auth, form, &out)
	return out, err
}

// ListBids returns every bid on a product
func (c *HTTPClient) ListBids(ctx context.Context, productID string) ([]models.Bid, error) {
	var out []models.Bid
	if err := c.call(ctx, http.MethodGet, "/products/"+escape(productID)+"/bids", nil, nil, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Bid{}
	}
	return out, nil
}

// CreateBid submits {"bidAmount": amount}
func (c *HTTPClient) CreateBid(ctx context.Context, auth Authorizer, productID string, amount float64) (models.Bid, error) {
	var out models.Bid
	err := c.call(ctx, http.MethodPost, "/products/"+escape(productID)+"/bids", nil, auth, bidRequest{Amount: amount}, &out)
	return out, err
}

func (c *HTTPClient) CreateSale(ctx context.Context, auth Authorizer, form forms.CheckoutForm) (models.Sale, error) {
	var out models.Sale
	err := c.call(ctx, http.MethodPost, "/sales", nil, auth, form, &out)
	return out, err
}

// GetSalePDF returns the receipt bytes as served
func (c *HTTPClient) GetSalePDF(ctx context.Context, auth Authorizer, saleID string) ([]byte, error) {
	path := "/sales/" + escape(saleID) + "/pdf"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path, nil), nil)
	if err != nil {
		return nil, fmt.Errorf("marketapi: build GET %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/pdf")
	return c.do(req, auth, path)
}

func (c *HTTPClient) ListProposals(ctx context.Context, auth Authorizer, q listing.Query) (models.Page[models.Proposal], error) {
	var out models.Page[models.Proposal]
	err := c.call(ctx, http.MethodGet, "/proposals", q.Values(), auth, nil, &out)
	return out, err
}

func (c *HTTPClient) RequestProposal(ctx context.Context, auth Authorizer, form forms.ProposalForm) (models.Proposal, error) {
	var out models.Proposal
	err := c.call(ctx, http.MethodPost, "/proposals", nil, auth, form, &out)
	return out, err
}

func (c *HTTPClient) UpdateProposal(ctx context.Context, auth Authorizer, proposalID string, form forms.ProposalForm) (models.Proposal, error) {
	var out models.Proposal
	err := c.call(ctx, http.MethodPut, "/proposals/"+escape(proposalID), nil, auth, form, &out)
	return out, err
}

func (c *HTTPClient) DeleteProposal(ctx context.Context, auth Authorizer, proposalID string) error {
	return c.call(ctx, http.MethodDelete, "/proposals/"+escape(proposalID), nil, auth, nil, nil)
}

func (c *HTTPClient) SendContactMessage(ctx context.Context, form forms.ContactForm) error {
	return c.call(ctx, http.MethodPost, "/contact", nil, nil, form, nil)
}

// UploadImage posts the image as multipart field "image" and returns the stored path
func (c *HTTPClient) UploadImage(ctx context.Context, auth Authorizer, image Image) (string, error) {
	const path = "/uploads"

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, quoteEscaper.Replace(image.Filename)))
	header.Set("Content-Type", image.ContentType)
	part, err := mw.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("marketapi: build upload: %w", err)
	}
	if _, err := part.Write(image.Data); err != nil {
		return "", fmt.Errorf("marketapi: build upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("marketapi: build upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path, nil), &buf)
	if err != nil {
		return "", fmt.Errorf("marketapi: build POST %s: %w", path, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	raw, err := c.do(req, auth, path)
	if err != nil {
		return "", err
	}

	var out uploadResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("marketapi: %w - decode upload response: %v", marketerrors.ErrUpstream, err)
	}
	if out.URL == "" {
		return "", fmt.Errorf("marketapi: %w - upload response without url", marketerrors.ErrUpstream)
	}
	return out.URL, nil
}
