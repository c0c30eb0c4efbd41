package catalog

import (
	"context"
	"fmt"
	"io"

	"carmarket-bff/internal/forms"
	"carmarket-bff/internal/listing"
	"carmarket-bff/internal/marketapi"
	"carmarket-bff/internal/marketerrors"
	"carmarket-bff/internal/models"
	"carmarket-bff/internal/session"
	"carmarket-bff/internal/uploads"
	"carmarket-bff/utils"
)

// Messages shown when a submission fails without a server message
const (
	FallbackProductMessage  = "failed to save product"
	FallbackQuestionMessage = "failed to post question"
	FallbackAnswerMessage   = "failed to post answer"
	FallbackVoteMessage     = "failed to register vote"
	FallbackProposalMessage = "failed to save proposal"
	FallbackCheckoutMessage = "failed to complete checkout"
	FallbackContactMessage  = "failed to send message"
	FallbackUploadMessage   = "failed to upload image"
)

type questionKey struct{}

// Service serves the listing pages and the plain create/update submissions
type Service struct {
	api       marketapi.MarketplaceAPI
	forms     *forms.Validator
	previews  *uploads.Previews
	maxUpload int64

	questions *listing.Registry[models.Question]
	products  *listing.Registry[models.Product]
	proposals *listing.Registry[models.Proposal]
	answers   *listing.Registry[models.Answer]
}

// NewService wires one lister registry per collection; listers are keyed by session
func NewService(api marketapi.MarketplaceAPI, validator *forms.Validator, previews *uploads.Previews, maxUpload int64) *Service {
	s := &Service{api: api, forms: validator, previews: previews, maxUpload: maxUpload}

	s.questions = listing.NewRegistry[models.Question](api.ListQuestions)
	s.products = listing.NewRegistry[models.Product](api.ListProducts)
	s.proposals = listing.NewRegistry[models.Proposal](func(ctx context.Context, q listing.Query) (models.Page[models.Proposal], error) {
		sess, _ := session.FromContext(ctx)
		return api.ListProposals(ctx, sess, q)
	})
	s.answers = listing.NewRegistry[models.Answer](func(ctx context.Context, q listing.Query) (models.Page[models.Answer], error) {
		questionID, _ := ctx.Value(questionKey{}).(string)
		return api.ListAnswers(ctx, questionID, q)
	})
	return s
}

// EndSession releases the listers and previews of a finished session
func (s *Service) EndSession(sessionID string) {
	s.questions.Drop(sessionID)
	s.products.Drop(sessionID)
	s.proposals.Drop(sessionID)
	s.answers.Drop(sessionID)
	s.previews.RevokeAll(sessionID)
}

func sessionID(sess *session.Session) string {
	if sess == nil {
		return ""
	}
	return sess.ID
}

func requireAuth(sess *session.Session) error {
	if !sess.Authenticated() {
		return fmt.Errorf("service: %w", marketerrors.ErrUnauthenticated)
	}
	return nil
}

func (s *Service) ListQuestions(ctx context.Context, sess *session.Session, q listing.Query) (listing.State[models.Question], error) {
	return s.questions.For(sessionID(sess)).Load(ctx, q)
}

func (s *Service) ListProducts(ctx context.Context, sess *session.Session, q listing.Query) (listing.State[models.Product], error) {
	return s.products.For(sessionID(sess)).Load(ctx, q)
}

// ListProposals is only open to signed-in users
func (s *Service) ListProposals(ctx context.Context, sess *session.Session, q listing.Query) (listing.State[models.Proposal], error) {
	if err := requireAuth(sess); err != nil {
		return listing.State[models.Proposal]{}, err
	}
	return s.proposals.For(sess.ID).Load(session.NewContext(ctx, sess), q)
}

// ListAnswers pages through one question's answers. Switching question restarts the lister like any other parameter change.
func (s *Service) ListAnswers(ctx context.Context, sess *session.Session, questionID string, q listing.Query) (listing.State[models.Answer], error) {
	return s.answers.For(sessionID(sess)).Load(context.WithValue(ctx, questionKey{}, questionID), q)
}

func (s *Service) GetProduct(ctx context.Context, productID string) (models.Product, error) {
	product, err := s.api.GetProduct(ctx, productID)
	if err != nil {
		return models.Product{}, fmt.Errorf("service: failed to get product %s: %w", productID, err)
	}
	return product, nil
}

// CreateProduct validates the listing, uploads any staged previews it references and submits it
func (s *Service) CreateProduct(ctx context.Context, sess *session.Session, form forms.ProductForm) (models.Product, error) {
	if err := requireAuth(sess); err != nil {
		return models.Product{}, err
	}
	if err := s.forms.Validate(&form); err != nil {
		return models.Product{}, err
	}
	if err := s.commitImages(ctx, sess, &form); err != nil {
		return models.Product{}, err
	}

	product, err := s.api.CreateProduct(ctx, sess, form)
	if err != nil {
		return models.Product{}, fmt.Errorf("service: create product: %w", marketerrors.Action(err, FallbackProductMessage))
	}
	return product, nil
}

func (s *Service) UpdateProduct(ctx context.Context, sess *session.Session, productID string, form forms.ProductForm) (models.Product, error) {
	if err := requireAuth(sess); err != nil {
		return models.Product{}, err
	}
	if err := s.forms.Validate(&form); err != nil {
		return models.Product{}, err
	}
	if err := s.commitImages(ctx, sess, &form); err != nil {
		return models.Product{}, err
	}

	product, err := s.api.UpdateProduct(ctx, sess, productID, form)
	if err != nil {
		return models.Product{}, fmt.Errorf("service: update product %s: %w", productID, marketerrors.Action(err, FallbackProductMessage))
	}
	return product, nil
}

// commitImages replaces preview handles in the form with uploaded paths
func (s *Service) commitImages(ctx context.Context, sess *session.Session, form *forms.ProductForm) error {
	if uploads.IsHandle(form.Image) {
		path, err := s.CommitPreview(ctx, sess, form.Image)
		if err != nil {
			return err
		}
		form.Image = path
	}
	for i, img := range form.Images {
		if !uploads.IsHandle(img) {
			continue
		}
		path, err := s.CommitPreview(ctx, sess, img)
		if err != nil {
			return err
		}
		form.Images[i] = path
	}
	return nil
}

func (s *Service) CreateQuestion(ctx context.Context, sess *session.Session, form forms.QuestionForm) (models.Question, error) {
	if err := requireAuth(sess); err != nil {
		return models.Question{}, err
	}
	if err := s.forms.Validate(&form); err != nil {
		return models.Question{}, err
	}
	question, err := s.api.CreateQuestion(ctx, sess, form)
	if err != nil {
		return models.Question{}, fmt.Errorf("service: create question: %w", marketerrors.Action(err, FallbackQuestionMessage))
	}
	return question, nil
}

func (s *Service) CreateAnswer(ctx context.Context, sess *session.Session, questionID string, form forms.AnswerForm) (models.Answer, error) {
	if err := requireAuth(sess); err != nil {
		return models.Answer{}, err
	}
	if err := s.forms.Validate(&form); err != nil {
		return models.Answer{}, err
	}
	answer, err := s.api.CreateAnswer(ctx, sess, questionID, form)
	if err != nil {
		return models.Answer{}, fmt.Errorf("service: create answer on %s: %w", questionID, marketerrors.Action(err, FallbackAnswerMessage))
	}
	return answer, nil
}

// Vote casts +1 or -1 on an answer
func (s *Service) Vote(ctx context.Context, sess *session.Session, answerID string, value int) (models.Answer, error) {
	if err := requireAuth(sess); err != nil {
		return models.Answer{}, err
	}
	if value != 1 && value != -1 {
		return models.Answer{}, marketerrors.FieldErrors{"value": "should have value in: 1 -1"}
	}
	answer, err := s.api.Vote(ctx, sess, answerID, value)
	if err != nil {
		return models.Answer{}, fmt.Errorf("service: vote on %s: %w", answerID, marketerrors.Action(err, FallbackVoteMessage))
	}
	return answer, nil
}

func (s *Service) RequestProposal(ctx context.Context, sess *session.Session, form forms.ProposalForm) (models.Proposal, error) {
	if err := requireAuth(sess); err != nil {
		return models.Proposal{}, err
	}
	if err := s.forms.Validate(&form); err != nil {
		return models.Proposal{}, err
	}
	proposal, err := s.api.RequestProposal(ctx, sess, form)
	if err != nil {
		return models.Proposal{}, fmt.Errorf("service: request proposal: %w", marketerrors.Action(err, FallbackProposalMessage))
	}
	return proposal, nil
}

func (s *Service) UpdateProposal(ctx context.Context, sess *session.Session, proposalID string, form forms.ProposalForm) (models.Proposal, error) {
	if err := requireAuth(sess); err != nil {
		return models.Proposal{}, err
	}
	if err := s.forms.Validate(&form); err != nil {
		return models.Proposal{}, err
	}
	proposal, err := s.api.UpdateProposal(ctx, sess, proposalID, form)
	if err != nil {
		return models.Proposal{}, fmt.Errorf("service: update proposal %s: %w", proposalID, marketerrors.Action(err, FallbackProposalMessage))
	}
	return proposal, nil
}

func (s *Service) DeleteProposal(ctx context.Context, sess *session.Session, proposalID string) error {
	if err := requireAuth(sess); err != nil {
		return err
	}
	if err := s.api.DeleteProposal(ctx, sess, proposalID); err != nil {
		return fmt.Errorf("service: delete proposal %s: %w", proposalID, marketerrors.Action(err, FallbackProposalMessage))
	}
	return nil
}

func (s *Service) Checkout(ctx context.Context, sess *session.Session, form forms.CheckoutForm) (models.Sale, error) {
	if err := requireAuth(sess); err != nil {
		return models.Sale{}, err
	}
	if err := s.forms.Validate(&form); err != nil {
		return models.Sale{}, err
	}
	sale, err := s.api.CreateSale(ctx, sess, form)
	if err != nil {
		return models.Sale{}, fmt.Errorf("service: checkout: %w", marketerrors.Action(err, FallbackCheckoutMessage))
	}
	return sale, nil
}

// SalePDF passes the receipt bytes through untouched
func (s *Service) SalePDF(ctx context.Context, sess *session.Session, saleID string) ([]byte, error) {
	if err := requireAuth(sess); err != nil {
		return nil, err
	}
	pdf, err := s.api.GetSalePDF(ctx, sess, saleID)
	if err != nil {
		return nil, fmt.Errorf("service: sale pdf %s: %w", saleID, err)
	}
	return pdf, nil
}

func (s *Service) Contact(ctx context.Context, form forms.ContactForm) error {
	if err := s.forms.Validate(&form); err != nil {
		return err
	}
	if err := s.api.SendContactMessage(ctx, form); err != nil {
		return fmt.Errorf("service: contact: %w", marketerrors.Action(err, FallbackContactMessage))
	}
	return nil
}

// StagePreview checks an uploaded image and keeps it for the session until committed or revoked
func (s *Service) StagePreview(sess *session.Session, filename string, r io.Reader) (uploads.Preview, error) {
	if sess == nil {
		return uploads.Preview{}, fmt.Errorf("service: %w", marketerrors.ErrSessionNotFound)
	}
	data, mime, err := uploads.ReadImage(r, s.maxUpload)
	if err != nil {
		return uploads.Preview{}, fmt.Errorf("service: stage preview: %w", err)
	}
	return s.previews.Stage(sess.ID, filename, mime, data), nil
}

func (s *Service) GetPreview(sess *session.Session, handle string) (uploads.Preview, error) {
	return s.previews.Get(sessionID(sess), handle)
}

func (s *Service) RevokePreview(sess *session.Session, handle string) error {
	return s.previews.Revoke(sessionID(sess), handle)
}

// CommitPreview uploads a staged image and releases the preview. It returns the stored path.
func (s *Service) CommitPreview(ctx context.Context, sess *session.Session, handle string) (string, error) {
	if err := requireAuth(sess); err != nil {
		return "", err
	}
	pv, err := s.previews.Get(sess.ID, handle)
	if err != nil {
		return "", err
	}

	path, err := s.api.UploadImage(ctx, sess, marketapi.Image{
		Filename:    pv.Filename,
		ContentType: pv.ContentType,
		Data:        pv.Data,
	})
	if err != nil {
		return "", fmt.Errorf("service: upload %s: %w", handle, marketerrors.Action(err, FallbackUploadMessage))
	}

	if err := s.previews.Revoke(sess.ID, handle); err != nil {
		utils.Warn("CommitPreview: preview vanished after upload", map[string]any{"handle": handle})
	}
	return path, nil
}
