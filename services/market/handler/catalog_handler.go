package handler

import (
	"errors"
	"net/http"

	"carmarket-bff/internal/forms"
	"carmarket-bff/internal/listing"
	"carmarket-bff/services/market/helpers"
	"carmarket-bff/utils"

	"github.com/gin-gonic/gin"
)

// respondList sends one lister state; an empty page carries the "nothing found" message
func respondList[T any](c *gin.Context, handlerName string, st listing.State[T], err error) {
	if err != nil {
		fields := map[string]any{"page": st.Query.Page, "generation": st.Generation}
		var stale *listing.StaleError
		if errors.As(err, &stale) {
			fields["generation"] = stale.Generation
			fields["current_generation"] = stale.Current
			fields["current_page"] = st.Query.Page
		}
		helpers.RespondError(c, handlerName, err, fields)
		return
	}

	message := "items retrieved successfully"
	if st.Message != "" {
		message = st.Message
	}
	utils.JSONResponse(c, http.StatusOK, helpers.NewListResponse(st), message)
	helpers.LogSuccess(handlerName, "page retrieved", map[string]any{
		"page":        st.Query.Page,
		"count":       len(st.Items),
		"total_pages": st.TotalPages,
	})
}

// ListQuestionsHandler handles GET /questions
func (h *MarketHandler) ListQuestionsHandler(c *gin.Context) {
	q := helpers.ParseQuery(c, "category")
	st, err := h.catalog.ListQuestions(c.Request.Context(), helpers.CurrentSession(c), q)
	respondList(c, "ListQuestionsHandler", st, err)
}

// ListProductsHandler handles GET /products
func (h *MarketHandler) ListProductsHandler(c *gin.Context) {
	q := helpers.ParseQuery(c, "category", "is_auction")
	st, err := h.catalog.ListProducts(c.Request.Context(), helpers.CurrentSession(c), q)
	respondList(c, "ListProductsHandler", st, err)
}

// ListProposalsHandler handles GET /proposals
func (h *MarketHandler) ListProposalsHandler(c *gin.Context) {
	q := helpers.ParseQuery(c, "status")
	st, err := h.catalog.ListProposals(c.Request.Context(), helpers.CurrentSession(c), q)
	respondList(c, "ListProposalsHandler", st, err)
}

// ListAnswersHandler handles GET /questions/:question_id/answers
func (h *MarketHandler) ListAnswersHandler(c *gin.Context) {
	q := helpers.ParseQuery(c)
	st, err := h.catalog.ListAnswers(c.Request.Context(), helpers.CurrentSession(c), c.Param("question_id"), q)
	respondList(c, "ListAnswersHandler", st, err)
}

// GetProductHandler handles GET /products/:product_id
func (h *MarketHandler) GetProductHandler(c *gin.Context) {
	productID := c.Param("product_id")
	product, err := h.catalog.GetProduct(c.Request.Context(), productID)
	if err != nil {
		helpers.RespondError(c, "GetProductHandler", err, map[string]any{"product_id": productID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, product, "product retrieved successfully")
}

// CreateProductHandler handles POST /products
func (h *MarketHandler) CreateProductHandler(c *gin.Context) {
	var form forms.ProductForm
	if err := c.ShouldBindJSON(&form); err != nil {
		helpers.HandleBindError(c, "CreateProductHandler", err)
		return
	}

	product, err := h.catalog.CreateProduct(c.Request.Context(), helpers.CurrentSession(c), form)
	if err != nil {
		helpers.RespondError(c, "CreateProductHandler", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusCreated, product, "product created successfully")
	helpers.LogSuccess("CreateProductHandler", "product created successfully", map[string]any{
		"product_id": product.ProductID,
		"is_auction": product.IsAuction,
	})
}

// UpdateProductHandler handles PUT /products/:product_id
func (h *MarketHandler) UpdateProductHandler(c *gin.Context) {
	productID := c.Param("product_id")

	var form forms.ProductForm
	if err := c.ShouldBindJSON(&form); err != nil {
		helpers.HandleBindError(c, "UpdateProductHandler", err)
		return
	}

	product, err := h.catalog.UpdateProduct(c.Request.Context(), helpers.CurrentSession(c), productID, form)
	if err != nil {
		helpers.RespondError(c, "UpdateProductHandler", err, map[string]any{"product_id": productID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, product, "product updated successfully")
}

// CreateQuestionHandler handles POST /questions
func (h *MarketHandler) CreateQuestionHandler(c *gin.Context) {
	var form forms.QuestionForm
	if err := c.ShouldBindJSON(&form); err != nil {
		helpers.HandleBindError(c, "CreateQuestionHandler", err)
		return
	}

	question, err := h.catalog.CreateQuestion(c.Request.Context(), helpers.CurrentSession(c), form)
	if err != nil {
		helpers.RespondError(c, "CreateQuestionHandler", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusCreated, question, "question posted successfully")
	helpers.LogSuccess("CreateQuestionHandler", "question posted successfully", map[string]any{"question_id": question.QuestionID})
}

// CreateAnswerHandler handles POST /questions/:question_id/answers
func (h *MarketHandler) CreateAnswerHandler(c *gin.Context) {
	questionID := c.Param("question_id")

	var form forms.AnswerForm
	if err := c.ShouldBindJSON(&form); err != nil {
		helpers.HandleBindError(c, "CreateAnswerHandler", err)
		return
	}

	answer, err := h.catalog.CreateAnswer(c.Request.Context(), helpers.CurrentSession(c), questionID, form)
	if err != nil {
		helpers.RespondError(c, "CreateAnswerHandler", err, map[string]any{"question_id": questionID})
		return
	}
	utils.JSONResponse(c, http.StatusCreated, answer, "answer posted successfully")
}

// VoteHandler handles POST /answers/:answer_id/votes
func (h *MarketHandler) VoteHandler(c *gin.Context) {
	answerID := c.Param("answer_id")

	var req helpers.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "VoteHandler", err)
		return
	}

	answer, err := h.catalog.Vote(c.Request.Context(), helpers.CurrentSession(c), answerID, req.Value)
	if err != nil {
		helpers.RespondError(c, "VoteHandler", err, map[string]any{"answer_id": answerID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, answer, "vote registered")
}

// RequestProposalHandler handles POST /proposals
func (h *MarketHandler) RequestProposalHandler(c *gin.Context) {
	var form forms.ProposalForm
	if err := c.ShouldBindJSON(&form); err != nil {
		helpers.HandleBindError(c, "RequestProposalHandler", err)
		return
	}

	proposal, err := h.catalog.RequestProposal(c.Request.Context(), helpers.CurrentSession(c), form)
	if err != nil {
		helpers.RespondError(c, "RequestProposalHandler", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusCreated, proposal, "proposal requested successfully")
}

// UpdateProposalHandler handles PUT /proposals/:proposal_id
func (h *MarketHandler) UpdateProposalHandler(c *gin.Context) {
	proposalID := c.Param("proposal_id")

	var form forms.ProposalForm
	if err := c.ShouldBindJSON(&form); err != nil {
		helpers.HandleBindError(c, "UpdateProposalHandler", err)
		return
	}

	proposal, err := h.catalog.UpdateProposal(c.Request.Context(), helpers.CurrentSession(c), proposalID, form)
	if err != nil {
		helpers.RespondError(c, "UpdateProposalHandler", err, map[string]any{"proposal_id": proposalID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, proposal, "proposal updated successfully")
}

// DeleteProposalHandler handles DELETE /proposals/:proposal_id
func (h *MarketHandler) DeleteProposalHandler(c *gin.Context) {
	proposalID := c.Param("proposal_id")
	if err := h.catalog.DeleteProposal(c.Request.Context(), helpers.CurrentSession(c), proposalID); err != nil {
		helpers.RespondError(c, "DeleteProposalHandler", err, map[string]any{"proposal_id": proposalID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, nil, "proposal deleted successfully")
}

// CheckoutHandler handles POST /checkout
func (h *MarketHandler) CheckoutHandler(c *gin.Context) {
	var form forms.CheckoutForm
	if err := c.ShouldBindJSON(&form); err != nil {
		helpers.HandleBindError(c, "CheckoutHandler", err)
		return
	}

	sale, err := h.catalog.Checkout(c.Request.Context(), helpers.CurrentSession(c), form)
	if err != nil {
		helpers.RespondError(c, "CheckoutHandler", err, map[string]any{"product_id": form.ProductID})
		return
	}
	utils.JSONResponse(c, http.StatusCreated, sale, "checkout completed successfully")
	helpers.LogSuccess("CheckoutHandler", "checkout completed successfully", map[string]any{
		"sale_id":    sale.SaleID,
		"product_id": sale.ProductID,
	})
}

// SalePDFHandler handles GET /sales/:sale_id/pdf
func (h *MarketHandler) SalePDFHandler(c *gin.Context) {
	saleID := c.Param("sale_id")
	pdf, err := h.catalog.SalePDF(c.Request.Context(), helpers.CurrentSession(c), saleID)
	if err != nil {
		helpers.RespondError(c, "SalePDFHandler", err, map[string]any{"sale_id": saleID})
		return
	}
	c.Header("Content-Disposition", `inline; filename="sale-`+saleID+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// ContactHandler handles POST /contact
func (h *MarketHandler) ContactHandler(c *gin.Context) {
	var form forms.ContactForm
	if err := c.ShouldBindJSON(&form); err != nil {
		helpers.HandleBindError(c, "ContactHandler", err)
		return
	}

	if err := h.catalog.Contact(c.Request.Context(), form); err != nil {
		helpers.RespondError(c, "ContactHandler", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusCreated, nil, "message sent successfully")
}
