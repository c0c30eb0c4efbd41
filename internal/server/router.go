package server

import (
	"carmarket-bff/internal/session"
	handler "carmarket-bff/services/market/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(marketHandler *handler.MarketHandler, sessions *session.Manager, cookie session.Cookie) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestIDMiddleware)     // request id for log correlation
	router.Use(RequestLoggerMiddleware) // custom request logging

	router.GET("/health", marketHandler.HealthHandler)

	api := router.Group("")
	api.Use(SessionMiddleware(sessions, cookie))

	auth := api.Group("/auth")
	{
		auth.POST("/login", marketHandler.LoginHandler)
		auth.POST("/signup", marketHandler.SignupHandler)
		auth.POST("/logout", marketHandler.LogoutHandler)
		auth.POST("/password/forgot", marketHandler.ForgotPasswordHandler)
		auth.POST("/password/reset", marketHandler.ResetPasswordHandler)
	}

	me := api.Group("/me")
	{
		me.GET("", marketHandler.MeHandler)
		me.PUT("", marketHandler.UpdateProfileHandler)
		me.POST("/theme/toggle", marketHandler.ToggleThemeHandler)
	}

	auctions := api.Group("/auctions")
	{
		auctions.GET("/:product_id", marketHandler.GetAuctionHandler)
		auctions.POST("/:product_id/bids", marketHandler.PlaceBidHandler)
		auctions.GET("/:product_id/countdown", marketHandler.CountdownHandler)
	}

	products := api.Group("/products")
	{
		products.GET("", marketHandler.ListProductsHandler)
		products.POST("", marketHandler.CreateProductHandler)
		products.GET("/:product_id", marketHandler.GetProductHandler)
		products.PUT("/:product_id", marketHandler.UpdateProductHandler)
	}

	questions := api.Group("/questions")
	{
		questions.GET("", marketHandler.ListQuestionsHandler)
		questions.POST("", marketHandler.CreateQuestionHandler)
		questions.GET("/:question_id/answers", marketHandler.ListAnswersHandler)
		questions.POST("/:question_id/answers", marketHandler.CreateAnswerHandler)
	}

	api.POST("/answers/:answer_id/votes", marketHandler.VoteHandler)

	proposals := api.Group("/proposals")
	{
		proposals.GET("", marketHandler.ListProposalsHandler)
		proposals.POST("", marketHandler.RequestProposalHandler)
		proposals.PUT("/:proposal_id", marketHandler.UpdateProposalHandler)
		proposals.DELETE("/:proposal_id", marketHandler.DeleteProposalHandler)
	}

	api.POST("/checkout", marketHandler.CheckoutHandler)
	api.GET("/sales/:sale_id/pdf", marketHandler.SalePDFHandler)
	api.POST("/contact", marketHandler.ContactHandler)

	previews := api.Group("/uploads/previews")
	{
		previews.POST("", marketHandler.StagePreviewHandler)
		previews.GET("/:preview_id", marketHandler.GetPreviewHandler)
		previews.DELETE("/:preview_id", marketHandler.RevokePreviewHandler)
		previews.POST("/:preview_id/commit", marketHandler.CommitPreviewHandler)
	}

	return router
}
