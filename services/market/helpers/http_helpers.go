package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"carmarket-bff/internal/listing"
	"carmarket-bff/internal/marketerrors"
	"carmarket-bff/internal/session"
	"carmarket-bff/internal/uploads"
	"carmarket-bff/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// RespondError maps err to a response and logs it. Field errors are sent with every violated field.
func RespondError(c *gin.Context, handlerName string, err error, ctx map[string]any) {
	if ctx == nil {
		ctx = map[string]any{}
	}
	ctx["handler"] = handlerName
	ctx["error"] = err.Error()

	var fields marketerrors.FieldErrors
	if errors.As(err, &fields) {
		utils.JSONFieldErrors(c, http.StatusBadRequest, fields, "validation failed")
		utils.Info(handlerName+": rejected by validation", ctx)
		return
	}

	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
	ctx["status"] = status
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", ctx)
		return
	}
	utils.Warn(handlerName+": request rejected", ctx)
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message.
// Upstream failures keep the server's status and its message verbatim.
func MapErrorToHTTP(err error) (int, string) {
	var apiErr *marketerrors.APIError
	hasAPIErr := errors.As(err, &apiErr)

	var actionErr *marketerrors.ActionError
	if errors.As(err, &actionErr) {
		if hasAPIErr {
			return upstreamStatus(apiErr.Status), actionErr.Message
		}
		return http.StatusBadGateway, actionErr.Message
	}
	if hasAPIErr {
		if apiErr.Message != "" {
			return upstreamStatus(apiErr.Status), apiErr.Message
		}
		return upstreamStatus(apiErr.Status), "upstream request failed"
	}

	var limitErr *uploads.ReachLimitError
	if errors.As(err, &limitErr) {
		return http.StatusRequestEntityTooLarge, limitErr.Error()
	}

	switch {
	case errors.Is(err, marketerrors.ErrValidation):
		return http.StatusBadRequest, "validation failed"
	case errors.Is(err, marketerrors.ErrBidNotNumeric):
		return http.StatusBadRequest, marketerrors.ErrBidNotNumeric.Error()
	case errors.Is(err, marketerrors.ErrBidTooLow):
		return http.StatusConflict, marketerrors.ErrBidTooLow.Error()
	case errors.Is(err, marketerrors.ErrSellerCannotBid):
		return http.StatusForbidden, marketerrors.ErrSellerCannotBid.Error()
	case errors.Is(err, marketerrors.ErrAuctionEnded):
		return http.StatusGone, marketerrors.ErrAuctionEnded.Error()
	case errors.Is(err, marketerrors.ErrNotAnAuction):
		return http.StatusBadRequest, marketerrors.ErrNotAnAuction.Error()
	case errors.Is(err, marketerrors.ErrUnauthenticated), errors.Is(err, marketerrors.ErrSessionNotFound):
		return http.StatusUnauthorized, "sign in required"
	case errors.Is(err, marketerrors.ErrPreviewMissing):
		return http.StatusNotFound, marketerrors.ErrPreviewMissing.Error()
	case errors.Is(err, marketerrors.ErrNotFound):
		return http.StatusNotFound, "resource not found"
	case errors.Is(err, marketerrors.ErrUnsupportedImg):
		return http.StatusUnsupportedMediaType, marketerrors.ErrUnsupportedImg.Error()
	case errors.Is(err, listing.ErrStale):
		return http.StatusConflict, "superseded by a newer request"
	default:
		return http.StatusBadGateway, "upstream request failed"
	}
}

func upstreamStatus(status int) int {
	if status < 400 || status > 599 {
		return http.StatusBadGateway
	}
	return status
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// CurrentSession returns the request's session, nil when the middleware did not attach one
func CurrentSession(c *gin.Context) *session.Session {
	s, ok := session.FromGin(c)
	if !ok {
		return nil
	}
	return s
}

// ParseQuery reads page, page_size (or limit), search, sort and the named filters
func ParseQuery(c *gin.Context, filters ...string) listing.Query {
	q := listing.Query{
		Page:     atoi(c.Query("page")),
		PageSize: atoi(c.DefaultQuery("page_size", c.Query("limit"))),
		Search:   c.Query("search"),
		Sort:     c.Query("sort"),
	}
	for _, key := range filters {
		if v := c.Query(key); v != "" {
			if q.Filters == nil {
				q.Filters = make(map[string]string)
			}
			q.Filters[key] = v
		}
	}
	return q.Normalize()
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
