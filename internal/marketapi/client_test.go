package marketapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"carmarket-bff/internal/forms"
	"carmarket-bff/internal/listing"
	"carmarket-bff/internal/marketerrors"
	"carmarket-bff/internal/models"
	"carmarket-bff/internal/session"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	method string
	path   string
	query  string
	auth   string
	ctype  string
	body   []byte
}

// newUpstream starts a fake API answering every request with status and body
func newUpstream(t *testing.T, status int, body string) (*HTTPClient, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = r.URL.RawQuery
		rec.auth = r.Header.Get("Authorization")
		rec.ctype = r.Header.Get("Content-Type")
		rec.body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL, "https://static.example.com/", 2*time.Second), rec
}

func TestHTTPClient_CreateBid(t *testing.T) {
	client, rec := newUpstream(t, http.StatusCreated, `{"id":"b1","userId":"U2","bidAmount":150}`)
	sess := &session.Session{Token: "tok-123", UserID: "U2"}

	bid, err := client.CreateBid(context.Background(), sess, "p1", 150)
	require.NoError(t, err)
	require.Equal(t, "b1", bid.BidID)
	require.Equal(t, 150.0, bid.Amount)

	require.Equal(t, http.MethodPost, rec.method)
	require.Equal(t, "/api/v1/products/p1/bids", rec.path)
	require.Equal(t, "Bearer tok-123", rec.auth)
	require.Equal(t, "application/json", rec.ctype)
	require.JSONEq(t, `{"bidAmount":150}`, string(rec.body))
}

func TestHTTPClient_Errors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantStatus  int
		wantMessage string
		wantIs      []error
	}{
		{
			name:        "server_message_verbatim",
			status:      http.StatusBadRequest,
			body:        `{"message":"Bid must exceed 100"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Bid must exceed 100",
			wantIs:      []error{marketerrors.ErrUpstream},
		},
		{
			name:        "error_field_fallback",
			status:      http.StatusConflict,
			body:        `{"error":"already sold"}`,
			wantStatus:  http.StatusConflict,
			wantMessage: "already sold",
			wantIs:      []error{marketerrors.ErrUpstream},
		},
		{
			name:       "not_found",
			status:     http.StatusNotFound,
			body:       `{}`,
			wantStatus: http.StatusNotFound,
			wantIs:     []error{marketerrors.ErrUpstream, marketerrors.ErrNotFound},
		},
		{
			name:       "unauthorized",
			status:     http.StatusUnauthorized,
			body:       `not json`,
			wantStatus: http.StatusUnauthorized,
			wantIs:     []error{marketerrors.ErrUpstream, marketerrors.ErrUnauthenticated},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newUpstream(t, tt.status, tt.body)

			_, err := client.GetProduct(context.Background(), "p1")
			require.Error(t, err)

			var apiErr *marketerrors.APIError
			require.True(t, errors.As(err, &apiErr))
			require.Equal(t, tt.wantStatus, apiErr.Status)
			require.Equal(t, tt.wantMessage, apiErr.Message)
			require.Equal(t, "/products/p1", apiErr.Path)
			for _, target := range tt.wantIs {
				require.ErrorIs(t, err, target)
			}
		})
	}
}

func TestHTTPClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	client := NewHTTPClient(srv.URL, "", time.Second)

	_, err := client.ListBids(context.Background(), "p1")
	require.ErrorIs(t, err, marketerrors.ErrUpstream)

	var apiErr *marketerrors.APIError
	require.False(t, errors.As(err, &apiErr))
}

func TestHTTPClient_ListQuestions_Query(t *testing.T) {
	client, rec := newUpstream(t, http.StatusOK, `{"items":[{"id":"q1","title":"Brakes squeal"}],"page":2,"totalPages":5}`)

	q := listing.Query{Search: "brakes"}.WithFilter("category", "engine").WithPage(2)
	page, err := client.ListQuestions(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, 2, page.Page)
	require.Equal(t, 5, page.TotalPages)

	require.Equal(t, "/api/v1/questions", rec.path)
	require.Equal(t, "category=engine&limit=10&page=2&search=brakes", rec.query)
	require.Empty(t, rec.auth)
}

func TestHTTPClient_AnonymousSession(t *testing.T) {
	client, rec := newUpstream(t, http.StatusOK, `{"items":[],"page":1,"totalPages":0}`)

	var anon *session.Session
	_, err := client.ListProposals(context.Background(), anon, listing.Query{})
	require.NoError(t, err)
	require.Empty(t, rec.auth)
}

func TestHTTPClient_AuthorizerIsCalled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, rec := newUpstream(t, http.StatusOK, `{"id":"U1","username":"jdoe"}`)
	auth := NewMockAuthorizer(ctrl)
	auth.EXPECT().Authorize(gomock.Any()).Do(func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer mocked")
	})

	user, err := client.VerifyToken(context.Background(), auth)
	require.NoError(t, err)
	require.Equal(t, "jdoe", user.Username)
	require.Equal(t, "/api/v1/auth/verify", rec.path)
	require.Equal(t, "Bearer mocked", rec.auth)
}

func TestHTTPClient_EmptyBodies(t *testing.T) {
	client, rec := newUpstream(t, http.StatusNoContent, ``)
	sess := &session.Session{Token: "tok"}

	require.NoError(t, client.DeleteProposal(context.Background(), sess, "pr/1"))
	require.Equal(t, http.MethodDelete, rec.method)
	require.Equal(t, "/api/v1/proposals/pr/1", rec.path)

	err := client.SendContactMessage(context.Background(), forms.ContactForm{
		Name: "Jane Doe", Email: "jane@example.com", Subject: "Hello", Message: "Is the car still available?",
	})
	require.NoError(t, err)

	var sent models.ContactMessage
	require.NoError(t, json.Unmarshal(rec.body, &sent))
	require.Equal(t, "Jane Doe", sent.Name)
	require.Equal(t, "/api/v1/contact", rec.path)
}

func TestHTTPClient_GetSalePDF(t *testing.T) {
	client, rec := newUpstream(t, http.StatusOK, "%PDF-1.4 fake")

	data, err := client.GetSalePDF(context.Background(), &session.Session{Token: "t"}, "s1")
	require.NoError(t, err)
	require.Equal(t, "%PDF-1.4 fake", string(data))
	require.Equal(t, "/api/v1/sales/s1/pdf", rec.path)
}

func TestHTTPClient_UploadImage(t *testing.T) {
	var gotName, gotType string
	var gotData []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("image")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()
		gotName = header.Filename
		gotType = header.Header.Get("Content-Type")
		gotData, _ = io.ReadAll(file)
		_, _ = io.WriteString(w, `{"url":"uploads/abc.png"}`)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, "https://static.example.com", time.Second)
	path, err := client.UploadImage(context.Background(), &session.Session{Token: "t"}, Image{
		Filename:    "car.png",
		ContentType: "image/png",
		Data:        []byte("png-bytes"),
	})
	require.NoError(t, err)
	require.Equal(t, "uploads/abc.png", path)
	require.Equal(t, "car.png", gotName)
	require.Equal(t, "image/png", gotType)
	require.Equal(t, "png-bytes", string(gotData))
	require.Equal(t, "https://static.example.com/uploads/abc.png", client.AssetURL(path))
}

func TestHTTPClient_AssetURL(t *testing.T) {
	client := NewHTTPClient("http://api", "https://static.example.com/", time.Second)

	require.Equal(t, "https://static.example.com/img/a.jpg", client.AssetURL("/img/a.jpg"))
	require.Equal(t, "https://static.example.com/img/a.jpg", client.AssetURL("img/a.jpg"))
	require.Equal(t, "https://cdn.example.com/x.jpg", client.AssetURL("https://cdn.example.com/x.jpg"))
	require.Empty(t, client.AssetURL(""))
}
