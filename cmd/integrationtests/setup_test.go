package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	account "carmarket-bff/internal/accountService"
	auction "carmarket-bff/internal/auctionService"
	catalog "carmarket-bff/internal/catalogService"
	"carmarket-bff/internal/forms"
	"carmarket-bff/internal/marketapi"
	"carmarket-bff/internal/models"
	"carmarket-bff/internal/server"
	"carmarket-bff/internal/session"
	"carmarket-bff/internal/uploads"
	handler "carmarket-bff/services/market/handler"
	"carmarket-bff/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const cookieName = "carmarket_session"

// fakeMarketplace is an in-memory stand-in for the marketplace REST API
type fakeMarketplace struct {
	mu       sync.Mutex
	users    map[string]models.User // key: email
	products map[string]models.Product
	bids     map[string][]models.Bid
	bidPosts int
	nextID   int
}

func newFakeMarketplace() *fakeMarketplace {
	return &fakeMarketplace{
		users:    make(map[string]models.User),
		products: make(map[string]models.Product),
		bids:     make(map[string][]models.Bid),
	}
}

func (f *fakeMarketplace) addUser(email string, u models.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[email] = u
}

func (f *fakeMarketplace) addProduct(p models.Product, bids ...models.Bid) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.products[p.ProductID] = p
	f.bids[p.ProductID] = bids
}

func (f *fakeMarketplace) bidRequests() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bidPosts
}

func signToken(t *testing.T, userID string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  userID,
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("upstream-secret"))
	require.NoError(t, err)
	return token
}

// userFromAuth maps "Bearer <jwt>" back to the user id
func userFromAuth(c *gin.Context) string {
	const prefix = "Bearer "
	h := c.GetHeader("Authorization")
	if len(h) <= len(prefix) {
		return ""
	}
	id, err := session.UserIDFromToken(h[len(prefix):], time.Now())
	if err != nil {
		return ""
	}
	return id
}

func (f *fakeMarketplace) routes(t *testing.T) *gin.Engine {
	r := gin.New()
	api := r.Group("/api/v1")

	api.POST("/auth/login", func(c *gin.Context) {
		var form forms.LoginForm
		_ = c.ShouldBindJSON(&form)
		f.mu.Lock()
		u, ok := f.users[form.Email]
		f.mu.Unlock()
		if !ok || form.Password != "Secret123!" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusOK, models.AuthResult{Token: signToken(t, u.UserID), User: u})
	})

	api.GET("/auth/verify", func(c *gin.Context) {
		id := userFromAuth(c)
		f.mu.Lock()
		defer f.mu.Unlock()
		for _, u := range f.users {
			if u.UserID == id {
				c.JSON(http.StatusOK, u)
				return
			}
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
	})

	api.GET("/products", func(c *gin.Context) {
		page, _ := strconv.Atoi(c.Query("page"))
		f.mu.Lock()
		items := make([]models.Product, 0, len(f.products))
		for _, p := range f.products {
			if c.Query("search") == "" || p.Name == c.Query("search") {
				items = append(items, p)
			}
		}
		f.mu.Unlock()
		c.JSON(http.StatusOK, models.Page[models.Product]{Items: items, Page: page, TotalPages: 1})
	})

	api.GET("/products/:id", func(c *gin.Context) {
		f.mu.Lock()
		p, ok := f.products[c.Param("id")]
		f.mu.Unlock()
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, p)
	})

	api.GET("/products/:id/bids", func(c *gin.Context) {
		f.mu.Lock()
		defer f.mu.Unlock()
		c.JSON(http.StatusOK, f.bids[c.Param("id")])
	})

	api.POST("/products/:id/bids", func(c *gin.Context) {
		var req struct {
			BidAmount float64 `json:"bidAmount"`
		}
		_ = c.ShouldBindJSON(&req)
		userID := userFromAuth(c)

		f.mu.Lock()
		defer f.mu.Unlock()
		f.bidPosts++
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
			return
		}
		f.nextID++
		bid := models.Bid{
			BidID:     "b" + strconv.Itoa(f.nextID),
			ProductID: c.Param("id"),
			UserID:    userID,
			Amount:    req.BidAmount,
			CreatedAt: time.Now().UTC(),
		}
		f.bids[c.Param("id")] = append([]models.Bid{bid}, f.bids[c.Param("id")]...)
		c.JSON(http.StatusCreated, bid)
	})

	return r
}

// testApp is the gateway wired to a fake upstream, exactly as main wires it
type testApp struct {
	router   *gin.Engine
	upstream *fakeMarketplace
}

func setupTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)
	utils.SilenceLogger()

	fake := newFakeMarketplace()
	srv := httptest.NewServer(fake.routes(t))
	t.Cleanup(srv.Close)

	api := marketapi.NewHTTPClient(srv.URL, srv.URL, 5*time.Second)
	validator := forms.NewValidator()
	sessions := session.NewManager(session.NewMemoryStore(), time.Hour)
	cookie := session.Cookie{Name: cookieName, TTL: time.Hour}

	accountSvc := account.NewService(api, sessions, validator)
	auctionSvc := auction.NewService(api, 10*time.Millisecond)
	catalogSvc := catalog.NewService(api, validator, uploads.NewPreviews(), uploads.DefaultMaxBytes)
	sessions.OnEnd(catalogSvc.EndSession)

	h := handler.NewMarketHandler(accountSvc, auctionSvc, catalogSvc, cookie, api)
	return &testApp{router: server.SetupRouter(h, sessions, cookie), upstream: fake}
}

// browser replays the session cookie the way a browser would
type browser struct {
	app    *testApp
	cookie string
}

func (a *testApp) newBrowser() *browser {
	return &browser{app: a}
}

// ExecuteRequestAndParse executes an HTTP request and parses the envelope. The session cookie is kept.
func (b *browser) ExecuteRequestAndParse(t *testing.T, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if b.cookie != "" {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: b.cookie})
	}
	w := httptest.NewRecorder()
	b.app.router.ServeHTTP(w, req)

	for _, ck := range w.Result().Cookies() {
		if ck.Name == cookieName {
			b.cookie = ck.Value
			if ck.MaxAge < 0 {
				b.cookie = ""
			}
		}
	}

	var resp map[string]any
	if w.Body.Len() > 0 && w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp, w
}
