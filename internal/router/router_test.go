// internal/router/router_test.go
package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/livrestore/storefront/internal/config"
	"github.com/livrestore/storefront/internal/i18n"
	"github.com/livrestore/storefront/internal/middleware"
	"github.com/livrestore/storefront/internal/state"
)

type StorefrontTestSuite struct {
	suite.Suite
	router *gin.Engine
	store  *state.Store
}

func (suite *StorefrontTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(i18n.Initialize())

	cfg := &config.Config{
		Environment: "test",
		JWT: config.JWTConfig{
			SecretKey:       "test-secret",
			AccessTokenTTL:  1,
			RefreshTokenTTL: 24,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"http://localhost:5173"},
		},
	}

	suite.store = state.NewStore(time.Hour, time.Hour)
	suite.router = Initialize(suite.store, cfg)
}

// do issues a request, reusing sessionID when non-empty, and returns the
// recorder plus the decoded envelope.
func (suite *StorefrontTestSuite) do(method, path, sessionID string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set(middleware.SessionHeader, sessionID)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	var response map[string]interface{}
	if len(w.Body.Bytes()) > 0 {
		suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	}
	return w, response
}

func data(response map[string]interface{}) map[string]interface{} {
	d, _ := response["data"].(map[string]interface{})
	return d
}

func (suite *StorefrontTestSuite) TestSessionIssuedAndSticky() {
	w, response := suite.do("GET", "/v1/session", "", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.True(suite.T(), response["success"].(bool))

	sid := w.Header().Get(middleware.SessionHeader)
	assert.NotEmpty(suite.T(), sid)
	assert.Equal(suite.T(), "home", data(response)["current_view"])

	// Replays of the same id resolve to the same session.
	w2, _ := suite.do("GET", "/v1/session", sid, nil)
	assert.Equal(suite.T(), sid, w2.Header().Get(middleware.SessionHeader))
}

func (suite *StorefrontTestSuite) TestNavigationGate() {
	w, response := suite.do("POST", "/v1/session/navigate", "", map[string]string{"view": "sell"})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "register", data(response)["current_view"])

	w2, response2 := suite.do("POST", "/v1/session/navigate", "", map[string]string{"view": "nonsense"})
	assert.Equal(suite.T(), http.StatusBadRequest, w2.Code)
	assert.False(suite.T(), response2["success"].(bool))
}

func (suite *StorefrontTestSuite) TestPurchaseFlow() {
	w, _ := suite.do("POST", "/v1/auth/login", "", map[string]string{
		"email":    "cliente@example.com",
		"password": "qualquer",
	})
	suite.Require().Equal(http.StatusOK, w.Code)
	sid := w.Header().Get(middleware.SessionHeader)

	w, response := suite.do("POST", "/v1/cart", sid, map[string]string{"product_id": "p-1006"})
	suite.Require().Equal(http.StatusOK, w.Code)
	assert.Equal(suite.T(), "cart", data(response)["current_view"])

	w, response = suite.do("POST", "/v1/cart", sid, map[string]string{"product_id": "p-1006"})
	suite.Require().Equal(http.StatusOK, w.Code)
	items := data(response)["items"].([]interface{})
	suite.Require().Len(items, 1)
	assert.EqualValues(suite.T(), 2, items[0].(map[string]interface{})["quantity"])

	w, response = suite.do("POST", "/v1/checkout", sid, map[string]string{"payment_method": "pix"})
	suite.Require().Equal(http.StatusCreated, w.Code)
	order := data(response)["order"].(map[string]interface{})
	assert.Equal(suite.T(), "preparing", order["status"])
	assert.Equal(suite.T(), "orders", data(response)["current_view"])

	w, response = suite.do("GET", "/v1/orders", sid, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	assert.Len(suite.T(), data(response)["orders"].([]interface{}), 1)
}

func (suite *StorefrontTestSuite) TestCheckoutWithEmptyCart() {
	w, _ := suite.do("POST", "/v1/auth/login", "", map[string]string{
		"email":    "vazio@example.com",
		"password": "qualquer",
	})
	suite.Require().Equal(http.StatusOK, w.Code)
	sid := w.Header().Get(middleware.SessionHeader)

	w, response := suite.do("POST", "/v1/checkout", sid, map[string]string{"payment_method": "card"})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.False(suite.T(), response["success"].(bool))
}

func (suite *StorefrontTestSuite) TestAddUnknownProductToCart() {
	w, _ := suite.do("POST", "/v1/cart", "", map[string]string{"product_id": "missing"})
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *StorefrontTestSuite) TestSellerChatOnOpenProduct() {
	w, _ := suite.do("GET", "/v1/catalog/products/p-1001", "", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	sid := w.Header().Get(middleware.SessionHeader)

	w, response := suite.do("POST", "/v1/products/p-1001/chat", sid, map[string]string{
		"message": "Tem na cor preta?",
	})
	suite.Require().Equal(http.StatusOK, w.Code)

	turns := data(response)["turns"].([]interface{})
	suite.Require().Len(turns, 2)
	assert.Equal(suite.T(), "user", turns[0].(map[string]interface{})["role"])
	assert.Equal(suite.T(), "model", turns[1].(map[string]interface{})["role"])
}

func (suite *StorefrontTestSuite) TestPublishListing() {
	w, _ := suite.do("POST", "/v1/auth/login", "", map[string]string{
		"email":    "vendedor@example.com",
		"password": "qualquer",
	})
	suite.Require().Equal(http.StatusOK, w.Code)
	sid := w.Header().Get(middleware.SessionHeader)

	w, response := suite.do("POST", "/v1/listings", sid, map[string]string{
		"title": "Violão Acústico",
		"price": "450.00",
	})
	suite.Require().Equal(http.StatusCreated, w.Code)
	assert.Equal(suite.T(), "dashboard-seller", data(response)["current_view"])

	product := data(response)["product"].(map[string]interface{})
	assert.Equal(suite.T(), "Violão Acústico", product["title"])
}

func TestStorefrontSuite(t *testing.T) {
	suite.Run(t, new(StorefrontTestSuite))
}
