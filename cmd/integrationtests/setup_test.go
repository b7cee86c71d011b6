package integrationtests

import (
	bidding "auction-tracker/internal/biddingService"
	"auction-tracker/internal/catalog"
	"auction-tracker/internal/ledger"
	model "auction-tracker/internal/models"
	"auction-tracker/internal/server"
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// SeedItems mirrors the production seed catalog.
func SeedItems() []model.Item {
	return []model.Item{
		{ID: 1, Description: "Awesome item 1", Category: "Books"},
		{ID: 2, Description: "Extraordinary item 2", Category: "Electronics"},
		{ID: 3, Description: "Fabulous item 3", Category: "Jewelry"},
		{ID: 4, Description: "Magnificent item 4", Category: "Travel"},
		{ID: 5, Description: "Quite remarkable item 5", Category: "Toys"},
	}
}

// SetupTestRouter initializes the router with the seed catalog and a fresh
// in-memory ledger for integration testing.
func SetupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cat := catalog.New(SeedItems())
	led := ledger.NewMemoryLedger()
	service := bidding.NewBiddingService(cat, led)
	return server.SetupRouter(service)
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the JSON response body.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// PlaceBidBody builds a POST /v1/items/:id/bids payload.
func PlaceBidBody(itemID int64, userID, amount string) map[string]any {
	return map[string]any{
		"item_id": itemID,
		"user_id": userID,
		"amount":  amount,
	}
}
