package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auction-house/internal/accounting"
	"auction-house/internal/auction"
	auctionservice "auction-house/internal/auctionService"
	"auction-house/internal/idgen"
	"auction-house/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

// SetupTestRouter wires the full stack (accounting, registry, service,
// router) on in-memory state with a fake clock so tests control expiry.
func SetupTestRouter() (*gin.Engine, *clockwork.FakeClock) {
	gin.SetMode(gin.TestMode)

	clock := clockwork.NewFakeClockAt(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	ids := idgen.NewSequence(1000)
	accounts := accounting.NewMemoryLedger(ids, 1000)
	registry := auction.NewRegistry(ids, clock)
	service := auctionservice.NewAuctionService(registry, accounts)
	router := server.SetupRouter(service, time.Hour)
	return router, clock
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the JSON response envelope.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp, w
}

// registerUser registers a user and returns its id.
func registerUser(t *testing.T, router *gin.Engine, username string) string {
	t.Helper()
	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/users", map[string]any{
		"username": username,
		"email":    username + "@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return resp["data"].(map[string]any)["user_id"].(string)
}

// createAuction creates an auction and returns the item id.
func createAuction(t *testing.T, router *gin.Engine, sellerID string, startingPrice, reservePrice float64) string {
	t.Helper()
	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions", map[string]any{
		"seller_id":      sellerID,
		"name":           "Vintage Lamp",
		"description":    "A vintage lamp",
		"starting_price": startingPrice,
		"reserve_price":  reservePrice,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return resp["data"].(map[string]any)["item_id"].(string)
}

// placeBid submits a bid and returns the response recorder.
func placeBid(t *testing.T, router *gin.Engine, itemID, bidderID string, amount float64) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()
	return ExecuteRequestAndParse(t, router, http.MethodPost, "/auctions/"+itemID+"/bids", map[string]any{
		"bidder_id": bidderID,
		"amount":    amount,
	})
}

// getBalance reads a user's balance from the profile endpoint.
func getBalance(t *testing.T, router *gin.Engine, userID string) float64 {
	t.Helper()
	resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/users/"+userID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	return resp["data"].(map[string]any)["balance"].(float64)
}
