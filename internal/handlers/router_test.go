//nolint:errcheck // unchecked errors are acceptable in test files
package handlers

import (
	"bytes"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/benx421/simple-banking/internal/api"
	"github.com/benx421/simple-banking/internal/card"
	"github.com/benx421/simple-banking/internal/config"
	"github.com/benx421/simple-banking/internal/db"
	"github.com/benx421/simple-banking/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testServer wraps an HTTP test server over a fresh SQLite ledger.
type testServer struct {
	server *httptest.Server
}

func setupServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{
		Card: config.CardConfig{IIN: card.DefaultIIN, MaxRetries: 5},
	}

	generator, err := card.NewGenerator(cfg.Card.IIN, rand.New(rand.NewPCG(17, 19)))
	require.NoError(t, err)

	router, err := NewRouter(
		db.NewTestDB(t),
		generator,
		repository.NewIdempotencyRepository(time.Hour),
		cfg,
		testLogger(),
	)
	require.NoError(t, err)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testServer{server: server}
}

func (ts *testServer) request(t *testing.T, method, path string, body any, user, pin, idempotencyKey string) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.server.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if user != "" {
		req.SetBasicAuth(user, pin)
	}
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func (ts *testServer) createCard(t *testing.T) api.CreateCardResponse {
	t.Helper()

	resp := ts.request(t, http.MethodPost, "/api/v1/cards", nil, "", "", "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created api.CreateCardResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	return created
}

func (ts *testServer) balance(t *testing.T, c api.CreateCardResponse) int64 {
	t.Helper()

	resp := ts.request(t, http.MethodGet, "/api/v1/cards/"+c.CardNumber+"/balance", nil, c.CardNumber, c.PIN, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body api.BalanceResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Balance
}

func (ts *testServer) transfer(t *testing.T, from, to api.CreateCardResponse, amount int64) *http.Response {
	t.Helper()

	return ts.request(t, http.MethodPost, "/api/v1/cards/"+from.CardNumber+"/transfers",
		api.TransferRequest{TargetCardNumber: to.CardNumber, Amount: amount},
		from.CardNumber, from.PIN, "")
}

func TestRouter_CardLifecycle(t *testing.T) {
	ts := setupServer(t)

	a := ts.createCard(t)
	b := ts.createCard(t)
	assert.True(t, card.IsValid(a.CardNumber))
	assert.NotEqual(t, a.CardNumber, b.CardNumber)
	assert.Equal(t, int64(0), ts.balance(t, a))
	assert.Equal(t, int64(0), ts.balance(t, b))

	resp := ts.request(t, http.MethodPost, "/api/v1/cards/"+a.CardNumber+"/income",
		api.IncomeRequest{Amount: 10000}, a.CardNumber, a.PIN, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = ts.transfer(t, a, b, 15000)
	require.Equal(t, http.StatusPaymentRequired, resp.StatusCode)
	var failure api.Error
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&failure))
	assert.Equal(t, api.ErrorCodeInsufficientFunds, failure.Error)
	assert.Equal(t, int64(10000), ts.balance(t, a))
	assert.Equal(t, int64(0), ts.balance(t, b))

	resp = ts.transfer(t, a, b, 5000)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var done api.TransferResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&done))
	assert.Equal(t, int64(5000), done.Balance)
	assert.Equal(t, int64(5000), ts.balance(t, a))
	assert.Equal(t, int64(5000), ts.balance(t, b))

	resp = ts.request(t, http.MethodDelete, "/api/v1/cards/"+b.CardNumber, nil, b.CardNumber, b.PIN, "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = ts.request(t, http.MethodGet, "/api/v1/cards/"+b.CardNumber+"/balance", nil, b.CardNumber, b.PIN, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "closed card must no longer authenticate")

	resp = ts.transfer(t, a, b, 100)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, int64(5000), ts.balance(t, a))
}

func TestRouter_WrongPIN(t *testing.T) {
	ts := setupServer(t)
	a := ts.createCard(t)

	wrong := "0000"
	if a.PIN == wrong {
		wrong = "1111"
	}

	resp := ts.request(t, http.MethodGet, "/api/v1/cards/"+a.CardNumber+"/balance", nil, a.CardNumber, wrong, "")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	var body api.Error
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, api.ErrorCodeInvalidCredentials, body.Error)
}

func TestRouter_TransferTargetChecks(t *testing.T) {
	ts := setupServer(t)
	a := ts.createCard(t)

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantCode   api.ErrorCode
	}{
		{name: "same account", target: a.CardNumber, wantStatus: http.StatusBadRequest, wantCode: api.ErrorCodeSameAccount},
		{name: "bad checksum", target: "4000001234567890", wantStatus: http.StatusBadRequest, wantCode: api.ErrorCodeInvalidTargetCard},
		{name: "unknown card", target: "4000000000000002", wantStatus: http.StatusNotFound, wantCode: api.ErrorCodeTargetNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ts.transfer(t, a, api.CreateCardResponse{CardNumber: tt.target}, 1)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			var body api.Error
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.wantCode, body.Error)
		})
	}
}

func TestRouter_IdempotentIncome(t *testing.T) {
	ts := setupServer(t)
	a := ts.createCard(t)

	for i := 0; i < 3; i++ {
		resp := ts.request(t, http.MethodPost, "/api/v1/cards/"+a.CardNumber+"/income",
			api.IncomeRequest{Amount: 700}, a.CardNumber, a.PIN, "payday-1")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		if i > 0 {
			assert.Equal(t, "true", resp.Header.Get("X-Idempotent-Replayed"))
		}
	}

	assert.Equal(t, int64(700), ts.balance(t, a), "replayed income must not be deposited again")
}

func TestRouter_IssuanceWithSharedKeyIssuesDistinctCards(t *testing.T) {
	ts := setupServer(t)

	issue := func() (api.CreateCardResponse, *http.Response) {
		resp := ts.request(t, http.MethodPost, "/api/v1/cards", nil, "", "", "1")
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var created api.CreateCardResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
		return created, resp
	}

	first, _ := issue()
	second, resp := issue()

	assert.Empty(t, resp.Header.Get("X-Idempotent-Replayed"))
	assert.NotEqual(t, first.CardNumber, second.CardNumber)
	assert.Equal(t, int64(0), ts.balance(t, first))
	assert.Equal(t, int64(0), ts.balance(t, second))
}

func TestRouter_IncomeOverflowRejected(t *testing.T) {
	ts := setupServer(t)
	a := ts.createCard(t)

	const large = 9_000_000_000_000_000_000

	resp := ts.request(t, http.MethodPost, "/api/v1/cards/"+a.CardNumber+"/income",
		api.IncomeRequest{Amount: large}, a.CardNumber, a.PIN, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = ts.request(t, http.MethodPost, "/api/v1/cards/"+a.CardNumber+"/income",
		api.IncomeRequest{Amount: large}, a.CardNumber, a.PIN, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body api.Error
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, api.ErrorCodeInvalidAmount, body.Error)

	assert.Equal(t, int64(large), ts.balance(t, a), "account must stay readable")
}

func TestRouter_ValidationErrors(t *testing.T) {
	ts := setupServer(t)
	a := ts.createCard(t)

	resp := ts.request(t, http.MethodPost, "/api/v1/cards/"+a.CardNumber+"/income",
		api.IncomeRequest{Amount: 0}, a.CardNumber, a.PIN, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body api.Error
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, api.ErrorCodeInvalidRequest, body.Error)

	resp = ts.request(t, http.MethodGet, "/api/v1/cards/not-a-card/balance", nil, a.CardNumber, a.PIN, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouter_ConcurrentTransfers(t *testing.T) {
	ts := setupServer(t)
	a := ts.createCard(t)
	b := ts.createCard(t)

	resp := ts.request(t, http.MethodPost, "/api/v1/cards/"+a.CardNumber+"/income",
		api.IncomeRequest{Amount: 5000}, a.CardNumber, a.PIN, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	const workers = 10
	var wg sync.WaitGroup
	statuses := make(chan int, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			data, _ := json.Marshal(api.TransferRequest{TargetCardNumber: b.CardNumber, Amount: 1000})
			req, _ := http.NewRequest(http.MethodPost, ts.server.URL+"/api/v1/cards/"+a.CardNumber+"/transfers", bytes.NewReader(data))
			req.Header.Set("Content-Type", "application/json")
			req.SetBasicAuth(a.CardNumber, a.PIN)
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				statuses <- 0
				return
			}
			resp.Body.Close()
			statuses <- resp.StatusCode
		}()
	}
	wg.Wait()
	close(statuses)

	counts := make(map[int]int)
	for status := range statuses {
		counts[status]++
	}

	assert.Equal(t, 5, counts[http.StatusOK])
	assert.Equal(t, 5, counts[http.StatusPaymentRequired])
	assert.Equal(t, int64(0), ts.balance(t, a))
	assert.Equal(t, int64(5000), ts.balance(t, b))
}

func TestRouter_AmbientRoutes(t *testing.T) {
	ts := setupServer(t)

	resp := ts.request(t, http.MethodGet, "/health", nil, "", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, resp.Header.Get("X-Request-ID"), 36)

	resp = ts.request(t, http.MethodGet, "/docs/openapi", nil, "", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
}
