package httpapi

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketbank-dev/pocketbank/internal/bank"
	"github.com/pocketbank-dev/pocketbank/internal/fixtures"
)

func newTestServer(t *testing.T) (*httptest.Server, *bank.State) {
	t.Helper()
	now := time.Date(2026, 2, 9, 14, 7, 0, 0, time.UTC)
	state := bank.New(fixtures.Default(), bank.Options{Now: func() time.Time { return now }})
	srv := httptest.NewServer(New(state, nil).Router())
	t.Cleanup(srv.Close)
	return srv, state
}

func getJSON(t *testing.T, srv *httptest.Server, path string, v any) {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func postJSON(t *testing.T, srv *httptest.Server, path, body string, v any) int {
	t.Helper()
	resp, err := http.Post(srv.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	if v != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	}
	return resp.StatusCode
}

func TestGetAccounts(t *testing.T) {
	srv, _ := newTestServer(t)

	var got struct {
		Accounts []struct {
			ID      string `json:"id"`
			Type    string `json:"type"`
			Balance string `json:"balance"`
		} `json:"accounts"`
		LiquidBalance string `json:"liquidBalance"`
	}
	getJSON(t, srv, "/api/accounts", &got)

	require.Len(t, got.Accounts, 4)
	assert.Equal(t, "acct-checking", got.Accounts[0].ID)
	assert.Equal(t, "8452.18", got.Accounts[0].Balance)
	assert.Equal(t, "-1294.33", got.Accounts[3].Balance)
	assert.Equal(t, "42433.13", got.LiquidBalance)
}

func TestGetPayeesAndCard(t *testing.T) {
	srv, _ := newTestServer(t)

	var payees struct {
		Payees []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"payees"`
	}
	getJSON(t, srv, "/api/payees", &payees)
	require.Len(t, payees.Payees, 3)
	assert.Equal(t, "Jordan Lee", payees.Payees[0].Name)

	var card struct {
		Card struct {
			Last4 string `json:"last4"`
		} `json:"card"`
		Frozen bool `json:"frozen"`
	}
	getJSON(t, srv, "/api/card", &card)
	assert.Equal(t, "4829", card.Card.Last4)
	assert.False(t, card.Frozen)
}

func TestPostTransfer(t *testing.T) {
	srv, state := newTestServer(t)

	var receipt struct {
		Reference string `json:"reference"`
		Amount    string `json:"amount"`
		Source    struct {
			Balance  string `json:"balance"`
			Subtitle string `json:"subtitle"`
		} `json:"source"`
		Event struct {
			ID     string `json:"id"`
			Title  string `json:"title"`
			Detail string `json:"detail"`
			Tone   string `json:"tone"`
		} `json:"event"`
	}
	status := postJSON(t, srv, "/api/transfers",
		`{"sourceId":"acct-checking","payeeId":"payee-1","amount":"120.00"}`, &receipt)

	require.Equal(t, http.StatusCreated, status)
	assert.Len(t, receipt.Reference, 36)
	assert.Equal(t, "120", receipt.Amount)
	assert.Equal(t, "8332.18", receipt.Source.Balance)
	assert.Equal(t, "Available $8,171.04", receipt.Source.Subtitle)
	assert.Equal(t, "evt-4", receipt.Event.ID)
	assert.Equal(t, "Transfer scheduled", receipt.Event.Title)
	assert.Equal(t, "$120.00 to Jordan Lee • Checking ••2198", receipt.Event.Detail)
	assert.Equal(t, "positive", receipt.Event.Tone)

	var activity struct {
		Events []struct {
			ID string `json:"id"`
		} `json:"events"`
	}
	getJSON(t, srv, "/api/activity", &activity)
	require.Len(t, activity.Events, 4)
	assert.Equal(t, "evt-4", activity.Events[0].ID)
	assert.Len(t, state.Activity(), 4)
}

func TestPostTransfer_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		reason string
	}{
		{"zero amount", `{"sourceId":"acct-checking","payeeId":"payee-1","amount":"0"}`, "invalid_amount"},
		{"garbage amount", `{"sourceId":"acct-checking","payeeId":"payee-1","amount":"12abc"}`, "invalid_amount"},
		{"over balance", `{"sourceId":"acct-checking","payeeId":"payee-1","amount":"8452.19"}`, "insufficient_funds"},
		{"credit source", `{"sourceId":"acct-credit","payeeId":"payee-1","amount":"10"}`, "ineligible_source"},
		{"unknown source", `{"sourceId":"acct-nope","payeeId":"payee-1","amount":"10"}`, "ineligible_source"},
		{"unknown payee", `{"sourceId":"acct-checking","payeeId":"payee-9","amount":"10"}`, "unknown_payee"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, state := newTestServer(t)
			before := state.Accounts()

			var got errorResponse
			status := postJSON(t, srv, "/api/transfers", tt.body, &got)

			assert.Equal(t, http.StatusUnprocessableEntity, status)
			assert.Equal(t, tt.reason, got.Reason)
			assert.Equal(t, before, state.Accounts())
			assert.Len(t, state.Activity(), 3)
		})
	}
}

func TestPostTransfer_MalformedBody(t *testing.T) {
	srv, _ := newTestServer(t)
	var got errorResponse
	status := postJSON(t, srv, "/api/transfers", `{"amount":`, &got)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.NotEmpty(t, got.Error)
}

func TestPostBodiesAreSizeLimited(t *testing.T) {
	padding := strings.Repeat(" ", maxBodyBytes)
	tests := []struct {
		path string
		body string
	}{
		{"/api/transfers", `{"sourceId":"acct-checking","payeeId":"payee-1",` + padding + `"amount":"1"}`},
		{"/api/card/freeze", `{` + padding + `"desired":true}`},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			srv, state := newTestServer(t)

			var got errorResponse
			status := postJSON(t, srv, tt.path, tt.body, &got)

			assert.Equal(t, http.StatusRequestEntityTooLarge, status)
			assert.Equal(t, "request body too large", got.Error)
			assert.Len(t, state.Activity(), 3)
			assert.False(t, state.CardFrozen())
		})
	}
}

func TestPostTransfer_ExponentAmountRejected(t *testing.T) {
	srv, state := newTestServer(t)

	var got errorResponse
	status := postJSON(t, srv, "/api/transfers",
		`{"sourceId":"acct-checking","payeeId":"payee-1","amount":"1e900000000"}`, &got)

	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "invalid_amount", got.Reason)
	assert.Len(t, state.Activity(), 3)
}

func TestPostCardFreeze(t *testing.T) {
	srv, state := newTestServer(t)

	var got freezeResponse
	status := postJSON(t, srv, "/api/card/freeze", `{"desired":true}`, &got)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, got.Frozen)
	require.NotNil(t, got.Event)
	assert.Equal(t, "Card frozen", got.Event.Title)
	assert.True(t, state.CardFrozen())

	// Same desired state again: nothing recorded.
	got = freezeResponse{}
	status = postJSON(t, srv, "/api/card/freeze", `{"desired":true}`, &got)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, got.Frozen)
	assert.Nil(t, got.Event)
	assert.Len(t, state.Activity(), 4)

	got = freezeResponse{}
	postJSON(t, srv, "/api/card/freeze", `{"desired":false}`, &got)
	assert.False(t, got.Frozen)
	require.NotNil(t, got.Event)
	assert.Equal(t, "Card unfrozen", got.Event.Title)
}

func TestPostCardFreeze_RequiresDesired(t *testing.T) {
	srv, state := newTestServer(t)
	status := postJSON(t, srv, "/api/card/freeze", `{}`, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, state.CardFrozen())
}

func TestPostCardFreeze_ConcurrentSameTarget(t *testing.T) {
	srv, state := newTestServer(t)

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := http.Post(srv.URL+"/api/card/freeze", "application/json", strings.NewReader(`{"desired":true}`))
			if err == nil {
				resp.Body.Close()
			}
		}()
	}
	wg.Wait()

	assert.True(t, state.CardFrozen())
	assert.Len(t, state.Activity(), 4, "exactly one toggle recorded")
}

func TestGetSummary(t *testing.T) {
	srv, _ := newTestServer(t)
	postJSON(t, srv, "/api/transfers", `{"sourceId":"acct-savings","payeeId":"payee-2","amount":"400.55"}`, nil)

	var got struct {
		LiquidBalance string `json:"liquidBalance"`
		AccountCount  int    `json:"accountCount"`
		SavingsGoal   int    `json:"savingsGoal"`
		LatestEvent   struct {
			Detail string `json:"detail"`
		} `json:"latestEvent"`
	}
	getJSON(t, srv, "/api/summary", &got)
	assert.Equal(t, "42032.58", got.LiquidBalance)
	assert.Equal(t, 4, got.AccountCount)
	assert.Equal(t, 78, got.SavingsGoal)
	assert.Equal(t, "$400.55 to Taylor Brooks • Savings ••0032", got.LatestEvent.Detail)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	state := bank.New(fixtures.Default(), bank.Options{})
	router := New(state, logger).Router()

	req := httptest.NewRequest(http.MethodGet, "/api/payees", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "http request", entry["msg"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/api/payees", entry["path"])
	assert.EqualValues(t, 200, entry["status"])
	assert.NotEmpty(t, entry["request_id"])
}

func TestUnknownRoute(t *testing.T) {
	srv, _ := newTestServer(t)
	resp, err := http.Get(srv.URL + "/api/nope")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
