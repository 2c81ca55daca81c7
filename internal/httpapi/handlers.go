package httpapi

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketbank-dev/pocketbank/internal/bank"
	"github.com/pocketbank-dev/pocketbank/internal/derived"
	"github.com/pocketbank-dev/pocketbank/internal/model"
)

type accountsResponse struct {
	Accounts      []model.Account `json:"accounts"`
	LiquidBalance decimal.Decimal `json:"liquidBalance"`
}

type activityResponse struct {
	Events []model.ActivityEvent `json:"events"`
}

type payeesResponse struct {
	Payees []model.Payee `json:"payees"`
}

type cardResponse struct {
	Card   model.CardDetails `json:"card"`
	Frozen bool              `json:"frozen"`
}

type summaryResponse struct {
	Customer      string               `json:"customer"`
	LiquidBalance decimal.Decimal      `json:"liquidBalance"`
	AccountCount  int                  `json:"accountCount"`
	MonthlySpend  decimal.Decimal      `json:"monthlySpend"`
	MonthlyBudget decimal.Decimal      `json:"monthlyBudget"`
	SpendProgress decimal.Decimal      `json:"spendProgress"`
	SavingsGoal   int                  `json:"savingsGoal"`
	CardFrozen    bool                 `json:"cardFrozen"`
	LatestEvent   *model.ActivityEvent `json:"latestEvent,omitempty"`
}

type transferRequest struct {
	SourceID string `json:"sourceId"`
	PayeeID  string `json:"payeeId"`
	Amount   string `json:"amount"`
}

type transferResponse struct {
	Reference uuid.UUID           `json:"reference"`
	Amount    decimal.Decimal     `json:"amount"`
	Source    model.Account       `json:"source"`
	Payee     model.Payee         `json:"payee"`
	Event     model.ActivityEvent `json:"event"`
}

type freezeRequest struct {
	Desired *bool `json:"desired"`
}

type freezeResponse struct {
	Frozen bool                 `json:"frozen"`
	Event  *model.ActivityEvent `json:"event,omitempty"`
}

func (a *API) GetAccounts(w http.ResponseWriter, r *http.Request) {
	accounts := a.state.Accounts()
	a.writeJSON(w, r, http.StatusOK, accountsResponse{
		Accounts:      accounts,
		LiquidBalance: derived.LiquidBalance(accounts),
	})
}

func (a *API) GetActivity(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, r, http.StatusOK, activityResponse{Events: a.state.Activity()})
}

func (a *API) GetPayees(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, r, http.StatusOK, payeesResponse{Payees: a.state.Fixtures().Payees()})
}

func (a *API) GetCard(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, r, http.StatusOK, cardResponse{
		Card:   a.state.Fixtures().Card(),
		Frozen: a.state.CardFrozen(),
	})
}

func (a *API) GetSummary(w http.ResponseWriter, r *http.Request) {
	accounts := a.state.Accounts()
	in := a.state.Fixtures().Insights()
	resp := summaryResponse{
		Customer:      a.state.Fixtures().Customer(),
		LiquidBalance: derived.LiquidBalance(accounts),
		AccountCount:  len(accounts),
		MonthlySpend:  in.MonthlySpend,
		MonthlyBudget: in.MonthlyBudget,
		SpendProgress: derived.SpendProgress(in.MonthlySpend, in.MonthlyBudget),
		SavingsGoal:   in.SavingsGoal,
		CardFrozen:    a.state.CardFrozen(),
	}
	if events := a.state.Activity(); len(events) > 0 {
		resp.LatestEvent = &events[0]
	}
	a.writeJSON(w, r, http.StatusOK, resp)
}

func (a *API) PostTransfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if err := decodeJSON(w, r, &req); err != nil {
		a.writeDecodeError(w, r, err, "malformed request body")
		return
	}

	intent := bank.TransferIntent{SourceID: req.SourceID, PayeeID: req.PayeeID, Amount: req.Amount}
	receipt, ok := a.state.Transfer(intent)
	if !ok {
		reason := a.rejection(intent)
		a.logger.Info("transfer rejected", "source", req.SourceID, "payee", req.PayeeID, "reason", string(reason))
		a.writeError(w, r, http.StatusUnprocessableEntity, "transfer rejected", string(reason))
		return
	}

	a.writeJSON(w, r, http.StatusCreated, transferResponse{
		Reference: receipt.Reference,
		Amount:    receipt.Amount,
		Source:    receipt.Source,
		Payee:     receipt.Payee,
		Event:     receipt.Event,
	})
}

// rejection explains a refused transfer from the derived check; the
// transfer action itself only reports success or failure.
func (a *API) rejection(intent bank.TransferIntent) derived.Rejection {
	if _, ok := a.state.Fixtures().Payee(intent.PayeeID); !ok {
		return derived.RejectUnknownPayee
	}
	if reason := a.state.CheckTransfer(intent).Rejection(); reason != derived.RejectNone {
		return reason
	}
	// The balance moved between the transfer and the check.
	return derived.RejectInsufficientFunds
}

func (a *API) PostCardFreeze(w http.ResponseWriter, r *http.Request) {
	var req freezeRequest
	err := decodeJSON(w, r, &req)
	if err == nil && req.Desired == nil {
		err = errors.New("missing desired")
	}
	if err != nil {
		a.writeDecodeError(w, r, err, `body must be {"desired": true|false}`)
		return
	}

	desired := *req.Desired
	flow := bank.NewFreezeFlow(a.state)
	flow.Request()
	frozen, e, ok := flow.ConfirmFrom(!desired)
	if !ok {
		// Already in the desired state.
		a.writeJSON(w, r, http.StatusOK, freezeResponse{Frozen: frozen})
		return
	}
	a.writeJSON(w, r, http.StatusOK, freezeResponse{Frozen: frozen, Event: &e})
}
