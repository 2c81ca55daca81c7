// Package httpapi serves a bank state over JSON: read-only views of
// accounts, activity, payees, the card and the dashboard summary, plus the
// transfer and card freeze actions.
package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pocketbank-dev/pocketbank/internal/bank"
)

type API struct {
	state  *bank.State
	logger *slog.Logger
}

func New(state *bank.State, logger *slog.Logger) *API {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &API{state: state, logger: logger}
}

// Router returns a chi router with the API routes and the standard
// middleware stack.
func (a *API) Router() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(a.logger))
	r.Use(middleware.Recoverer)
	a.RegisterRoutes(r)
	return r
}

func (a *API) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/accounts", a.GetAccounts)
		r.Get("/activity", a.GetActivity)
		r.Get("/payees", a.GetPayees)
		r.Get("/card", a.GetCard)
		r.Get("/summary", a.GetSummary)
		r.Post("/transfers", a.PostTransfer)
		r.Post("/card/freeze", a.PostCardFreeze)
	})
}

// maxBodyBytes caps request bodies; the largest valid body is a few
// hundred bytes.
const maxBodyBytes = 4 << 10

// errBodyTooLarge is returned by decodeJSON after it has already written 413.
var errBodyTooLarge = errors.New("request body too large")

// decodeJSON reads a size-limited JSON body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return errBodyTooLarge
		}
		return err
	}
	return nil
}

type errorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

func (a *API) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.logger.Warn("encoding response failed",
			"path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()),
			"error", err)
	}
}

func (a *API) writeError(w http.ResponseWriter, r *http.Request, status int, msg, reason string) {
	a.writeJSON(w, r, status, errorResponse{Error: msg, Reason: reason})
}

func (a *API) writeDecodeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	if errors.Is(err, errBodyTooLarge) {
		a.writeError(w, r, http.StatusRequestEntityTooLarge, errBodyTooLarge.Error(), "")
		return
	}
	a.writeError(w, r, http.StatusBadRequest, msg, "")
}
