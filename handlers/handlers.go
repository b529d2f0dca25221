// Package handlers provides the HTTP request handlers for DashboardWebService.
//
// This package contains the handlers for the login endpoint, the user CRUD
// operations, the CSV export, and the dashboard feed endpoints, together with
// the authentication and authorization gates that protect them. The handlers
// operate on the in-memory credential store and use JWT bearer tokens for
// authentication and role membership for authorization.
package handlers

import (
	"encoding/json"
	"net/http"

	"DashboardWebService/store"
	"DashboardWebService/validation"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

var (
	log      = logrus.New()
	validate = validator.New()
)

func init() {
	validate.RegisterValidation("notblank", validation.NotBlank)
	log.SetLevel(logrus.InfoLevel)
	log.SetFormatter(&logrus.JSONFormatter{})
}

// Handler carries the dependencies shared by all request handlers.
type Handler struct {
	Store  *store.UserStore
	secret []byte
}

// New creates a Handler operating on the given store, signing and verifying
// tokens with secret.
func New(st *store.UserStore, secret []byte) *Handler {
	return &Handler{Store: st, secret: secret}
}

// Routes returns the service mux with every endpoint registered behind its
// gate chain. The authentication gate always runs before the authorization
// gate; unauthenticated endpoints carry neither.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /login", h.LoginHandler)

	mux.HandleFunc("GET /users", h.Authenticate(h.RequireRole(h.GetUsersHandler, "admin")))
	mux.HandleFunc("POST /users", h.Authenticate(h.RequireRole(h.CreateUserHandler, "admin")))
	mux.HandleFunc("PUT /users/{id}", h.Authenticate(h.RequireRole(h.UpdateUserHandler, "admin")))
	mux.HandleFunc("DELETE /users/{id}", h.Authenticate(h.RequireRole(h.DeleteUserHandler, "admin")))
	mux.HandleFunc("GET /users/export", h.Authenticate(h.RequireRole(h.ExportUsersHandler, "admin")))

	mux.HandleFunc("GET /stats", h.Authenticate(h.StatsHandler))
	mux.HandleFunc("GET /reports", h.Authenticate(h.RequireRole(h.ReportsHandler, "admin")))
	mux.HandleFunc("GET /calendar", h.Authenticate(h.CalendarHandler))
	mux.HandleFunc("GET /chat", h.Authenticate(h.ChatHandler))
	mux.HandleFunc("GET /payments", h.Authenticate(h.RequireRole(h.PaymentsHandler, "admin")))

	mux.HandleFunc("GET /weather", h.WeatherHandler)
	mux.HandleFunc("GET /social", h.SocialHandler)
	mux.HandleFunc("GET /public/users", h.PublicUsersHandler)

	return mux
}

// writeJSON serializes body to the response with the given status code.
func writeJSON(res http.ResponseWriter, status int, body any) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(status)
	json.NewEncoder(res).Encode(body)
}
