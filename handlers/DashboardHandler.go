package handlers

import (
	"net/http"
	"time"

	"DashboardWebService/models"
)

// The dashboard feed endpoints below return fixed placeholder payloads until
// the real integrations are wired up. They add no contract beyond the auth
// and role requirements registered in Routes.

// WeatherHandler returns the current weather conditions. Public.
func (h *Handler) WeatherHandler(res http.ResponseWriter, req *http.Request) {
	writeJSON(res, http.StatusOK, models.Weather{
		Location:    "Jakarta",
		Temperature: "32°C",
		Condition:   "Sunny",
	})
}

// ReportsHandler returns the automated summary report. Admin only.
func (h *Handler) ReportsHandler(res http.ResponseWriter, req *http.Request) {
	writeJSON(res, http.StatusOK, models.Report{
		ReportDate: time.Now(),
		Summary:    "This is a placeholder report.",
		Data: models.ReportData{
			Users:         h.Store.Count(),
			Sales:         500,
			Notifications: 5,
		},
	})
}

// CalendarHandler returns the scheduled events. Any authenticated role.
func (h *Handler) CalendarHandler(res http.ResponseWriter, req *http.Request) {
	writeJSON(res, http.StatusOK, []models.Event{
		{Id: 1, Title: "Meeting", Date: "2025-04-01"},
		{Id: 2, Title: "Maintenance", Date: "2025-04-05"},
	})
}

// ChatHandler returns the live-support chat feed. Any authenticated role.
func (h *Handler) ChatHandler(res http.ResponseWriter, req *http.Request) {
	writeJSON(res, http.StatusOK, []models.ChatMessage{
		{Id: 1, Sender: "Support", Message: "Hello, how can we help?"},
		{Id: 2, Sender: "User", Message: "I need help with my account."},
	})
}

// PaymentsHandler returns the payment gateway feed. Admin only.
func (h *Handler) PaymentsHandler(res http.ResponseWriter, req *http.Request) {
	writeJSON(res, http.StatusOK, []models.Payment{
		{Id: 1, User: "User", Amount: 100, Status: "Completed"},
		{Id: 2, User: "Alice", Amount: 250, Status: "Pending"},
	})
}

// SocialHandler returns the aggregated social media feed. Public.
func (h *Handler) SocialHandler(res http.ResponseWriter, req *http.Request) {
	writeJSON(res, http.StatusOK, []models.Post{
		{Id: 1, Platform: "Twitter", Content: "This is a sample tweet", Date: "2025-03-14"},
		{Id: 2, Platform: "Instagram", Content: "A new post has been uploaded", Date: "2025-03-15"},
	})
}

// PublicUsersHandler returns the reduced user list (name and role only) for
// the public dashboard view. Public.
func (h *Handler) PublicUsersHandler(res http.ResponseWriter, req *http.Request) {
	writeJSON(res, http.StatusOK, h.Store.Profiles())
}
