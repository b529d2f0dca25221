package models

import "time"

// Stats holds the real-time dashboard statistics.
// TotalUsers reflects the store; session and sales figures are randomized
// placeholders until the real integrations land.
type Stats struct {
	TotalUsers     int `json:"totalUsers"`
	ActiveSessions int `json:"activeSessions"`
	Sales          int `json:"sales"`
}

// Report is the automated report returned by the reports endpoint.
type Report struct {
	ReportDate time.Time  `json:"reportDate"`
	Summary    string     `json:"summary"`
	Data       ReportData `json:"data"`
}

// ReportData carries the figures summarized by a Report.
type ReportData struct {
	Users         int `json:"users"`
	Sales         int `json:"sales"`
	Notifications int `json:"notifications"`
}

// Event represents a calendar event.
type Event struct {
	Id    int    `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`
}

// ChatMessage represents a single message in the live-support chat feed.
type ChatMessage struct {
	Id      int    `json:"id"`
	Sender  string `json:"sender"`
	Message string `json:"message"`
}

// Payment represents a payment record from the payment gateway feed.
type Payment struct {
	Id     int    `json:"id"`
	User   string `json:"user"`
	Amount int    `json:"amount"`
	Status string `json:"status"`
}

// Post represents a social media post in the aggregated feed.
type Post struct {
	Id       int    `json:"id"`
	Platform string `json:"platform"`
	Content  string `json:"content"`
	Date     string `json:"date"`
}

// Weather is the current-conditions payload of the weather endpoint.
type Weather struct {
	Location    string `json:"location"`
	Temperature string `json:"temperature"`
	Condition   string `json:"condition"`
}
