// Package response contains the response bodies the handlers serialize to JSON.
package response

import "DashboardWebService/models"

// Message is the generic JSON body used for confirmations and structured errors.
type Message struct {
	Message string `json:"message"`
}

// Login is the body returned by a successful login, carrying the issued token.
type Login struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// UserResult is the body returned by create and update operations, echoing
// the affected record.
type UserResult struct {
	Message string            `json:"message"`
	User    models.PublicUser `json:"user"`
}
