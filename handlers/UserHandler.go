package handlers

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"strconv"

	"DashboardWebService/auth"
	"DashboardWebService/commands"
	"DashboardWebService/models"
	"DashboardWebService/response"
	"DashboardWebService/store"

	"github.com/sirupsen/logrus"
)

// LoginHandler handles the login request and issues a token for valid credentials.
// It reads the username and password from the request body, verifies them
// against the credential store and, on success, returns a bearer token whose
// claims carry the user's id and role.
//
// Example request body:
//
//	{
//	  "username": "admin",
//	  "password": "admin123"
//	}
//
// Example response:
//
//	{
//	  "message": "Login successful",
//	  "token": "<jwt>"
//	}
//
// Invalid credentials answer 401 with {"message": "Invalid credentials"};
// no token is issued.
func (h *Handler) LoginHandler(res http.ResponseWriter, req *http.Request) {
	var cmd commands.LoginCommand
	if err := json.NewDecoder(req.Body).Decode(&cmd); err != nil || validate.Struct(cmd) != nil {
		log.WithFields(logrus.Fields{
			"operation": "logging in user",
			"request":   "POST /login",
		}).Error("invalid request body")
		writeJSON(res, http.StatusUnauthorized, response.Message{Message: "Invalid credentials"})
		return
	}

	user, err := h.Store.VerifyCredentials(cmd.Username, cmd.Password)
	if err != nil {
		log.WithFields(logrus.Fields{
			"operation": "logging in user",
			"request":   "POST /login",
			"username":  cmd.Username,
		}).Error("invalid credentials")
		writeJSON(res, http.StatusUnauthorized, response.Message{Message: "Invalid credentials"})
		return
	}

	token, err := auth.CreateToken(h.secret, user.Id, user.Role)
	if err != nil {
		log.WithFields(logrus.Fields{
			"operation": "logging in user",
			"request":   "POST /login",
		}).Error("error creating token")
		res.WriteHeader(http.StatusInternalServerError)
		return
	}

	log.WithFields(logrus.Fields{
		"operation": "logging in user",
		"request":   "POST /login",
		"username":  cmd.Username,
	}).Info("login successful")
	writeJSON(res, http.StatusOK, response.Login{Message: "Login successful", Token: token})
}

// GetUsersHandler handles the HTTP request for listing users. Admin only.
// The optional "role" query parameter filters the list by exact role match.
// Password hashes are never included in the response.
//
// Example request:
// GET /users?role=admin
//
// Example response:
//
//	[
//	  {"id": 1, "name": "Admin", "username": "admin", "role": "admin"}
//	]
func (h *Handler) GetUsersHandler(res http.ResponseWriter, req *http.Request) {
	users := h.Store.List(req.URL.Query().Get("role"))
	log.WithFields(logrus.Fields{
		"operation": "listing users",
		"request":   "GET /users",
		"count":     len(users),
	}).Info("processing request")
	writeJSON(res, http.StatusOK, users)
}

// CreateUserHandler handles the HTTP request for creating a new user. Admin only.
// It reads name, username, password and role from the request body; all four
// must be present. A duplicate username answers 409 and leaves the store
// unchanged.
//
// Example request body:
//
//	{
//	  "name": "Charlie",
//	  "username": "charlie",
//	  "password": "secret",
//	  "role": "user"
//	}
//
// Example response:
//
//	{
//	  "message": "User added",
//	  "user": {"id": 3, "name": "Charlie", "username": "charlie", "role": "user"}
//	}
func (h *Handler) CreateUserHandler(res http.ResponseWriter, req *http.Request) {
	var cmd commands.CreateUserCommand
	if err := json.NewDecoder(req.Body).Decode(&cmd); err != nil {
		log.WithFields(logrus.Fields{
			"operation": "creating user",
			"request":   "POST /users",
		}).Error("invalid request body")
		writeJSON(res, http.StatusBadRequest, response.Message{Message: "Invalid request body"})
		return
	}
	if err := validate.Struct(cmd); err != nil {
		log.WithFields(logrus.Fields{
			"operation": "creating user",
			"request":   "POST /users",
		}).Error("invalid request body inputs")
		writeJSON(res, http.StatusBadRequest, response.Message{Message: "Invalid request body"})
		return
	}

	user, err := h.Store.Create(cmd.Name, cmd.Username, cmd.Password, cmd.Role)
	if err != nil {
		if errors.Is(err, store.ErrUsernameTaken) {
			log.WithFields(logrus.Fields{
				"operation": "creating user",
				"request":   "POST /users",
				"username":  cmd.Username,
			}).Error("username already exists")
			writeJSON(res, http.StatusConflict, response.Message{Message: "Username already exists"})
			return
		}
		log.WithFields(logrus.Fields{
			"operation": "creating user",
			"request":   "POST /users",
		}).Error(err.Error())
		res.WriteHeader(http.StatusInternalServerError)
		return
	}

	log.WithFields(logrus.Fields{
		"operation": "creating user",
		"request":   "POST /users",
		"id":        user.Id,
		"username":  user.Username,
	}).Info("user created")
	writeJSON(res, http.StatusOK, response.UserResult{Message: "User added", User: user})
}

// UpdateUserHandler handles the HTTP request for partially updating a user.
// Admin only. Absent name or role fields keep their prior value; username and
// password are immutable after creation. An unknown id answers 404.
//
// Example request:
// PUT /users/2 with body {"role": "admin"}
//
// Example response:
//
//	{
//	  "message": "User updated",
//	  "user": {"id": 2, "name": "User", "username": "user", "role": "admin"}
//	}
func (h *Handler) UpdateUserHandler(res http.ResponseWriter, req *http.Request) {
	id, idErr := strconv.Atoi(req.PathValue("id"))

	var cmd commands.UpdateUserCommand
	if err := json.NewDecoder(req.Body).Decode(&cmd); err != nil {
		log.WithFields(logrus.Fields{
			"operation": "updating user",
			"request":   "PUT /users/{id}",
		}).Error("invalid request body")
		writeJSON(res, http.StatusBadRequest, response.Message{Message: "Invalid request body"})
		return
	}

	if idErr != nil {
		// A non-numeric id never matches a record.
		writeJSON(res, http.StatusNotFound, response.Message{Message: "User not found"})
		return
	}
	user, err := h.Store.Update(id, cmd.Name, cmd.Role)
	if err != nil {
		log.WithFields(logrus.Fields{
			"operation": "updating user",
			"request":   "PUT /users/{id}",
			"id":        id,
		}).Error("user not found")
		writeJSON(res, http.StatusNotFound, response.Message{Message: "User not found"})
		return
	}

	log.WithFields(logrus.Fields{
		"operation": "updating user",
		"request":   "PUT /users/{id}",
		"id":        id,
	}).Info("user updated")
	writeJSON(res, http.StatusOK, response.UserResult{Message: "User updated", User: user})
}

// DeleteUserHandler handles the HTTP request for deleting a user. Admin only.
// Deletion is idempotent: an absent id is a no-op and still answers success.
//
// Example response:
//
//	{
//	  "message": "User deleted"
//	}
func (h *Handler) DeleteUserHandler(res http.ResponseWriter, req *http.Request) {
	if id, err := strconv.Atoi(req.PathValue("id")); err == nil {
		h.Store.Delete(id)
	}
	log.WithFields(logrus.Fields{
		"operation": "deleting user",
		"request":   "DELETE /users/{id}",
		"id":        req.PathValue("id"),
	}).Info("user deleted")
	writeJSON(res, http.StatusOK, response.Message{Message: "User deleted"})
}

// StatsHandler handles the HTTP request for the dashboard statistics. Any
// authenticated role may call it. The session and sales figures are
// randomized placeholder values.
func (h *Handler) StatsHandler(res http.ResponseWriter, req *http.Request) {
	stats := models.Stats{
		TotalUsers:     h.Store.Count(),
		ActiveSessions: rand.Intn(100),
		Sales:          rand.Intn(1000),
	}
	writeJSON(res, http.StatusOK, stats)
}

// usersToCSV renders the user records to CSV with a header row of
// id,name,username,role. It is a pure function of its input.
func usersToCSV(users []models.PublicUser) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{{"id", "name", "username", "role"}}
	for _, u := range users {
		records = append(records, []string{strconv.Itoa(u.Id), u.Name, u.Username, u.Role})
	}
	if err := w.WriteAll(records); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ExportUsersHandler handles the HTTP request for exporting all users as a
// CSV attachment named users.csv. Admin only. A serialization failure answers
// 500 with {"message": "Export error"}.
func (h *Handler) ExportUsersHandler(res http.ResponseWriter, req *http.Request) {
	output, err := usersToCSV(h.Store.List(""))
	if err != nil {
		log.WithFields(logrus.Fields{
			"operation": "exporting users",
			"request":   "GET /users/export",
		}).Error(err.Error())
		writeJSON(res, http.StatusInternalServerError, response.Message{Message: "Export error"})
		return
	}

	log.WithFields(logrus.Fields{
		"operation": "exporting users",
		"request":   "GET /users/export",
	}).Info("processing request")
	res.Header().Set("Content-Type", "text/csv")
	res.Header().Set("Content-Disposition", `attachment; filename="users.csv"`)
	res.WriteHeader(http.StatusOK)
	res.Write([]byte(output))
}
