// DashboardWebService is a single-process web service exposing CRUD operations
// over an in-memory user list, gated by JWT bearer authentication and
// role-based authorization, plus a set of dashboard feed endpoints.
//
// The following endpoints are available:
//
//  1. POST   /login        - Log in and receive a bearer token
//  2. GET    /users        - List users, optionally filtered by role (admin)
//  3. POST   /users        - Create a new user (admin)
//  4. PUT    /users/{id}   - Update a user's name and/or role (admin)
//  5. DELETE /users/{id}   - Delete a user (admin)
//  6. GET    /users/export - Export all users as CSV (admin)
//  7. GET    /stats        - Dashboard statistics (any authenticated user)
//  8. GET    /reports      - Automated report (admin)
//  9. GET    /calendar     - Calendar events (any authenticated user)
// 10. GET    /chat         - Live-support chat feed (any authenticated user)
// 11. GET    /payments     - Payment feed (admin)
// 12. GET    /weather      - Weather conditions (public)
// 13. GET    /social       - Social media feed (public)
// 14. GET    /public/users - Reduced public user list (public)
// 15. GET    /metrics      - Prometheus metrics
//
// Every request is logged with its method and path regardless of outcome,
// and a global rate limit of 2 requests per second (burst 20) protects
// against abuse.
package main

import (
	"encoding/json"
	"net/http"

	"DashboardWebService/config"
	"DashboardWebService/handlers"
	"DashboardWebService/response"
	"DashboardWebService/store"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

var (
	limiter      = rate.NewLimiter(2, 20)
	errorCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_errors_total",
		Help: "Total number of requests answered with an error status.",
	}, []string{"method", "path"})
	endPointCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_requests_total",
		Help: "Total number of requests received.",
	}, []string{"method", "path"})
	log = logrus.New()
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using environment defaults")
	}
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()
	prometheus.MustRegister(errorCounter)
	prometheus.MustRegister(endPointCounter)

	st, err := store.NewSeeded()
	if err != nil {
		log.Fatalf("Error seeding user store: %v", err)
	}
	h := handlers.New(st, []byte(cfg.JWTSecret))

	mux := h.Routes()
	mux.Handle("GET /metrics", promhttp.Handler())

	root := cors.Default().Handler(logRequests(rateLimiter(instrument(mux))))

	log.Info("Server listening on port " + cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, root); err != nil {
		log.Fatal(err)
	}
}

// logRequests logs every incoming request with its method and path before
// dispatch, regardless of how the request ends.
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		log.WithFields(logrus.Fields{
			"method": req.Method,
			"path":   req.URL.Path,
		}).Info("request received")
		next.ServeHTTP(res, req)
	})
}

// rateLimiter applies the global token-bucket limit. A rejected request is
// answered with HTTP 429 and a JSON message.
func rateLimiter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		if !limiter.Allow() {
			res.Header().Set("Content-Type", "application/json")
			res.WriteHeader(http.StatusTooManyRequests)
			json.NewEncoder(res).Encode(response.Message{
				Message: "The API is at capacity, try again later.",
			})
			return
		}
		next.ServeHTTP(res, req)
	})
}

// statusRecorder captures the status code written by the wrapped handler so
// the error counter can distinguish failed requests.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// instrument counts every request and every error response per method and path.
func instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		endPointCounter.WithLabelValues(req.Method, req.URL.Path).Inc()
		recorder := &statusRecorder{ResponseWriter: res, status: http.StatusOK}
		next.ServeHTTP(recorder, req)
		if recorder.status >= http.StatusBadRequest {
			errorCounter.WithLabelValues(req.Method, req.URL.Path).Inc()
		}
	})
}
