package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/twirth/lagerbestand/internal/user/domain"
	"github.com/twirth/lagerbestand/internal/user/usecase/command"
	"github.com/twirth/lagerbestand/internal/user/usecase/query"
	"github.com/twirth/lagerbestand/pkg/logger"
)

// UserHandler handles HTTP requests for users
type UserHandler struct {
	loginHandler  *command.LoginUserHandler
	createHandler *command.CreateUserHandler
	updateHandler *command.UpdateUserHandler
	deleteHandler *command.DeleteUserHandler
	listHandler   *query.ListUsersHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewUserHandler creates a new user handler
func NewUserHandler(
	loginHandler *command.LoginUserHandler,
	createHandler *command.CreateUserHandler,
	updateHandler *command.UpdateUserHandler,
	deleteHandler *command.DeleteUserHandler,
	listHandler *query.ListUsersHandler,
) *UserHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_user_requests_total",
			Help: "Total number of user endpoint requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ledger_user_request_duration_seconds",
			Help:    "Duration of user endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &UserHandler{
		loginHandler:   loginHandler,
		createHandler:  createHandler,
		updateHandler:  updateHandler,
		deleteHandler:  deleteHandler,
		listHandler:    listHandler,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// instrument wraps an endpoint with request counting and latency metrics.
func (h *UserHandler) instrument(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &statusWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(time.Since(start).Seconds())
	}
}

type statusWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

// Login handles POST /api/auth/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	resp, err := h.loginHandler.Handle(command.LoginUserCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		logger.Warn(r.Context()).Str("username", req.Username).Msg("Login failed")
		respondJSON(w, userStatus(err), Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: resp})
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.listHandler.Handle()
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list users")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to list users"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: users})
}

type userRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsActive  bool   `json:"is_active"`
}

// CreateUser handles POST /api/users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	user, err := h.createHandler.Handle(command.CreateUserCommand{
		Username:  req.Username,
		Password:  req.Password,
		Role:      req.Role,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IsActive:  req.IsActive,
	})
	if err != nil {
		respondJSON(w, userStatus(err), Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusCreated, Response{Success: true, Message: "User created successfully", Data: user})
}

// UpdateUser handles PUT /api/users/{id}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	user, err := h.updateHandler.Handle(command.UpdateUserCommand{
		ID:        id,
		Username:  req.Username,
		Password:  req.Password,
		Role:      req.Role,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IsActive:  req.IsActive,
	})
	if err != nil {
		respondJSON(w, userStatus(err), Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "User updated successfully", Data: user})
}

// DeleteUser handles DELETE /api/users/{id}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.deleteHandler.Handle(command.DeleteUserCommand{ID: id}); err != nil {
		respondJSON(w, userStatus(err), Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "User deleted successfully"})
}

// RegisterRoutes registers all user routes
func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/auth/login", h.instrument("/api/auth/login", h.Login)).Methods("POST")
	router.HandleFunc("/api/users", h.instrument("/api/users", AuthMiddleware(h.ListUsers))).Methods("GET")
	router.HandleFunc("/api/users", h.instrument("/api/users", AdminMiddleware(h.CreateUser))).Methods("POST")
	router.HandleFunc("/api/users/{id}", h.instrument("/api/users/{id}", AdminMiddleware(h.UpdateUser))).Methods("PUT")
	router.HandleFunc("/api/users/{id}", h.instrument("/api/users/{id}", AdminMiddleware(h.DeleteUser))).Methods("DELETE")
}

func userStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateUsername):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
