package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/twirth/lagerbestand/internal/article/domain"
	"github.com/twirth/lagerbestand/internal/article/usecase/command"
	"github.com/twirth/lagerbestand/internal/article/usecase/query"
	userhttp "github.com/twirth/lagerbestand/internal/user/delivery/http"
	"github.com/twirth/lagerbestand/pkg/logger"
)

// ArticleHandler handles HTTP requests for articles
type ArticleHandler struct {
	createHandler *command.CreateArticleHandler
	updateHandler *command.UpdateArticleHandler
	deleteHandler *command.DeleteArticleHandler
	listHandler   *query.ListArticlesHandler
	getHandler    *query.GetArticleHandler
}

// NewArticleHandler creates a new article handler
func NewArticleHandler(
	createHandler *command.CreateArticleHandler,
	updateHandler *command.UpdateArticleHandler,
	deleteHandler *command.DeleteArticleHandler,
	listHandler *query.ListArticlesHandler,
	getHandler *query.GetArticleHandler,
) *ArticleHandler {
	return &ArticleHandler{
		createHandler: createHandler,
		updateHandler: updateHandler,
		deleteHandler: deleteHandler,
		listHandler:   listHandler,
		getHandler:    getHandler,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// articleView adds the derived low-stock flag to the stored fields.
type articleView struct {
	domain.Article
	BelowMinimum bool `json:"below_minimum"`
}

func toView(a domain.Article) articleView {
	return articleView{Article: a, BelowMinimum: a.BelowMinimum()}
}

type articleRequest struct {
	ArticleNumber string `json:"article_number"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Manufacturer  string `json:"manufacturer"`
	CurrentStock  int    `json:"current_stock"`
	MinimumStock  int    `json:"minimum_stock"`
	Location      string `json:"location"`
}

// ListArticles handles GET /api/articles
func (h *ArticleHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := h.listHandler.Handle()
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list articles")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to list articles"})
		return
	}

	views := make([]articleView, 0, len(articles))
	for _, a := range articles {
		views = append(views, toView(a))
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: views})
}

// GetArticle handles GET /api/articles/{number}
func (h *ArticleHandler) GetArticle(w http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["number"]

	article, err := h.getHandler.Handle(query.GetArticleQuery{ArticleNumber: number})
	if err != nil {
		respondJSON(w, articleStatus(err), Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: toView(*article)})
}

// CreateArticle handles POST /api/articles
func (h *ArticleHandler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	var req articleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	article, err := h.createHandler.Handle(command.CreateArticleCommand{
		ArticleNumber: req.ArticleNumber,
		Name:          req.Name,
		Description:   req.Description,
		Manufacturer:  req.Manufacturer,
		CurrentStock:  req.CurrentStock,
		MinimumStock:  req.MinimumStock,
		Location:      req.Location,
		User:          userhttp.ActorFromContext(r.Context()),
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to create article")
		respondJSON(w, articleStatus(err), Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusCreated, Response{Success: true, Message: "Article created successfully", Data: toView(*article)})
}

// UpdateArticle handles PUT /api/articles/{id}
func (h *ArticleHandler) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req articleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	article, err := h.updateHandler.Handle(command.UpdateArticleCommand{
		ID:            id,
		ArticleNumber: req.ArticleNumber,
		Name:          req.Name,
		Description:   req.Description,
		Manufacturer:  req.Manufacturer,
		CurrentStock:  req.CurrentStock,
		MinimumStock:  req.MinimumStock,
		Location:      req.Location,
		User:          userhttp.ActorFromContext(r.Context()),
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to update article")
		respondJSON(w, articleStatus(err), Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Article updated successfully", Data: toView(*article)})
}

// DeleteArticle handles DELETE /api/articles/{id}
func (h *ArticleHandler) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	err := h.deleteHandler.Handle(command.DeleteArticleCommand{
		ID:   id,
		User: userhttp.ActorFromContext(r.Context()),
	})
	if err != nil {
		respondJSON(w, articleStatus(err), Response{Success: false, Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Article deleted successfully"})
}

// RegisterRoutes registers all article routes
func (h *ArticleHandler) RegisterRoutes(router *mux.Router, authorize func(http.HandlerFunc) http.HandlerFunc) {
	router.HandleFunc("/api/articles", authorize(h.ListArticles)).Methods("GET")
	router.HandleFunc("/api/articles", authorize(h.CreateArticle)).Methods("POST")
	router.HandleFunc("/api/articles/{number}", authorize(h.GetArticle)).Methods("GET")
	router.HandleFunc("/api/articles/{id}", authorize(h.UpdateArticle)).Methods("PUT")
	router.HandleFunc("/api/articles/{id}", authorize(h.DeleteArticle)).Methods("DELETE")
}

func articleStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateArticleNumber):
		return http.StatusConflict
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
