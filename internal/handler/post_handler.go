package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"socialfeed/internal/repository"
)

type CreatePostRequest struct {
	Text string `json:"text" validate:"required"`
}

type CreateCommentRequest struct {
	Text string `json:"text" validate:"required"`
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if _, ok := r.Context().Value("userID").(string); !ok {
		WriteAuthError(w, "Требуется авторизация", "missing_token", http.StatusUnauthorized)
		return
	}

	// лента: новые посты первыми
	posts, err := h.PostService.GetPosts(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	WriteSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if _, ok := r.Context().Value("userID").(string); !ok {
		WriteAuthError(w, "Требуется авторизация", "missing_token", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["id"]

	// чтение поста ничего не меняет
	post, err := h.PostService.GetPost(r.Context(), postID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteAuthError(w, "Требуется авторизация", "missing_token", http.StatusUnauthorized)
		return
	}

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteValidationErrors(w, validationMessages(err))
		return
	}

	serviceReq := repository.CreatePostRequest{
		UserID: userID,
		Text:   req.Text,
	}

	// creating a post
	post, err := h.PostService.CreatePost(r.Context(), serviceReq)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusCreated)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteAuthError(w, "Требуется авторизация", "missing_token", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["id"]

	// удалить пост может только его владелец
	if err := h.PostService.DeletePost(r.Context(), postID, userID); err != nil {
		writeDomainError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Пост удален"}, http.StatusOK)
}

func (h *Handlers) LikePost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteAuthError(w, "Требуется авторизация", "missing_token", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["id"]

	// повторный лайк отклоняется
	if err := h.PostService.LikePost(r.Context(), postID, userID); err != nil {
		writeDomainError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Пост отмечен"}, http.StatusOK)
}

func (h *Handlers) UnlikePost(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteAuthError(w, "Требуется авторизация", "missing_token", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["id"]

	if err := h.PostService.UnlikePost(r.Context(), postID, userID); err != nil {
		writeDomainError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Отметка снята"}, http.StatusOK)
}

func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteAuthError(w, "Требуется авторизация", "missing_token", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["id"]

	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteValidationErrors(w, validationMessages(err))
		return
	}

	serviceReq := repository.CreateCommentRequest{
		PostID: postID,
		UserID: userID,
		Text:   req.Text,
	}

	comment, err := h.PostService.AddComment(r.Context(), serviceReq)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	WriteSuccess(w, comment, http.StatusCreated)
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteAuthError(w, "Требуется авторизация", "missing_token", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	postID := vars["id"]
	commentID := vars["commentId"]

	// удалить комментарий может только его автор
	if err := h.PostService.DeleteComment(r.Context(), postID, commentID, userID); err != nil {
		writeDomainError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Комментарий удален"}, http.StatusOK)
}
