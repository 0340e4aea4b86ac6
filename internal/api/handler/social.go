// internal/api/handler/social.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tweetline/internal/api/types"
	"tweetline/internal/service"
	"tweetline/internal/util"
	"tweetline/internal/validation"
)

// DefaultTimeout bounds request handling at the router level.
const DefaultTimeout = 60 * time.Second

// SocialHandler handles HTTP requests for the posting API.
type SocialHandler struct {
	service service.SocialService
	logger  *slog.Logger
}

// NewSocialHandler creates a new SocialHandler.
func NewSocialHandler(svc service.SocialService, logger *slog.Logger) *SocialHandler {
	return &SocialHandler{
		service: svc,
		logger:  logger,
	}
}

// Helper function to send JSON responses.
func (h *SocialHandler) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// Helper function to send error responses. Storage details are logged
// server-side only; clients never see more than a generic 500 message.
func (h *SocialHandler) respondWithError(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case util.IsError(err, util.ErrDuplicateEntry):
		statusCode = http.StatusConflict
		message = "username already taken"
	case util.IsError(err, util.ErrUserNotFound):
		statusCode = http.StatusNotFound
		message = "user not found"
	case util.IsError(err, util.ErrTweetNotFound):
		statusCode = http.StatusNotFound
		message = "tweet not found"
	case util.IsError(err, util.ErrNotFound):
		statusCode = http.StatusNotFound
		message = "resource not found"
	default:
		h.logger.Error("Unhandled service error", "error", err)
	}

	h.respondWithJSON(w, statusCode, types.MessageResponse{Message: message})
}

// Helper function to reject a request with the full violation list.
func (h *SocialHandler) respondWithValidationErrors(w http.ResponseWriter, messages []string) {
	h.respondWithJSON(w, http.StatusUnprocessableEntity, types.ValidationErrorResponse{
		Message: "validation failed",
		Errors:  messages,
	})
}

// decodeJSON decodes the request body into v, reporting a malformed body
// through the validation envelope.
func (h *SocialHandler) decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.respondWithValidationErrors(w, []string{"request body must be valid JSON"})
		return false
	}
	return true
}

// Root handles the plain-text liveness acknowledgement.
// GET /
func (h *SocialHandler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("tweetline is up"))
}

// SignUpRequest represents the request body for sign-up.
type SignUpRequest struct {
	Username string `json:"username" validate:"required"`
	Avatar   string `json:"avatar"`
}

// SignUp handles user registration.
// POST /sign-up
func (h *SocialHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if messages := validation.Struct(req); messages != nil {
		h.respondWithValidationErrors(w, messages)
		return
	}

	if _, err := h.service.SignUp(r.Context(), req.Username, req.Avatar); err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusCreated, types.MessageResponse{Message: "user created"})
}

// PostTweetRequest represents the request body for posting a tweet.
type PostTweetRequest struct {
	Username string `json:"username" validate:"required"`
	Tweet    string `json:"tweet" validate:"required,max=280"`
}

// PostTweet handles tweet creation.
// POST /tweets
func (h *SocialHandler) PostTweet(w http.ResponseWriter, r *http.Request) {
	var req PostTweetRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if messages := validation.Struct(req); messages != nil {
		h.respondWithValidationErrors(w, messages)
		return
	}

	if _, err := h.service.PostTweet(r.Context(), req.Username, req.Tweet); err != nil {
		// Posting under an unknown handle answers 401, not 404. Kept as-is
		// from the original product behavior.
		if util.IsError(err, util.ErrUserNotFound) {
			h.respondWithJSON(w, http.StatusUnauthorized, types.MessageResponse{Message: "unknown user"})
			return
		}
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusCreated, types.MessageResponse{Message: "tweet created"})
}

// UserTimeline handles listing one user's tweets, newest first.
// GET /tweets/{username}
func (h *SocialHandler) UserTimeline(w http.ResponseWriter, r *http.Request) {
	// The /tweets/{id} wildcard carries the author's handle on this route.
	username := chi.URLParam(r, "id")

	items, err := h.service.UserTimeline(r.Context(), username)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, items)
}

// Timeline handles listing all tweets, newest first, each annotated with
// its author's current avatar.
// GET /tweets
func (h *SocialHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.Timeline(r.Context())
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, items)
}

// UpdateTweetRequest represents the request body for editing a tweet.
type UpdateTweetRequest struct {
	Tweet string `json:"tweet" validate:"required,max=280"`
}

// UpdateTweet handles replacing a tweet's text by id.
// PUT /tweets/{id}
func (h *SocialHandler) UpdateTweet(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	if messages := validation.TweetID(idStr); messages != nil {
		h.respondWithValidationErrors(w, messages)
		return
	}

	var req UpdateTweetRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if messages := validation.Struct(req); messages != nil {
		h.respondWithValidationErrors(w, messages)
		return
	}

	id, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		h.respondWithValidationErrors(w, []string{"id must be exactly 24 hexadecimal characters"})
		return
	}

	if err := h.service.EditTweet(r.Context(), id, req.Tweet); err != nil {
		h.respondWithError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteTweet handles removing a tweet by id.
// DELETE /tweets/{id}
func (h *SocialHandler) DeleteTweet(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	if messages := validation.TweetID(idStr); messages != nil {
		h.respondWithValidationErrors(w, messages)
		return
	}

	id, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		h.respondWithValidationErrors(w, []string{"id must be exactly 24 hexadecimal characters"})
		return
	}

	if err := h.service.RemoveTweet(r.Context(), id); err != nil {
		h.respondWithError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListUsers handles listing all users, newest first.
// GET /users
func (h *SocialHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, users)
}
