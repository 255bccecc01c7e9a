package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/thedevhaider/dating-network/internal/models"
	"github.com/thedevhaider/dating-network/internal/services"
	"github.com/thedevhaider/dating-network/internal/validation"
)

type UserHandler struct {
	users services.UserService
}

func NewUserHandler(users services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Test is the liveness echo for the user routes.
func (h *UserHandler) Test(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"user": "Users Working"})
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorBody("error", "Invalid request body"))
		return
	}

	result := validation.ValidateRegisterInput(req)
	if !result.IsValid {
		writeJSON(w, http.StatusBadRequest, result.Errors)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	user, err := h.users.Register(ctx, req.Name, req.Email)
	if err != nil {
		if err == services.ErrEmailExists {
			// The conflict message rides on the (empty) validation
			// error map, keyed by "user".
			result.Errors["user"] = "Already Exists"
			writeJSON(w, http.StatusBadRequest, result.Errors)
			return
		}
		log.Error().Err(err).Msg("register user")
		writeJSON(w, http.StatusInternalServerError, models.ErrorBody("error", userFetchError))
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "userId"))
	if err != nil {
		// A malformed id reads as a storage failure on this route.
		writeJSON(w, http.StatusInternalServerError, models.ErrorBody("error", userFetchError))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	user, err := h.users.GetByID(ctx, id)
	if err != nil {
		if err == services.ErrUserNotFound {
			writeJSON(w, http.StatusNotFound, models.ErrorBody("no_user_found", "No user found"))
			return
		}
		log.Error().Err(err).Msg("get user")
		writeJSON(w, http.StatusInternalServerError, models.ErrorBody("error", userFetchError))
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	users, err := h.users.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("list users")
		writeJSON(w, http.StatusNotFound, models.ErrorBody("no_users_found", "No users found"))
		return
	}

	writeJSON(w, http.StatusOK, users)
}
