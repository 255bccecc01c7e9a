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

type VoteHandler struct {
	votes    services.VoteService
	users    services.UserService
	profiles services.ProfileService
}

func NewVoteHandler(votes services.VoteService, users services.UserService, profiles services.ProfileService) *VoteHandler {
	return &VoteHandler{votes: votes, users: users, profiles: profiles}
}

// Test is the liveness echo for the vote routes.
func (h *VoteHandler) Test(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"vote": "Vote Working"})
}

// Options returns the static enumerations clients can vote with.
func (h *VoteHandler) Options(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.NewVotingOptions())
}

func (h *VoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.VoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorBody("error", "Invalid request body"))
		return
	}

	result := validation.ValidateVoteInput(req)
	if !result.IsValid {
		writeJSON(w, http.StatusBadRequest, result.Errors)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	// No auth on this API: the acting user must exist before the vote
	// is accepted.
	userID, ok := h.requireUser(ctx, w, req.User)
	if !ok {
		return
	}

	profileID, err := primitive.ObjectIDFromHex(req.Profile)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorBody("error", profileFetchError))
		return
	}
	exists, err := h.profiles.Exists(ctx, profileID)
	if err != nil {
		log.Error().Err(err).Msg("check profile for vote")
		writeJSON(w, http.StatusInternalServerError, models.ErrorBody("error", profileFetchError))
		return
	}
	if !exists {
		writeJSON(w, http.StatusNotFound, models.ErrorBody("no_profile_found", "No profile found"))
		return
	}

	vote := models.Vote{
		User:        userID,
		Profile:     profileID,
		Title:       req.Title,
		Description: req.Description,
		Mbti:        req.Mbti,
		Enneagram:   req.Enneagram,
		Zodiac:      req.Zodiac,
	}
	if req.Image != "" {
		vote.Image = req.Image
	}

	created, err := h.votes.Create(ctx, &vote)
	if err != nil {
		if err == services.ErrVoteExists {
			writeJSON(w, http.StatusBadRequest, models.ErrorBody("vote_exists", "Vote already exists for this profile from provided user"))
			return
		}
		log.Error().Err(err).Msg("create vote")
		writeJSON(w, http.StatusInternalServerError, models.ErrorBody("error", voteFetchError))
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *VoteHandler) Like(w http.ResponseWriter, r *http.Request) {
	h.toggleLike(w, r, true)
}

func (h *VoteHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	h.toggleLike(w, r, false)
}

func (h *VoteHandler) toggleLike(w http.ResponseWriter, r *http.Request, like bool) {
	var req models.LikeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorBody("error", "Invalid request body"))
		return
	}

	result := validation.ValidateLikeInput(req)
	if !result.IsValid {
		writeJSON(w, http.StatusBadRequest, result.Errors)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, ok := h.requireUser(ctx, w, req.User)
	if !ok {
		return
	}

	voteID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "voteId"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorBody("error", voteFetchError))
		return
	}

	var vote *models.Vote
	if like {
		vote, err = h.votes.Like(ctx, voteID, userID)
	} else {
		vote, err = h.votes.Unlike(ctx, voteID, userID)
	}
	if err != nil {
		switch err {
		case services.ErrVoteNotFound:
			writeJSON(w, http.StatusNotFound, models.ErrorBody("no_vote_found", "No vote found"))
		case services.ErrAlreadyLiked:
			writeJSON(w, http.StatusBadRequest, models.ErrorBody("already_liked", "You have already liked this post"))
		case services.ErrNotLiked:
			writeJSON(w, http.StatusBadRequest, models.ErrorBody("not_liked", "You have not liked this post"))
		default:
			log.Error().Err(err).Msg("toggle like")
			writeJSON(w, http.StatusInternalServerError, models.ErrorBody("error", voteFetchError))
		}
		return
	}

	writeJSON(w, http.StatusOK, vote)
}

// List runs the filtered, sorted, paginated vote query. An empty
// result reads as not found rather than an empty list.
func (h *VoteHandler) List(w http.ResponseWriter, r *http.Request) {
	query, err := services.ParseVoteListQuery(r.URL.Query())
	if err != nil {
		if fieldErr, ok := err.(*services.FieldError); ok {
			writeJSON(w, http.StatusBadRequest, models.ErrorBody(fieldErr.Field, fieldErr.Message))
			return
		}
		writeJSON(w, http.StatusInternalServerError, models.ErrorBody("error", votesFetchError))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	votes, err := h.votes.Query(ctx, query)
	if err != nil {
		log.Error().Err(err).Msg("query votes")
		writeJSON(w, http.StatusInternalServerError, models.ErrorBody("error", votesFetchError))
		return
	}
	if len(votes) == 0 {
		writeJSON(w, http.StatusNotFound, models.ErrorBody("no_votes_found", "No votes found"))
		return
	}

	writeJSON(w, http.StatusOK, votes)
}

// requireUser resolves the acting user id and writes the error
// response itself when the id is malformed, the user is missing, or
// the lookup fails.
func (h *VoteHandler) requireUser(ctx context.Context, w http.ResponseWriter, rawID string) (primitive.ObjectID, bool) {
	userID, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorBody("error", userFetchError))
		return primitive.NilObjectID, false
	}
	if _, err := h.users.GetByID(ctx, userID); err != nil {
		if err == services.ErrUserNotFound {
			writeJSON(w, http.StatusNotFound, models.ErrorBody("no_user_found", "No user found"))
			return primitive.NilObjectID, false
		}
		log.Error().Err(err).Msg("get acting user")
		writeJSON(w, http.StatusInternalServerError, models.ErrorBody("error", userFetchError))
		return primitive.NilObjectID, false
	}
	return userID, true
}
