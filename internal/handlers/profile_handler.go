package handlers

import (
	"context"
	"encoding/json"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/thedevhaider/dating-network/internal/models"
	"github.com/thedevhaider/dating-network/internal/services"
	"github.com/thedevhaider/dating-network/internal/validation"
)

type ProfileHandler struct {
	profiles services.ProfileService
	users    services.UserService
}

func NewProfileHandler(profiles services.ProfileService, users services.UserService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, users: users}
}

// Test is the liveness echo for the profile routes.
func (h *ProfileHandler) Test(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"profile": "Profile Working"})
}

// View renders the public HTML page for a profile, joined with the
// owner's name and email.
func (h *ProfileHandler) View(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "profileId"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorBody("error", profileFetchError))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	profile, err := h.profiles.GetByID(ctx, id)
	if err != nil {
		if err == services.ErrProfileNotFound {
			writeJSON(w, http.StatusNotFound, models.ErrorBody("no_profile", "No profile found for this provided id"))
			return
		}
		log.Error().Err(err).Msg("get profile")
		writeJSON(w, http.StatusInternalServerError, models.ErrorBody("error", profileFetchError))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := profileTemplate.Execute(w, profile); err != nil {
		log.Error().Err(err).Msg("render profile")
	}
}

func (h *ProfileHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	profiles, err := h.profiles.ListAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("list profiles")
		writeJSON(w, http.StatusInternalServerError, models.ErrorBody("error", profilesFetchError))
		return
	}

	writeJSON(w, http.StatusOK, profiles)
}

// Upsert creates or updates the profile owned by the submitted user:
// 201 when a new profile was created, 200 when an existing one was
// updated.
func (h *ProfileHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req models.ProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorBody("error", "Invalid request body"))
		return
	}

	result := validation.ValidateProfileInput(req)
	if !result.IsValid {
		writeJSON(w, http.StatusBadRequest, result.Errors)
		return
	}

	userID, err := primitive.ObjectIDFromHex(req.User)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorBody("error", userFetchError))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if _, err := h.users.GetByID(ctx, userID); err != nil {
		if err == services.ErrUserNotFound {
			writeJSON(w, http.StatusNotFound, models.ErrorBody("no_user_found", "No user found"))
			return
		}
		log.Error().Err(err).Msg("get user for profile upsert")
		writeJSON(w, http.StatusInternalServerError, models.ErrorBody("error", userFetchError))
		return
	}

	profile := models.Profile{
		User:        userID,
		Name:        req.Name,
		Description: req.Description,
	}
	if req.Mbti != "" {
		profile.Mbti = req.Mbti
	}
	if req.Enneagram != "" {
		profile.Enneagram = req.Enneagram
	}
	if req.Variant != "" {
		profile.Variant = req.Variant
	}
	if req.Tritype != nil {
		profile.Tritype = req.Tritype
	}
	if req.Socionics != "" {
		profile.Socionics = req.Socionics
	}
	if req.Sloan != "" {
		profile.Sloan = req.Sloan
	}
	if req.Psyche != "" {
		profile.Psyche = req.Psyche
	}
	if req.Temperaments != "" {
		profile.Temperaments = req.Temperaments
	}
	if req.Image != "" {
		profile.Image = req.Image
	}

	saved, created, err := h.profiles.Upsert(ctx, &profile)
	if err != nil {
		log.Error().Err(err).Msg("upsert profile")
		writeJSON(w, http.StatusInternalServerError, models.ErrorBody("error", profileSaveError))
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, saved)
}

var profileTemplate = template.Must(template.New("profile").Parse(profileTemplateHTML))

const profileTemplateHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.Name}}</title>
</head>
<body>
  <h1>{{.Name}}</h1>
  {{if .Image}}<img src="{{.Image}}" alt="{{.Name}}">{{end}}
  <p>{{.Description}}</p>
  <ul>
    {{if .Mbti}}<li>MBTI: {{.Mbti}}</li>{{end}}
    {{if .Enneagram}}<li>Enneagram: {{.Enneagram}}</li>{{end}}
    {{if .Variant}}<li>Variant: {{.Variant}}</li>{{end}}
    {{if .Tritype}}<li>Tritype: {{.Tritype}}</li>{{end}}
    {{if .Socionics}}<li>Socionics: {{.Socionics}}</li>{{end}}
    {{if .Sloan}}<li>Sloan: {{.Sloan}}</li>{{end}}
    {{if .Psyche}}<li>Psyche: {{.Psyche}}</li>{{end}}
    {{if .Temperaments}}<li>Temperaments: {{.Temperaments}}</li>{{end}}
  </ul>
  <p>Submitted by {{.User.Name}} ({{.User.Email}})</p>
</body>
</html>
`
