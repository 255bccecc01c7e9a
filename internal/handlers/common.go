package handlers

import (
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// Generic bodies for storage failures. These deliberately carry no
// internal detail.
const (
	userFetchError     = "There was an issue while fetching the user"
	profileFetchError  = "There was an issue while fetching the profile"
	profilesFetchError = "There was an issue while fetching the profiles"
	profileSaveError   = "There was an issue while saving the profile"
	voteFetchError     = "There was an issue while fetching the vote"
	votesFetchError    = "There was an issue while fetching the votes"
)
