package models

// ErrorBody builds the single-key error object used across the API,
// e.g. {"no_user_found": "No user found"}.
func ErrorBody(key, message string) map[string]string {
	return map[string]string{key: message}
}

// ImageUploadResponse is returned after a successful image upload.
type ImageUploadResponse struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
}
