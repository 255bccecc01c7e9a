package validation

import "github.com/thedevhaider/dating-network/internal/models"

// ValidateLikeInput checks a like/unlike body: the acting user id must
// be present and identifier-shaped.
func ValidateLikeInput(req models.LikeRequest) Result {
	errors := map[string]string{}

	user := normalized(req.User)

	if !isLength(user, 24, 24) {
		errors["user"] = "user must be 24 characters long"
	}
	if IsEmpty(user) {
		errors["user"] = "user required"
	}

	return Result{Errors: errors, IsValid: IsEmpty(errors)}
}
