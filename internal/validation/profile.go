package validation

import "github.com/thedevhaider/dating-network/internal/models"

// ValidateProfileInput checks a profile upsert body. The typing
// attributes are optional: an empty value raises no error, a present
// value must match its exact length (or range, for tritype).
func ValidateProfileInput(req models.ProfileRequest) Result {
	errors := map[string]string{}

	name := normalized(req.Name)
	description := normalized(req.Description)
	user := normalized(req.User)

	if !isLength(name, 2, 100) {
		errors["name"] = "name must be 2 to 100 characters long"
	}
	if IsEmpty(name) {
		errors["name"] = "name required"
	}

	if !isLength(description, 10, 1000) {
		errors["description"] = "description must be 100 to 1000 characters long"
	}
	if IsEmpty(description) {
		errors["description"] = "description required"
	}

	if !isLength(user, 24, 24) {
		errors["user"] = "user must be 24 characters long"
	}
	if IsEmpty(user) {
		errors["user"] = "user required"
	}

	if !IsEmpty(req.Mbti) && !isLength(req.Mbti, 4, 4) {
		errors["mbti"] = "mbti must be 4 characters long"
	}

	if !IsEmpty(req.Enneagram) && !isLength(req.Enneagram, 3, 3) {
		errors["enneagram"] = "enneagram must be 3 characters long"
	}

	if !IsEmpty(req.Variant) && !isLength(req.Variant, 5, 5) {
		errors["variant"] = "variant must be 5 characters long"
	}

	if req.Tritype != nil {
		if *req.Tritype < 100 || *req.Tritype > 999 {
			errors["tritype"] = "tritype must be of value from 100 to 999"
		}
	}

	if !IsEmpty(req.Socionics) && !isLength(req.Socionics, 3, 3) {
		errors["socionics"] = "socionics must be 3 characters long"
	}

	if !IsEmpty(req.Sloan) && !isLength(req.Sloan, 5, 5) {
		errors["sloan"] = "sloan must be 5 characters long"
	}

	if !IsEmpty(req.Psyche) && !isLength(req.Psyche, 4, 4) {
		errors["psyche"] = "psyche must be 4 characters long"
	}

	return Result{Errors: errors, IsValid: IsEmpty(errors)}
}
