package validation

import "github.com/thedevhaider/dating-network/internal/models"

// ValidateVoteInput checks a vote creation body. All listed fields are
// required; zodiac only needs to be non-empty.
func ValidateVoteInput(req models.VoteRequest) Result {
	errors := map[string]string{}

	title := normalized(req.Title)
	description := normalized(req.Description)
	mbti := normalized(req.Mbti)
	enneagram := normalized(req.Enneagram)
	zodiac := normalized(req.Zodiac)
	user := normalized(req.User)
	profile := normalized(req.Profile)

	if !isLength(title, 2, 30) {
		errors["title"] = "title must be 2 to 30 Characters long"
	}
	if IsEmpty(title) {
		errors["title"] = "title is required"
	}

	if !isLength(description, 10, 1000) {
		errors["description"] = "description must be 10 to 1000 Characters long"
	}
	if IsEmpty(description) {
		errors["description"] = "description is required"
	}

	if !isLength(mbti, 4, 4) {
		errors["mbti"] = "mbti must be 4 characters long"
	}
	if IsEmpty(mbti) {
		errors["mbti"] = "mbti is required"
	}

	if !isLength(enneagram, 3, 3) {
		errors["enneagram"] = "enneagram must be 3 characters long"
	}
	if IsEmpty(enneagram) {
		errors["enneagram"] = "enneagram is required"
	}

	if IsEmpty(zodiac) {
		errors["zodiac"] = "zodiac is required"
	}

	if !isLength(user, 24, 24) {
		errors["user"] = "user must be 24 characters long"
	}
	if IsEmpty(user) {
		errors["user"] = "user required"
	}

	if !isLength(profile, 24, 24) {
		errors["profile"] = "profile must be 24 characters long"
	}
	if IsEmpty(profile) {
		errors["profile"] = "profile required"
	}

	return Result{Errors: errors, IsValid: IsEmpty(errors)}
}
