package validation

import "github.com/thedevhaider/dating-network/internal/models"

// ValidateRegisterInput checks a registration body. When a field is
// both too short and empty the required message wins, since it is
// written to the error map last.
func ValidateRegisterInput(req models.RegisterRequest) Result {
	errors := map[string]string{}

	name := normalized(req.Name)
	email := normalized(req.Email)

	if !isLength(name, 2, 30) {
		errors["name"] = "name must be 2 to 30 Characters long"
	}
	if IsEmpty(name) {
		errors["name"] = "name is required"
	}

	if !isEmail(email) {
		errors["email"] = "Incorrect Email"
	}
	if IsEmpty(email) {
		errors["email"] = "email is required"
	}

	return Result{Errors: errors, IsValid: IsEmpty(errors)}
}
