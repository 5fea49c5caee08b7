package validation

import (
	"strings"

	"game_catalog/internal/model"
)

const (
	gameTitleMinLen       = 3
	gameDescriptionMinLen = 10
	gameCategoryMinLen    = 2
	gameMaxPrice          = 1_000_000
	gameMaxRating         = 5
)

// Result is the outcome of whole-record validation
type Result struct {
	Valid  bool
	Errors map[string]string
}

func newResult(errs map[string]string) Result {
	return Result{Valid: len(errs) == 0, Errors: errs}
}

// ValidateUser checks a registration payload. Every field is checked
// independently so the response enumerates all violations at once.
func ValidateUser(req *model.RegisterRequest) Result {
	errs := map[string]string{}

	if strings.TrimSpace(req.FirstName) == "" {
		errs["firstName"] = "First name is required"
	}
	if strings.TrimSpace(req.LastName) == "" {
		errs["lastName"] = "Last name is required"
	}
	if !IsValidEmail(req.Email) {
		errs["email"] = "Valid email is required"
	}
	if !IsValidPassword(req.Password) {
		errs["password"] = "Password must be at least 8 characters with at least one number"
	}
	if req.Mobile == "" {
		errs["mobile"] = "Mobile number is required"
	} else if !IsValidMobile(NormalizeMobile(req.Mobile)) {
		errs["mobile"] = "Valid mobile number is required (10-12 digits only)"
	}
	if req.Gender != model.GenderMale && req.Gender != model.GenderFemale {
		errs["gender"] = "Gender is required (male, female)"
	}

	return newResult(errs)
}

// ValidateGame checks a game payload. A price of 0 is present and valid;
// a nil price is missing. Rating is optional but range-checked when set.
func ValidateGame(req *model.GameRequest) Result {
	errs := map[string]string{}

	if req.Title == "" {
		errs["title"] = "Title is required"
	} else if len(strings.TrimSpace(req.Title)) < gameTitleMinLen {
		errs["title"] = "Title must be at least 3 characters long"
	}

	if req.Description == "" {
		errs["description"] = "Description is required"
	} else if len(strings.TrimSpace(req.Description)) < gameDescriptionMinLen {
		errs["description"] = "Description must be at least 10 characters long"
	}

	if req.Price == nil {
		errs["price"] = "Price is required"
	} else if *req.Price < 0 || *req.Price > gameMaxPrice {
		errs["price"] = "Price must be a positive number less than $1,000,000"
	}

	if req.Category == "" {
		errs["category"] = "Category is required"
	} else if len(strings.TrimSpace(req.Category)) < gameCategoryMinLen {
		errs["category"] = "Category must be at least 2 characters long"
	}

	if req.Image == "" {
		errs["image"] = "Image URL is required"
	} else if !IsValidURL(req.Image) {
		errs["image"] = "Image must be a valid HTTP or HTTPS URL"
	}

	if req.Rating != nil {
		if *req.Rating < 0 || *req.Rating > gameMaxRating {
			errs["rating"] = "Rating must be a number between 0 and 5"
		}
	}

	return newResult(errs)
}
