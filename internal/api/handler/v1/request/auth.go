package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/dlclark/regexp2"
)

const (
	// A capital first letter followed by at least three lowercase letters.
	userNamePattern = `^[A-Z][a-z]{3,}$`
	phonePattern    = `^\d{10}$`
	emailPattern    = `^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`
)

var (
	userNameExp = regexp2.MustCompile(userNamePattern, regexp2.None)
	phoneExp    = regexp2.MustCompile(phonePattern, regexp2.None)
	emailExp    = regexp2.MustCompile(emailPattern, regexp2.None)
)

// Continents offered at registration and as concert filters.
var Continents = []string{"Asia", "Europe", "Africa", "North America", "South America"}

type RegisterRequest struct {
	UserName        string `json:"userName"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	PhoneNumber     string `json:"phoneNumber"`
	Email           string `json:"email"`
	Continent       string `json:"continent"`
}

// Validate checks the whole form against its current values. Submission is
// gated on this passing; per-field messages come from FieldErrors.
func (req *RegisterRequest) Validate() error {
	if m := req.FieldErrors(); len(m) > 0 {
		// Surface the first offending field in a stable order.
		for _, field := range registerFields {
			if msg, ok := m[field]; ok {
				return validation.Errors{field: errors.New(msg)}
			}
		}
	}

	return nil
}

var registerFields = []string{"userName", "password", "confirmPassword", "phoneNumber", "email", "continent"}

// FieldErrors recomputes every field's validity from the current form
// values and returns a message per failing field. Each field is judged
// against the values as they stand now, not against a snapshot, so editing
// the password re-judges an already-entered confirmPassword too.
func (req *RegisterRequest) FieldErrors() map[string]string {
	errs := make(map[string]string)
	for _, field := range registerFields {
		if msg := req.validateField(field); msg != "" {
			errs[field] = msg
		}
	}

	return errs
}

func (req *RegisterRequest) validateField(field string) string {
	switch field {
	case "userName":
		if req.UserName == "" {
			return "name is required"
		}
		if !matches(userNameExp, req.UserName) {
			return "name must be at least 4 letters and start with a capital letter"
		}
	case "password":
		if req.Password == "" {
			return "password is required"
		}
		if len(req.Password) < 8 || len(req.Password) > 12 {
			return "password must be 8 to 12 characters"
		}
	case "confirmPassword":
		if req.ConfirmPassword == "" {
			return "confirm password is required"
		}
		if req.ConfirmPassword != req.Password {
			return "confirm password must match password"
		}
	case "phoneNumber":
		if req.PhoneNumber == "" {
			return "phone number is required"
		}
		if !matches(phoneExp, req.PhoneNumber) {
			return "phone number must be 10 digits"
		}
	case "email":
		if req.Email == "" {
			return "email is required"
		}
		if !matches(emailExp, req.Email) {
			return "enter a valid email"
		}
	case "continent":
		if req.Continent == "" {
			return "continent is required"
		}
		for _, c := range Continents {
			if req.Continent == c {
				return ""
			}
		}

		return "select a valid continent"
	}

	return ""
}

func matches(exp *regexp2.Regexp, value string) bool {
	ok, err := exp.MatchString(value)

	return err == nil && ok
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req *LoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required),
		validation.Field(&req.Password, validation.Required),
	)
}
