package response

import "github.com/Keerthid-10/taylor/internal/domain"

type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// ValidationErrors carries the per-field messages of a rejected
// registration form.
type ValidationErrors struct {
	Errors map[string]string `json:"errors"`
}
