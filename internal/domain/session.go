package domain

// Session is the resolved authentication state of a request. It is passed
// explicitly into every service call that gates on a user instead of being
// read from ambient storage, so the dependency shows up in signatures.
//
// The zero value is the anonymous session.
type Session struct {
	Key  string
	User User
}

// Authenticated reports whether the session belongs to a logged-in user.
func (s Session) Authenticated() bool {
	return s.User.ID != ""
}
