package domain

// User is a storefront account as stored in the "users" collection.
// Passwords are kept and compared in plaintext because the collection API
// offers no server-side authentication; the storefront only mirrors what
// the backing store holds.
type User struct {
	ID          string `json:"id"`
	UserName    string `json:"userName"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
	Continent   string `json:"continent"`
}
