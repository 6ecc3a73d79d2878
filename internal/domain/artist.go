package domain

// Artist records are seeded externally and read-only to the storefront.
type Artist struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Genre       string `json:"genre"`
	Country     string `json:"country"`
	Image       string `json:"image"`
	Description string `json:"description"`
}
