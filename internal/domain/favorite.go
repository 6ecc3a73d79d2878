package domain

// Favorite marks an artist for a user. ArtistName and ArtistImage are
// denormalized display fields copied from the artist at creation time.
// At most one favorite exists per (UserID, ArtistID) pair.
type Favorite struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	ArtistID    string `json:"artistId"`
	ArtistName  string `json:"artistName"`
	ArtistImage string `json:"artistImage"`
}
