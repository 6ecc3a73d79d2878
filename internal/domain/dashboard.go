package domain

// Dashboard is the aggregate the home view renders: a slice of the artist
// catalog, the user's favorites, the next bookable concerts and the most
// recent purchases. It is recomputed on every load, never persisted.
type Dashboard struct {
	Artists          []Artist         `json:"artists"`
	Favorites        []Favorite       `json:"favorites"`
	UpcomingConcerts []Concert        `json:"upcomingConcerts"`
	RecentPurchases  []PurchaseRecord `json:"recentPurchases"`
}
