package domain

// PurchaseRecord is an immutable receipt in the "purchaseHistory"
// collection. TotalPrice equals TicketsBought * concert price at the time
// of purchase; PurchaseDate is RFC 3339.
type PurchaseRecord struct {
	ID            string  `json:"id"`
	UserID        string  `json:"userId"`
	UserName      string  `json:"userName"`
	ConcertID     string  `json:"concertId"`
	ConcertName   string  `json:"concertName"`
	ArtistName    string  `json:"artistName"`
	Venue         string  `json:"venue"`
	Date          string  `json:"date"`
	TicketsBought int     `json:"ticketsBought"`
	TotalPrice    float64 `json:"totalPrice"`
	PurchaseDate  string  `json:"purchaseDate"`
}
