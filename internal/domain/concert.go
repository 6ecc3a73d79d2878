package domain

// Concert is a bookable show. AvailableTickets is the only field the
// storefront ever mutates, and 0 <= AvailableTickets <= TotalTickets must
// hold after any sequence of successful purchases.
//
// Date is the collection wire format ("2006-01-02"); ArtistName is
// denormalized alongside ArtistID so lists render without a second lookup.
type Concert struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	ArtistID         string  `json:"artistId"`
	ArtistName       string  `json:"artistName"`
	Venue            string  `json:"venue"`
	Date             string  `json:"date"`
	Time             string  `json:"time"`
	Price            float64 `json:"price"`
	AvailableTickets int     `json:"availableTickets"`
	TotalTickets     int     `json:"totalTickets"`
	Continent        string  `json:"continent"`
	Image            string  `json:"image"`
	Description      string  `json:"description"`
}

// SoldOut reports whether no tickets remain.
func (c Concert) SoldOut() bool {
	return c.AvailableTickets <= 0
}
