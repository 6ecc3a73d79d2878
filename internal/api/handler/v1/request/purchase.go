package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type PurchaseRequest struct {
	Tickets int `json:"tickets"`
}

func (req *PurchaseRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Tickets, validation.Required, validation.Min(1)),
	)
}

type AddFavoriteRequest struct {
	ArtistID string `json:"artistId"`
}

func (req *AddFavoriteRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ArtistID, validation.Required),
	)
}
