package repository

import "context"

// Collection names on the backing store.
const (
	usersCollection     = "users"
	artistsCollection   = "artists"
	concertsCollection  = "concerts"
	favoritesCollection = "favorites"
	purchasesCollection = "purchaseHistory"
)

// Gateway is the slice of the collection client the repositories consume.
type Gateway interface {
	List(ctx context.Context, collection string, out any) error
	Get(ctx context.Context, collection, id string, out any) error
	Query(ctx context.Context, collection, field, value string, out any) error
	Create(ctx context.Context, collection string, body, out any) error
	Patch(ctx context.Context, collection, id string, partial, out any) error
	Delete(ctx context.Context, collection, id string) error
}
