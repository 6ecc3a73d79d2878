// Package collection implements the generic record-set API the storefront
// persists through: named collections of JSON documents with CRUD and
// equality filtering, the contract json-server popularized. It offers no
// transactions and no conditional updates; multi-step callers get
// best-effort ordering only.
package collection

import (
	"context"
	"errors"
)

var (
	ErrNotFound    = errors.New("document not found")
	ErrDuplicateID = errors.New("document id already exists")
)

// Document is one schemaless record. The "id" field is managed by the
// store: generated on insert when absent, kept when the client supplies
// one.
type Document = map[string]any

// Store is the persistence behind the collection API. MemoryStore backs
// development and tests, GormStore backs production.
type Store interface {
	List(ctx context.Context, collection string) ([]Document, error)
	Get(ctx context.Context, collection, id string) (Document, error)
	Query(ctx context.Context, collection, field, value string) ([]Document, error)
	Insert(ctx context.Context, collection string, doc Document) (Document, error)
	Patch(ctx context.Context, collection, id string, partial Document) (Document, error)
	Delete(ctx context.Context, collection, id string) error
}
