package collection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Record is one document row. Collections share a single table; the
// document body lives in a JSONB column so collections stay schemaless.
type Record struct {
	Collection string `gorm:"primaryKey;size:128"`
	ID         string `gorm:"primaryKey;size:128"`
	Doc        []byte `gorm:"type:jsonb;not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// GormStore persists documents in Postgres.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("failed to migrate records table -> %w", err)
	}

	return &GormStore{db: db}, nil
}

func (s *GormStore) List(ctx context.Context, collection string) ([]Document, error) {
	var records []Record
	result := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order("created_at").
		Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}

	return decodeRecords(records)
}

func (s *GormStore) Get(ctx context.Context, collection, id string) (Document, error) {
	var record Record
	result := s.db.WithContext(ctx).
		Where("collection = ? AND id = ?", collection, id).
		First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}

		return nil, result.Error
	}

	return decodeRecord(record)
}

func (s *GormStore) Query(ctx context.Context, collection, field, value string) ([]Document, error) {
	var records []Record
	result := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Where("doc->>? = ?", field, value).
		Order("created_at").
		Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}

	return decodeRecords(records)
}

func (s *GormStore) Insert(ctx context.Context, collection string, doc Document) (Document, error) {
	stored := cloneDocument(doc)
	id, _ := stored["id"].(string)
	if id == "" {
		id = uuid.NewString()
		stored["id"] = id
	}

	encoded, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document -> %w", err)
	}

	record := Record{Collection: collection, ID: id, Doc: encoded}
	if result := s.db.WithContext(ctx).Create(&record); result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, ErrDuplicateID
		}

		return nil, result.Error
	}

	return stored, nil
}

func (s *GormStore) Patch(ctx context.Context, collection, id string, partial Document) (Document, error) {
	var merged Document

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record Record
		result := tx.Where("collection = ? AND id = ?", collection, id).First(&record)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}

			return result.Error
		}

		doc, err := decodeRecord(record)
		if err != nil {
			return err
		}
		for k, v := range partial {
			if k == "id" {
				continue
			}
			doc[k] = v
		}

		encoded, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to encode document -> %w", err)
		}
		record.Doc = encoded
		if result := tx.Save(&record); result.Error != nil {
			return result.Error
		}

		merged = doc

		return nil
	})
	if err != nil {
		return nil, err
	}

	return merged, nil
}

func (s *GormStore) Delete(ctx context.Context, collection, id string) error {
	result := s.db.WithContext(ctx).
		Where("collection = ? AND id = ?", collection, id).
		Delete(&Record{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func decodeRecord(record Record) (Document, error) {
	var doc Document
	if err := json.Unmarshal(record.Doc, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document %s/%s -> %w", record.Collection, record.ID, err)
	}

	return doc, nil
}

func decodeRecords(records []Record) ([]Document, error) {
	out := make([]Document, 0, len(records))
	for _, record := range records {
		doc, err := decodeRecord(record)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}

	return out, nil
}
