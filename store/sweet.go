package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/Unsorted-Wings/sweet-shop/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SweetStore is the CRUD facade over the sweets table. Quantity is never
// mutated through UpdateAttributes; Purchase and Restock are the only
// operations that touch stock.
type SweetStore struct {
	db *gorm.DB
}

// NewSweetStore constructs a SweetStore over the given connection.
func NewSweetStore(db *gorm.DB) *SweetStore {
	return &SweetStore{db: db}
}

// SweetAttributes carries the allow-listed fields an attribute update may
// change. Nil fields are left untouched.
type SweetAttributes struct {
	Name     *string
	Price    *float64
	Category *string
}

// Create persists a new sweet and returns it with its generated ID and
// timestamps.
func (s *SweetStore) Create(ctx context.Context, sweet models.Sweet) (models.Sweet, error) {
	if err := s.db.WithContext(ctx).Create(&sweet).Error; err != nil {
		return models.Sweet{}, fmt.Errorf("create sweet: %w", err)
	}
	return sweet, nil
}

// Get returns the sweet with the given ID.
func (s *SweetStore) Get(ctx context.Context, id string) (models.Sweet, error) {
	var sweet models.Sweet
	err := s.db.WithContext(ctx).First(&sweet, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Sweet{}, &SweetNotFoundError{ID: id}
	}
	if err != nil {
		return models.Sweet{}, fmt.Errorf("get sweet: %w", err)
	}
	return sweet, nil
}

// List returns every sweet matching the filter. Without a sort field the
// order follows storage order and is not guaranteed.
func (s *SweetStore) List(ctx context.Context, filter SweetFilter) ([]models.Sweet, error) {
	sweets := []models.Sweet{}
	if err := s.db.WithContext(ctx).Scopes(Scope(filter)).Find(&sweets).Error; err != nil {
		return nil, fmt.Errorf("list sweets: %w", err)
	}
	return sweets, nil
}

// UpdateAttributes applies the allow-listed fields to an existing sweet and
// returns the updated row.
func (s *SweetStore) UpdateAttributes(ctx context.Context, id string, attrs SweetAttributes) (models.Sweet, error) {
	updates := map[string]interface{}{}
	if attrs.Name != nil {
		updates["name"] = *attrs.Name
	}
	if attrs.Price != nil {
		updates["price"] = *attrs.Price
	}
	if attrs.Category != nil {
		updates["category"] = *attrs.Category
	}

	if len(updates) > 0 {
		res := s.db.WithContext(ctx).Model(&models.Sweet{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return models.Sweet{}, fmt.Errorf("update sweet: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return models.Sweet{}, &SweetNotFoundError{ID: id}
		}
	}

	return s.Get(ctx, id)
}

// Delete removes the sweet with the given ID and returns it.
func (s *SweetStore) Delete(ctx context.Context, id string) (models.Sweet, error) {
	sweet, err := s.Get(ctx, id)
	if err != nil {
		return models.Sweet{}, err
	}
	res := s.db.WithContext(ctx).Delete(&models.Sweet{}, "id = ?", id)
	if res.Error != nil {
		return models.Sweet{}, fmt.Errorf("delete sweet: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.Sweet{}, &SweetNotFoundError{ID: id}
	}
	return sweet, nil
}

// Purchase decrements stock by qty only if enough units are available. The
// check and the decrement are a single conditional UPDATE, so two
// concurrent purchases can never jointly drive stock below zero.
func (s *SweetStore) Purchase(ctx context.Context, id string, qty int) (models.Sweet, error) {
	// RETURNING hands back the decrement's own result; a separate re-read
	// could observe a concurrent mutation instead.
	var sweet models.Sweet
	res := s.db.WithContext(ctx).Model(&sweet).
		Clauses(clause.Returning{}).
		Where("id = ? AND quantity >= ?", id, qty).
		Update("quantity", gorm.Expr("quantity - ?", qty))
	if res.Error != nil {
		return models.Sweet{}, fmt.Errorf("purchase sweet: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// Either the sweet is missing or stock is short; re-read to tell
		// the two apart and to report the available amount.
		current, err := s.Get(ctx, id)
		if err != nil {
			return models.Sweet{}, err
		}
		return models.Sweet{}, &InsufficientStockError{Available: current.Quantity, Requested: qty}
	}
	return sweet, nil
}

// Restock increments stock by qty. The increment is unconditional, so a
// single UPDATE suffices and there is no race hazard.
func (s *SweetStore) Restock(ctx context.Context, id string, qty int) (models.Sweet, error) {
	var sweet models.Sweet
	res := s.db.WithContext(ctx).Model(&sweet).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Update("quantity", gorm.Expr("quantity + ?", qty))
	if res.Error != nil {
		return models.Sweet{}, fmt.Errorf("restock sweet: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.Sweet{}, &SweetNotFoundError{ID: id}
	}
	return sweet, nil
}
