package gormstore

import (
	"context"
	"errors"

	"vastuguru-api/internal/domain/cart"

	"gorm.io/gorm"
)

type CartRepo struct {
	db *gorm.DB
}

func NewCartRepo(db *gorm.DB) *CartRepo {
	return &CartRepo{db: db}
}

func (r *CartRepo) ListItems(ctx context.Context, userID uint) ([]cart.Item, error) {
	var items []cart.Item
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *CartRepo) AddItem(ctx context.Context, item *cart.Item) error {
	err := r.db.WithContext(ctx).Create(item).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return cart.ErrAlreadyInCart
	}
	return err
}

func (r *CartRepo) RemoveItem(ctx context.Context, userID, itemID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&cart.Item{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return cart.ErrItemNotFound
	}
	return nil
}
