package cart

import (
	"context"
	"errors"
	"time"
)

const KindService = "Service"

var (
	ErrAlreadyInCart = errors.New("item already in cart")
	ErrItemNotFound  = errors.New("cart item not found")
)

type Item struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_cart_user_item" json:"userId"`
	ItemID    string    `gorm:"not null;uniqueIndex:idx_cart_user_item" json:"itemId"`
	Kind      string    `gorm:"not null;default:'Service'" json:"kind"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Item) TableName() string { return "cart_items" }

type Repository interface {
	ListItems(ctx context.Context, userID uint) ([]Item, error)
	AddItem(ctx context.Context, item *Item) error
	RemoveItem(ctx context.Context, userID, itemID uint) error
}

// ContainsService reports whether items hold the given service.
func ContainsService(items []Item, serviceID string) bool {
	if serviceID == "" {
		return false
	}
	for _, it := range items {
		if it.ItemID == serviceID && it.Kind == KindService {
			return true
		}
	}
	return false
}
