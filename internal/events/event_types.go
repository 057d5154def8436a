package events

import (
	"time"

	"github.com/yumyum-spot/menu-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered  EventType = "user_registered"
	EventMenuItemCreated EventType = "menu_item_created"
	EventMenuItemUpdated EventType = "menu_item_updated"
	EventMenuItemDeleted EventType = "menu_item_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	UserID string          `json:"user_id"`
	Email  string          `json:"email"`
	Role   domain.RoleName `json:"role"`
}

// MenuItemPayload payload for create/update events.
type MenuItemPayload struct {
	MenuItemID int64   `json:"menu_item_id"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Price      float64 `json:"price"`
}

// MenuItemDeletedPayload payload.
type MenuItemDeletedPayload struct {
	MenuItemID int64 `json:"menu_item_id"`
}
