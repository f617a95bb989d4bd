package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// EntityKind names the entity an identifier refers to, for error messages.
type EntityKind string

const (
	EntityProduct   EntityKind = "product"
	EntityAdmin     EntityKind = "admin"
	EntityOrder     EntityKind = "order"
	EntityInventory EntityKind = "inventory"
)

// ValidateID checks that id is a well-formed identifier for the given entity
// kind. Identifiers are UUIDs throughout the service.
func ValidateID(kind EntityKind, id string) error {
	if id == "" {
		return ErrInvalidArgument(fmt.Sprintf("%s id is required", kind))
	}
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidArgument(fmt.Sprintf("malformed %s id: %s", kind, id))
	}
	return nil
}
