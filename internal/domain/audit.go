package domain

import (
	"time"

	"github.com/google/uuid"
)

// EntityType names the aggregate an audit record refers to.
type EntityType string

const (
	EntityTypeUser   EntityType = "user"
	EntityTypeTrip   EntityType = "trip"
	EntityTypeZone   EntityType = "zone"
	EntityTypeRegion EntityType = "region"
)

func (e EntityType) String() string { return string(e) }

// AuditAction is the kind of change recorded.
type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
)

func (a AuditAction) String() string { return string(a) }

// AuditRecord is an append-only entry describing a privileged change.
type AuditRecord struct {
	ID         uuid.UUID
	ActorID    uuid.UUID
	EntityType EntityType
	EntityID   *uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}

// NewAuditRecord builds a record stamped with a fresh ID and the current time.
func NewAuditRecord(actor uuid.UUID, entity EntityType, entityID uuid.UUID, action AuditAction, changes map[string]any) AuditRecord {
	if changes == nil {
		changes = map[string]any{}
	}
	return AuditRecord{
		ID:         uuid.New(),
		ActorID:    actor,
		EntityType: entity,
		EntityID:   &entityID,
		Action:     action,
		Changes:    changes,
		CreatedAt:  time.Now().UTC(),
	}
}
