package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BySpaceID filters space items by their containing space.
type BySpaceID struct {
	SpaceID uuid.UUID
}

func (s BySpaceID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("space_id = ?", s.SpaceID)
}

// BySpaceIDs filters space items by a set of containing spaces.
type BySpaceIDs struct {
	SpaceIDs []uuid.UUID
}

func (s BySpaceIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("space_id IN ?", s.SpaceIDs)
}

// ByParentID filters space items on the parentId carried inside the tool JSON.
// A nil ParentID selects root items.
type ByParentID struct {
	ParentID *uuid.UUID
}

func (s ByParentID) Apply(db *gorm.DB) *gorm.DB {
	if s.ParentID == nil {
		return db.Where("tool ->> 'parentId' IS NULL")
	}
	return db.Where("tool ->> 'parentId' = ?", s.ParentID.String())
}

// ByItemType filters on the type discriminator inside the tool JSON.
type ByItemType struct {
	Type string
}

func (s ByItemType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("tool ->> 'type' = ?", s.Type)
}

// ByLinkedSpaceID selects space-link items pointing at a given space.
type ByLinkedSpaceID struct {
	LinkedSpaceID uuid.UUID
}

func (s ByLinkedSpaceID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("tool ->> 'linkedSpaceId' = ?", s.LinkedSpaceID.String())
}
