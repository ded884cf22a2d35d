package entity

import (
	"time"

	"github.com/google/uuid"
)

// ItemType is the discriminator of the SpaceItem sum type. The string values are
// stored verbatim in the space_items "tool" JSON column.
type ItemType string

const (
	ItemTypeBookmark  ItemType = "bookmark"
	ItemTypeFolder    ItemType = "folder"
	ItemTypeSpaceLink ItemType = "space-link"
)

// SpaceItem is the closed union of Bookmark, Folder and SpaceLink. Consumers are
// expected to switch exhaustively on the concrete type.
type SpaceItem interface {
	ItemType() ItemType
	ItemId() uuid.UUID
	ItemSpaceId() uuid.UUID
	ItemParentId() *uuid.UUID
}

// ItemBase carries the fields shared by every variant.
type ItemBase struct {
	Id              uuid.UUID
	UserId          uuid.UUID
	SpaceId         uuid.UUID
	ParentId        *uuid.UUID
	BackgroundColor string
	TextColor       string
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

func (b ItemBase) ItemId() uuid.UUID        { return b.Id }
func (b ItemBase) ItemSpaceId() uuid.UUID   { return b.SpaceId }
func (b ItemBase) ItemParentId() *uuid.UUID { return b.ParentId }

type Bookmark struct {
	ItemBase
	Title     string
	URL       string
	Summary   string
	Icon      string
	IconURL   string
	IconColor string
}

func (Bookmark) ItemType() ItemType { return ItemTypeBookmark }

type Folder struct {
	ItemBase
	Name string
	// Items holds the child bookmarks. The relation is computed by grouping on
	// ParentId, never stored.
	Items []*Bookmark
}

func (Folder) ItemType() ItemType { return ItemTypeFolder }

type SpaceLink struct {
	ItemBase
	Name          string
	LinkedSpaceId uuid.UUID
}

func (SpaceLink) ItemType() ItemType { return ItemTypeSpaceLink }
