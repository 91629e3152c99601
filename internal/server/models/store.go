package models

import "time"

// Store is a provisioned retail entity owned by a user. NumCategories is the
// declared target number of categories; it is advisory only.
type Store struct {
	ID            string
	OwnerUserID   string
	Name          string
	ItemType      string
	NumCategories int
	Location      string
	CreatedAt     time.Time
}

// ItemCategory is one category label attached to a store. Several categories
// of a store may share a label.
type ItemCategory struct {
	ID          string
	StoreID     string
	OwnerUserID string
	ItemType    string
	CreatedAt   time.Time
}
