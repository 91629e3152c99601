// Package api defines the wire contract of the storefront RPC service: the
// request and response messages, the gRPC service descriptor, a client stub
// and the JSON codec the messages travel with.
package api

import "time"

type RegisterRequest struct {
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Email          string  `json:"email"`
	Password       string  `json:"password"`
	ContactNumber  string  `json:"contact"`
	ProfilePicture *string `json:"profilePicture,omitempty"`
}

type RegisterResponse struct {
	UserID string `json:"userID"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	UserID string `json:"userID"`
}

type GetProfileRequest struct {
	Email string `json:"email"`
}

// Profile is the public view of an account.
type Profile struct {
	UserID         string    `json:"userID"`
	Email          string    `json:"email"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	ContactNumber  string    `json:"contact"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

type GetProfileResponse struct {
	Profile Profile `json:"profile"`
}

// UpdateProfileRequest changes the account identified by Email. Omitted
// fields are left as they are.
type UpdateProfileRequest struct {
	Email          string  `json:"email"`
	FirstName      *string `json:"firstName,omitempty"`
	LastName       *string `json:"lastName,omitempty"`
	ContactNumber  *string `json:"contact,omitempty"`
	ProfilePicture *string `json:"profilePicture,omitempty"`
	Password       *string `json:"password,omitempty"`
}

type UpdateProfileResponse struct {
	Rotated bool `json:"rotated"`
}

type CreateStoreRequest struct {
	OwnerUserID   string `json:"userID"`
	StoreName     string `json:"storeName"`
	ItemType      string `json:"itemType"`
	NumCategories int    `json:"numCategories"`
	Location      string `json:"location"`
}

type CreateStoreResponse struct {
	StoreID string `json:"storeID"`
}

type AddCategoryRequest struct {
	UserID   string `json:"userID"`
	StoreID  string `json:"storeID"`
	ItemType string `json:"itemType"`
}

type AddCategoryResponse struct{}

type ListCategoriesRequest struct {
	StoreID string `json:"storeID"`
}

type Category struct {
	CategoryID string    `json:"categoryID"`
	StoreID    string    `json:"storeID"`
	ItemType   string    `json:"itemType"`
	CreatedAt  time.Time `json:"createdAt"`
}

type ListCategoriesResponse struct {
	Categories []Category `json:"categories"`
}
