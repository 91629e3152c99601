package models

import "time"

// User is a registered identity. ID is the external identifier handed to
// clients; it is never the storage engine's row key.
type User struct {
	ID             string
	Email          string
	PasswordHash   string
	FirstName      string
	LastName       string
	ContactNumber  string
	ProfilePicture string
	CreatedAt      time.Time
}

// UserView is the public projection of a User. It never carries the
// password hash.
type UserView struct {
	UserID         string    `json:"userID"`
	Email          string    `json:"email"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	ContactNumber  string    `json:"contact"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// View projects u for callers.
func (u *User) View() UserView {
	return UserView{
		UserID:         u.ID,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		ContactNumber:  u.ContactNumber,
		ProfilePicture: u.ProfilePicture,
		CreatedAt:      u.CreatedAt,
	}
}

// UserPatch is a partial update of a User. A nil field is left unchanged.
type UserPatch struct {
	FirstName      *string
	LastName       *string
	ContactNumber  *string
	ProfilePicture *string
	PasswordHash   *string
}

// Empty reports whether the patch changes nothing.
func (p UserPatch) Empty() bool {
	return p.FirstName == nil && p.LastName == nil && p.ContactNumber == nil &&
		p.ProfilePicture == nil && p.PasswordHash == nil
}

// Apply merges p into u in place.
func (p UserPatch) Apply(u *User) {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.ContactNumber != nil {
		u.ContactNumber = *p.ContactNumber
	}
	if p.ProfilePicture != nil {
		u.ProfilePicture = *p.ProfilePicture
	}
	if p.PasswordHash != nil {
		u.PasswordHash = *p.PasswordHash
	}
}
