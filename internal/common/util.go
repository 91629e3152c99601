package common

import "github.com/google/uuid"

// IDGenerator produces external identifiers (userID, storeID, categoryID).
// Identifiers are independent of any storage-native row key.
type IDGenerator func() string

// NewID returns a random (version 4) UUID in its canonical string form.
func NewID() string {
	return uuid.NewString()
}

// WipeByteArray overwrites the contents of b with zeros. It is used to drop
// plaintext passwords read from the terminal once they are no longer needed.
// A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
