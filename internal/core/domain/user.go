package domain

import (
	"errors"
	"regexp"
)

var ErrInvalidInput = errors.New("invalid input")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("userId doesn't match any user ids")

// usernamePattern is the full set of characters a username may contain.
var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// userIDPattern matches a store-native id: 24 lowercase hex characters.
var userIDPattern = regexp.MustCompile(`^[a-f0-9]{24}$`)

// User is a registered account. ID is assigned by the store on creation and
// never changes; users are never deleted.
type User struct {
	ID       string `json:"id" bson:"_id,omitempty"`
	Username string `json:"username" bson:"username"`
}

// ValidUsername reports whether s is an acceptable username.
func ValidUsername(s string) bool {
	return usernamePattern.MatchString(s)
}

// ValidUserID reports whether s is a well-formed store id.
func ValidUserID(s string) bool {
	return userIDPattern.MatchString(s)
}
