package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// User validation errors. All wrap ErrValidation so callers can match the
// category without naming each field.
var (
	ErrEmptyUserID         = fmt.Errorf("%w: user ID cannot be empty", ErrValidation)
	ErrUserNameTooShort    = fmt.Errorf("%w: username must be at least 3 characters long", ErrValidation)
	ErrUserNameTooLong     = fmt.Errorf("%w: username must be at most 50 characters long", ErrValidation)
	ErrPasswordTooShort    = fmt.Errorf("%w: password must be at least 8 characters long", ErrValidation)
	ErrPasswordTooLong     = fmt.Errorf("%w: password must be at most 100 characters long", ErrValidation)
	ErrEmptyPassword       = fmt.Errorf("%w: password cannot be empty", ErrValidation)
	ErrEmptyHashedPassword = fmt.Errorf("%w: hashed password cannot be empty", ErrValidation)
)

// Username and password length bounds.
const (
	MinUserNameLength = 3
	MaxUserNameLength = 50
	MinPasswordLength = 8
	MaxPasswordLength = 100
)

// User represents a registered user of the task manager.
// The username is unique across all users at all times.
type User struct {
	ID             uuid.UUID `json:"id"`
	UserName       string    `json:"userName"`
	Password       string    `json:"-"` // Plaintext password, used temporarily during registration/updates
	HashedPassword string    `json:"-"` // Never expose the password hash in JSON
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// NewUser creates a new User with the given username and password.
// It generates a new UUID for the user ID and sets the creation/update
// timestamps. Returns an error if validation fails.
//
// NOTE: This function only sets up the user structure with the plaintext
// password. The caller is responsible for hashing the password before
// storing the user.
func NewUser(userName, password string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:        uuid.New(),
		UserName:  userName,
		Password:  password, // Plaintext password - must be hashed before storage
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if len(u.UserName) < MinUserNameLength {
		return ErrUserNameTooShort
	}
	if len(u.UserName) > MaxUserNameLength {
		return ErrUserNameTooLong
	}

	if u.Password != "" {
		if len(u.Password) < MinPasswordLength {
			return ErrPasswordTooShort
		}
		if len(u.Password) > MaxPasswordLength {
			return ErrPasswordTooLong
		}
	} else {
		// When no plaintext password is provided, the user must already
		// carry a hashed password (existing users loaded from the store).
		if u.HashedPassword == "" {
			return ErrEmptyPassword
		}
	}

	return nil
}
