package entities

import (
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
)

var (
	ErrRegisterUserMissingProperty = errors.New("REGISTER_USER.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrRegisterUserInvalidType     = errors.New("REGISTER_USER.NOT_MEET_DATA_TYPE_SPECIFICATION")
	ErrUsernameLimitChar           = errors.New("REGISTER_USER.USERNAME_LIMIT_CHAR")
	ErrUsernameRestrictedChar      = errors.New("REGISTER_USER.USERNAME_CONTAIN_RESTRICTED_CHARACTER")
)

const usernameMaxLength = 50

var usernamePattern = regexp.MustCompile(`^\w+$`)

// RegisterUser is a validated registration payload. The password is the
// plaintext as submitted; hashing happens in the use case before persistence.
type RegisterUser struct {
	Username string
	Password string
	Fullname string
}

// NewRegisterUser validates a raw registration payload.
func NewRegisterUser(payload map[string]any) (*RegisterUser, error) {
	username, err := stringProperty(payload, "username", ErrRegisterUserMissingProperty, ErrRegisterUserInvalidType)
	if err != nil {
		return nil, err
	}
	password, err := stringProperty(payload, "password", ErrRegisterUserMissingProperty, ErrRegisterUserInvalidType)
	if err != nil {
		return nil, err
	}
	fullname, err := stringProperty(payload, "fullname", ErrRegisterUserMissingProperty, ErrRegisterUserInvalidType)
	if err != nil {
		return nil, err
	}

	if err := validation.Validate(username, validation.Length(0, usernameMaxLength)); err != nil {
		return nil, ErrUsernameLimitChar
	}
	if err := validation.Validate(username, validation.Match(usernamePattern)); err != nil {
		return nil, ErrUsernameRestrictedChar
	}

	return &RegisterUser{Username: username, Password: password, Fullname: fullname}, nil
}
