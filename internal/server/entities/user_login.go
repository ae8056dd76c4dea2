package entities

import "errors"

var (
	ErrUserLoginMissingProperty = errors.New("USER_LOGIN.NOT_CONTAIN_NEEDED_PROPERTY")
	ErrUserLoginInvalidType     = errors.New("USER_LOGIN.NOT_MEET_DATA_TYPE_SPECIFICATION")
)

// UserLogin is a validated credential payload.
type UserLogin struct {
	Username string
	Password string
}

// NewUserLogin validates a raw login payload.
func NewUserLogin(payload map[string]any) (*UserLogin, error) {
	username, err := stringProperty(payload, "username", ErrUserLoginMissingProperty, ErrUserLoginInvalidType)
	if err != nil {
		return nil, err
	}
	password, err := stringProperty(payload, "password", ErrUserLoginMissingProperty, ErrUserLoginInvalidType)
	if err != nil {
		return nil, err
	}
	return &UserLogin{Username: username, Password: password}, nil
}
