package entities

import "errors"

var (
	ErrRefreshTokenMissingProperty = errors.New("REFRESH_TOKEN.NOT_CONTAIN_NEEDED_SPECIFICATION")
	ErrRefreshTokenInvalidType     = errors.New("REFRESH_TOKEN.NOT_MEET_DATA_TYPE_SPECIFICATION")
)

// NewRefreshTokenPayload validates the payload shape shared by the refresh
// and logout endpoints and returns the token string.
func NewRefreshTokenPayload(payload map[string]any) (string, error) {
	raw, ok := payload["refreshToken"]
	if !ok || raw == nil {
		return "", ErrRefreshTokenMissingProperty
	}
	token, ok := raw.(string)
	if !ok {
		return "", ErrRefreshTokenInvalidType
	}
	if token == "" {
		return "", ErrRefreshTokenMissingProperty
	}
	return token, nil
}
