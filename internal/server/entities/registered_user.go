package entities

// RegisteredUser is the immutable result of a successful registration.
type RegisteredUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
}
