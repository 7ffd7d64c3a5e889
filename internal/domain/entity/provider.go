package entity

// Provider offers a service category in the public directory, linked
// one-to-one to a User.
type Provider struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"-"`
	Name        string  `json:"name"`
	Service     string  `json:"service"`
	Email       string  `json:"email"`
	PhoneNumber *string `json:"phone_number"`
}
