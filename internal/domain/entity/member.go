package entity

import "time"

// Member is a registered customer of the chain.
type Member struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
