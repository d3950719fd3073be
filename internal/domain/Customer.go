package domain

import (
	"time"
)

type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Company   *string   `json:"company"`
	Email     *string   `json:"email"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UpdateCustomerRequest struct {
	ID      string  `json:"id"`
	Name    *string `json:"name"`
	Company *string `json:"company"`
	Email   *string `json:"email"`
	Active  *bool   `json:"active"`
}
