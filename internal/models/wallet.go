package models

import (
	"time"

	"github.com/google/uuid"
)

// Wallet is a registered blockchain wallet. Address is the business key and
// unique across all wallets; ID and CreatedAt never change once assigned.
type Wallet struct {
	ID        uuid.UUID `json:"id"`
	Address   string    `json:"address"`
	Name      *string   `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
