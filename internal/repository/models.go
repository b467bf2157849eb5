package repository

import "time"

// ActionRecord is one settled desk action, kept for the account's history view.
type ActionRecord struct {
	ID        string    `gorm:"primaryKey;autoIncrement:false"`
	Account   string    `gorm:"size:42;not null;index"` // Ethereum address (0x + 40 hex)
	Action    string    `gorm:"size:20;not null"`       // stake, borrow, repay, ...
	TxHash    string    `gorm:"size:66"`                // empty when the submission never reached the chain
	Status    string    `gorm:"size:12;not null"`       // succeeded or failed
	ChainID   uint64    `gorm:"not null"`
	Message   string    `gorm:"type:text"` // user-facing settle message
	CreatedAt time.Time `gorm:"not null;index"`
}

// Nonce is a one-time challenge an account signs to authenticate. Consumed on
// first use.
type Nonce struct {
	Account   string `gorm:"primaryKey;size:42"`
	Value     string `gorm:"size:64;not null"`
	CreatedAt time.Time
}
