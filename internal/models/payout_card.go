package models

import "time"

// PayoutCard is a tokenized destination card for VND withdrawals.
// Only the token and display metadata are stored.
type PayoutCard struct {
	ID        uint   `gorm:"primarykey"`
	UserID    uint   `gorm:"index;not null"`
	CardToken string `gorm:"not null"`
	CardType  string
	LastFour  string
	Status    string `gorm:"default:'active'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreatePayoutCardInput is the request payload for card tokenization.
type CreatePayoutCardInput struct {
	CardNumber  string `json:"card_number"`
	ExpiryMonth string `json:"expiry_month"`
	ExpiryYear  string `json:"expiry_year"`
	CVV         string `json:"cvv"`
}
