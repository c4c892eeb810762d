package models

import "gorm.io/gorm"

// Transaction records a verified payment against either a user
// (general event) or a team identifier (MUN). TxnID is the gateway's
// payment identifier and doubles as the idempotency key: a duplicate
// callback is rejected before a second row can appear, with the
// unique constraint as the authoritative backstop.
type Transaction struct {
	gorm.Model
	Type              TransactionType `json:"type"`
	UserID            *uint           `json:"userId" gorm:"unique"`
	TeamID            *string         `json:"teamId" gorm:"unique;size:36"`
	TxnID             string          `json:"txnId" gorm:"unique"`
	Amount            int             `json:"amount"`
	PaymentMethod     PaymentMethod   `json:"paymentMethod"`
	PaymentScreenshot string          `json:"paymentScreenshot"`
	IsVerified        bool            `json:"isVerified"`
}
