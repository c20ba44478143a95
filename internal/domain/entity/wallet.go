package entity

import (
	"time"
)

type TransactionType string

const (
	TransactionCredit TransactionType = "credit"
	TransactionDebit  TransactionType = "debit"
)

const (
	TransactionPending   = "pending"
	TransactionCompleted = "completed"
	TransactionFailed    = "failed"
)

const CurrencyINR = "INR"

type WalletTransaction struct {
	ID          string          `json:"id" firestore:"id"`
	Type        TransactionType `json:"type" firestore:"type"`
	Amount      int64           `json:"amount" firestore:"amount"`
	Description string          `json:"description" firestore:"description"`
	OrderID     string          `json:"orderId,omitempty" firestore:"orderId,omitempty"`
	Status      string          `json:"status" firestore:"status"`
	CreatedAt   time.Time       `json:"createdAt" firestore:"createdAt"`
}

// Wallet balances are whole rupees. TotalBalance only moves together with a new
// Transactions entry.
type Wallet struct {
	PartnerID    string              `json:"partnerId" firestore:"partnerId"`
	TotalBalance int64               `json:"totalBalance" firestore:"totalBalance"`
	Currency     string              `json:"currency" firestore:"currency"`
	IsActive     bool                `json:"isActive" firestore:"isActive"`
	Transactions []WalletTransaction `json:"transactions" firestore:"transactions"`
	CreatedAt    time.Time           `json:"createdAt" firestore:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt" firestore:"updatedAt"`
}
