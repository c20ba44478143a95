package entity

import (
	"time"
)

var (
	PaymentStatuses  = []string{"Pending", "Paid", "Failed", "Refunded"}
	ShippingStatuses = []string{"Pending", "Confirmed", "Processing", "Shipped", "Out for Delivery", "Delivered", "Cancelled", "Returned"}
	RefundStatuses   = []string{"Pending", "Approved", "Rejected", "Processed", "Initiated"}
	ExchangeStatuses = []string{"Pending", "Approved", "Rejected", "Shipped", "Shiprocket_Shipped"}
)

type OrderLine struct {
	ItemDetailID string `json:"itemDetailId" firestore:"itemDetailId"`
	Color        string `json:"color,omitempty" firestore:"color"`
	Size         string `json:"size,omitempty" firestore:"size"`
}

type Refund struct {
	RequestDate         *time.Time `json:"requestDate,omitempty" firestore:"requestDate"`
	Status              string     `json:"status" firestore:"status"`
	Amount              *float64   `json:"amount,omitempty" firestore:"amount"`
	Reason              string     `json:"reason,omitempty" firestore:"reason"`
	RefundTransactionID string     `json:"refundTransactionId,omitempty" firestore:"refundTransactionId"`
	RefundStatus        string     `json:"refundStatus,omitempty" firestore:"refundStatus"`
	Notes               string     `json:"notes,omitempty" firestore:"notes"`
}

type Exchange struct {
	RequestDate *time.Time `json:"requestDate,omitempty" firestore:"requestDate"`
	Status      string     `json:"status" firestore:"status"`
	NewItemID   string     `json:"newItemId,omitempty" firestore:"newItemId"`
	Notes       string     `json:"notes,omitempty" firestore:"notes"`
}

// Order stores payment gateway identifiers as given; they are never verified here.
type Order struct {
	ID                string      `json:"id" firestore:"id"`
	UserID            string      `json:"userId" firestore:"userId"`
	Items             []OrderLine `json:"items" firestore:"items"`
	TotalPrice        float64     `json:"totalPrice" firestore:"totalPrice"`
	ShippingAddressID string      `json:"shippingAddress,omitempty" firestore:"shippingAddressId"`
	PaymentStatus     string      `json:"paymentStatus" firestore:"paymentStatus"`
	RazorpayOrderID   string      `json:"razorpayOrderId" firestore:"razorpayOrderId"`
	RazorpayPaymentID string      `json:"razorpayPaymentId" firestore:"razorpayPaymentId"`
	RazorpaySignature string      `json:"razorpaySignature" firestore:"razorpaySignature"`
	ShippingStatus    string      `json:"shippingStatus" firestore:"shippingStatus"`
	SKUID             string      `json:"skuId,omitempty" firestore:"skuId"`
	Refund            *Refund     `json:"refund,omitempty" firestore:"refund"`
	Exchange          *Exchange   `json:"exchange,omitempty" firestore:"exchange"`
	CreatedAt         time.Time   `json:"createdAt" firestore:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt" firestore:"updatedAt"`
}

func OneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if a == value {
			return true
		}
	}
	return false
}
