package domain

import (
	"errors"
	"time"
)

// SaleStatus is the pipeline stage of a sale.
type SaleStatus string

const (
	SaleProspecting SaleStatus = "Prospecting"
	SaleNegotiation SaleStatus = "Negotiation"
	SaleClosedWon   SaleStatus = "Closed-Won"
	SaleClosedLost  SaleStatus = "Closed-Lost"
)

var ErrSaleNotFound = errors.New("sale not found")

// Sale is a revenue opportunity tied to a customer. The sales role may only
// move Status; every other field is admin-writable.
type Sale struct {
	ID          string     `json:"id" bson:"_id,omitempty"`
	CustomerID  string     `json:"customer_id" bson:"customer_id"`
	Amount      float64    `json:"amount" bson:"amount"`
	Status      SaleStatus `json:"status" bson:"status"`
	Date        time.Time  `json:"date" bson:"date"`
	AssignedRep string     `json:"assigned_rep,omitempty" bson:"assigned_rep,omitempty"`
	CreatedAt   time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" bson:"updated_at"`
}
