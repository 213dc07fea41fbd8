package domain

import (
	"errors"
	"time"
)

var ErrCustomerNotFound = errors.New("customer not found")
var ErrCustomerExists = errors.New("customer already exists")

// ErrInvalidAssignedRep is returned when assigned_rep does not resolve to an
// existing user with the sales role. The check runs before any write.
var ErrInvalidAssignedRep = errors.New("invalid assigned representative")

// Customer is a CRM account record. AssignedRep, when set, must reference a
// user with the sales role (enforced on create and update).
type Customer struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Email       string    `json:"email" bson:"email"`
	Phone       string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Company     string    `json:"company,omitempty" bson:"company,omitempty"`
	Address     string    `json:"address,omitempty" bson:"address,omitempty"`
	AssignedRep string    `json:"assigned_rep,omitempty" bson:"assigned_rep,omitempty"`
	Notes       string    `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
