package domain

import (
	"errors"
	"time"
)

// LeadSource identifies where a lead came from.
type LeadSource string

const (
	SourceReferral LeadSource = "Referral"
	SourceAds      LeadSource = "Ads"
	SourceWeb      LeadSource = "Web"
	SourceOther    LeadSource = "Other"
)

// LeadStatus is the qualification state of a lead.
type LeadStatus string

const (
	LeadNew       LeadStatus = "New"
	LeadContacted LeadStatus = "Contacted"
	LeadQualified LeadStatus = "Qualified"
	LeadLost      LeadStatus = "Lost"
)

var ErrLeadNotFound = errors.New("lead not found")

// ContactInfo holds a lead's reachable contact points.
type ContactInfo struct {
	Email string `json:"email,omitempty" bson:"email,omitempty"`
	Phone string `json:"phone,omitempty" bson:"phone,omitempty"`
}

// Lead is a prospective customer. Unlike Customer, assigned_rep is not
// checked against the users collection here (observed asymmetry, kept).
type Lead struct {
	ID          string      `json:"id" bson:"_id,omitempty"`
	Name        string      `json:"name" bson:"name"`
	ContactInfo ContactInfo `json:"contact_info" bson:"contact_info"`
	Source      LeadSource  `json:"source" bson:"source"`
	Status      LeadStatus  `json:"status" bson:"status"`
	AssignedRep string      `json:"assigned_rep,omitempty" bson:"assigned_rep,omitempty"`
	CustomerID  string      `json:"customer_id,omitempty" bson:"customer_id,omitempty"`
	Notes       string      `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt   time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at" bson:"updated_at"`
}
