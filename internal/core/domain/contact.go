package domain

import "time"

// ContactType classifies the business relationship with a contact.
type ContactType string

const (
	ContactClient   ContactType = "client"
	ContactVendor   ContactType = "vendor"
	ContactPartner  ContactType = "partner"
	ContactInvestor ContactType = "investor"
	ContactOther    ContactType = "other"
)

// Contact is an address-book entry shared across the whole team.
type Contact struct {
	ID             string      `json:"id" bson:"_id,omitempty"`
	Name           string      `json:"name" bson:"name"`
	Company        string      `json:"company,omitempty" bson:"company,omitempty"`
	ContactType    ContactType `json:"contact_type" bson:"contact_type"`
	Email          string      `json:"email,omitempty" bson:"email,omitempty"`
	Phone          string      `json:"phone,omitempty" bson:"phone,omitempty"`
	AlternatePhone string      `json:"alternate_phone,omitempty" bson:"alternate_phone,omitempty"`
	Address        string      `json:"address,omitempty" bson:"address,omitempty"`
	City           string      `json:"city,omitempty" bson:"city,omitempty"`
	State          string      `json:"state,omitempty" bson:"state,omitempty"`
	Pincode        string      `json:"pincode,omitempty" bson:"pincode,omitempty"`
	Notes          string      `json:"notes,omitempty" bson:"notes,omitempty"`
	IsActive       bool        `json:"is_active" bson:"is_active"`
	CreatedAt      time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at" bson:"updated_at"`
}
