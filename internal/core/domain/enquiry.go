package domain

import "time"

// EnquiryStatus tracks the handling state of a customer enquiry.
type EnquiryStatus string

const (
	EnquiryOpen       EnquiryStatus = "open"
	EnquiryInProgress EnquiryStatus = "in_progress"
	EnquiryResolved   EnquiryStatus = "resolved"
	EnquiryClosed     EnquiryStatus = "closed"
)

// EnquiryType classifies what the customer is asking about.
type EnquiryType string

const (
	EnquiryPurchase   EnquiryType = "purchase"
	EnquiryRental     EnquiryType = "rental"
	EnquiryInvestment EnquiryType = "investment"
	EnquiryGeneral    EnquiryType = "general"
)

// Enquiry is an ownership-scoped customer enquiry assigned to one employee.
type Enquiry struct {
	ID                 string        `json:"id" bson:"_id,omitempty"`
	Subject            string        `json:"subject" bson:"subject"`
	EnquiryType        EnquiryType   `json:"enquiry_type" bson:"enquiry_type"`
	Status             EnquiryStatus `json:"status" bson:"status"`
	CustomerName       string        `json:"customer_name,omitempty" bson:"customer_name,omitempty"`
	CustomerEmail      string        `json:"customer_email,omitempty" bson:"customer_email,omitempty"`
	CustomerPhone      string        `json:"customer_phone,omitempty" bson:"customer_phone,omitempty"`
	Budget             float64       `json:"budget,omitempty" bson:"budget,omitempty"`
	PreferredLocation  string        `json:"preferred_location,omitempty" bson:"preferred_location,omitempty"`
	Requirements       string        `json:"requirements,omitempty" bson:"requirements,omitempty"`
	Description        string        `json:"description,omitempty" bson:"description,omitempty"`
	Response           string        `json:"response,omitempty" bson:"response,omitempty"`
	AssignedEmployeeID string        `json:"assigned_employee_id,omitempty" bson:"assigned_employee_id,omitempty"`
	IsActive           bool          `json:"is_active" bson:"is_active"`
	CreatedAt          time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at" bson:"updated_at"`
}
