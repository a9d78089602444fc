package domain

import "time"

// LeadStatus represents the sales pipeline stage of a lead.
type LeadStatus string

const (
	LeadNew         LeadStatus = "new"
	LeadContacted   LeadStatus = "contacted"
	LeadQualified   LeadStatus = "qualified"
	LeadProposal    LeadStatus = "proposal"
	LeadNegotiation LeadStatus = "negotiation"
	LeadClosedWon   LeadStatus = "closed_won"
	LeadClosedLost  LeadStatus = "closed_lost"
)

// LeadSource records where a lead originated.
type LeadSource string

const (
	SourceWebsite       LeadSource = "website"
	SourceReferral      LeadSource = "referral"
	SourceSocialMedia   LeadSource = "social_media"
	SourceAdvertisement LeadSource = "advertisement"
	SourceColdCall      LeadSource = "cold_call"
	SourceOther         LeadSource = "other"
)

// Lead is an ownership-scoped sales prospect: non-admin employees may only
// act on leads whose AssignedEmployeeID matches their own identifier.
type Lead struct {
	ID                 string     `json:"id" bson:"_id,omitempty"`
	Name               string     `json:"name" bson:"name"`
	Email              string     `json:"email,omitempty" bson:"email,omitempty"`
	Phone              string     `json:"phone,omitempty" bson:"phone,omitempty"`
	Company            string     `json:"company,omitempty" bson:"company,omitempty"`
	Status             LeadStatus `json:"status" bson:"status"`
	Source             LeadSource `json:"source" bson:"source"`
	Budget             float64    `json:"budget,omitempty" bson:"budget,omitempty"`
	Requirements       string     `json:"requirements,omitempty" bson:"requirements,omitempty"`
	Notes              string     `json:"notes,omitempty" bson:"notes,omitempty"`
	AssignedEmployeeID string     `json:"assigned_employee_id,omitempty" bson:"assigned_employee_id,omitempty"`
	IsActive           bool       `json:"is_active" bson:"is_active"`
	CreatedAt          time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at" bson:"updated_at"`
}
