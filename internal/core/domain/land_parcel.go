package domain

import "time"

// LandType classifies the zoning of a land parcel.
type LandType string

const (
	LandAgricultural LandType = "agricultural"
	LandResidential  LandType = "residential"
	LandCommercial   LandType = "commercial"
	LandIndustrial   LandType = "industrial"
	LandMixed        LandType = "mixed"
)

// LandParcel is a registered plot of land identified by its survey number,
// which is unique across the collection.
type LandParcel struct {
	ID               string            `json:"id" bson:"_id,omitempty"`
	SurveyNumber     string            `json:"survey_number" bson:"survey_number"`
	Village          string            `json:"village,omitempty" bson:"village,omitempty"`
	District         string            `json:"district,omitempty" bson:"district,omitempty"`
	State            string            `json:"state,omitempty" bson:"state,omitempty"`
	AreaAcres        float64           `json:"area_acres,omitempty" bson:"area_acres,omitempty"`
	AreaSqft         float64           `json:"area_sqft,omitempty" bson:"area_sqft,omitempty"`
	LandType         LandType          `json:"land_type,omitempty" bson:"land_type,omitempty"`
	OwnerName        string            `json:"owner_name,omitempty" bson:"owner_name,omitempty"`
	OwnerContact     string            `json:"owner_contact,omitempty" bson:"owner_contact,omitempty"`
	PricePerAcre     float64           `json:"price_per_acre,omitempty" bson:"price_per_acre,omitempty"`
	TotalValue       float64           `json:"total_value,omitempty" bson:"total_value,omitempty"`
	RegistrationDate string            `json:"registration_date,omitempty" bson:"registration_date,omitempty"`
	Documents        map[string]string `json:"documents,omitempty" bson:"documents,omitempty"`
	Notes            string            `json:"notes,omitempty" bson:"notes,omitempty"`
	IsActive         bool              `json:"is_active" bson:"is_active"`
	CreatedAt        time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at" bson:"updated_at"`
}
