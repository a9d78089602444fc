package domain

import "time"

// ProjectType classifies the intended use of a development project.
type ProjectType string

const (
	ProjectResidential ProjectType = "residential"
	ProjectCommercial  ProjectType = "commercial"
	ProjectMixedUse    ProjectType = "mixed_use"
	ProjectIndustrial  ProjectType = "industrial"
)

// ProjectStatus tracks the construction lifecycle of a project.
type ProjectStatus string

const (
	ProjectPlanning          ProjectStatus = "planning"
	ProjectUnderConstruction ProjectStatus = "under_construction"
	ProjectCompleted         ProjectStatus = "completed"
	ProjectOnHold            ProjectStatus = "on_hold"
)

// Project is a development project belonging to a developer.
type Project struct {
	ID                 string        `json:"id" bson:"_id,omitempty"`
	Name               string        `json:"name" bson:"name"`
	ProjectType        ProjectType   `json:"project_type" bson:"project_type"`
	Status             ProjectStatus `json:"status" bson:"status"`
	Location           string        `json:"location,omitempty" bson:"location,omitempty"`
	Address            string        `json:"address,omitempty" bson:"address,omitempty"`
	TotalArea          float64       `json:"total_area,omitempty" bson:"total_area,omitempty"`
	BuiltUpArea        float64       `json:"built_up_area,omitempty" bson:"built_up_area,omitempty"`
	TotalUnits         int           `json:"total_units,omitempty" bson:"total_units,omitempty"`
	PricePerSqft       float64       `json:"price_per_sqft,omitempty" bson:"price_per_sqft,omitempty"`
	TotalValue         float64       `json:"total_value,omitempty" bson:"total_value,omitempty"`
	StartDate          string        `json:"start_date,omitempty" bson:"start_date,omitempty"`
	ExpectedCompletion string        `json:"expected_completion,omitempty" bson:"expected_completion,omitempty"`
	Description        string        `json:"description,omitempty" bson:"description,omitempty"`
	Amenities          string        `json:"amenities,omitempty" bson:"amenities,omitempty"`
	DeveloperID        string        `json:"developer_id,omitempty" bson:"developer_id,omitempty"`
	IsActive           bool          `json:"is_active" bson:"is_active"`
	CreatedAt          time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at" bson:"updated_at"`
}
