package domain

import "time"

// Developer is a real-estate development company in the catalog.
type Developer struct {
	ID              string    `json:"id" bson:"_id,omitempty"`
	Name            string    `json:"name" bson:"name"`
	ContactPerson   string    `json:"contact_person,omitempty" bson:"contact_person,omitempty"`
	Email           string    `json:"email,omitempty" bson:"email,omitempty"`
	Phone           string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Address         string    `json:"address,omitempty" bson:"address,omitempty"`
	Website         string    `json:"website,omitempty" bson:"website,omitempty"`
	EstablishedYear string    `json:"established_year,omitempty" bson:"established_year,omitempty"`
	TotalProjects   string    `json:"total_projects,omitempty" bson:"total_projects,omitempty"`
	Description     string    `json:"description,omitempty" bson:"description,omitempty"`
	IsActive        bool      `json:"is_active" bson:"is_active"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" bson:"updated_at"`
}
