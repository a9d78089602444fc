package domain

import "time"

// PropertyType classifies the physical kind of an inventory unit.
type PropertyType string

const (
	PropertyApartment PropertyType = "apartment"
	PropertyVilla     PropertyType = "villa"
	PropertyPlot      PropertyType = "plot"
	PropertyOffice    PropertyType = "office"
	PropertyShop      PropertyType = "shop"
	PropertyWarehouse PropertyType = "warehouse"
)

// UnitStatus tracks the sales state of an inventory unit.
type UnitStatus string

const (
	UnitAvailable UnitStatus = "available"
	UnitSold      UnitStatus = "sold"
	UnitReserved  UnitStatus = "reserved"
	UnitBlocked   UnitStatus = "blocked"
)

// InventoryUnit is a sellable unit within a project.
type InventoryUnit struct {
	ID           string       `json:"id" bson:"_id,omitempty"`
	UnitNumber   string       `json:"unit_number" bson:"unit_number"`
	PropertyType PropertyType `json:"property_type" bson:"property_type"`
	Status       UnitStatus   `json:"status" bson:"status"`
	Floor        string       `json:"floor,omitempty" bson:"floor,omitempty"`
	Area         float64      `json:"area,omitempty" bson:"area,omitempty"`
	Price        float64      `json:"price,omitempty" bson:"price,omitempty"`
	PricePerSqft float64      `json:"price_per_sqft,omitempty" bson:"price_per_sqft,omitempty"`
	Bedrooms     int          `json:"bedrooms,omitempty" bson:"bedrooms,omitempty"`
	Bathrooms    int          `json:"bathrooms,omitempty" bson:"bathrooms,omitempty"`
	Parking      bool         `json:"parking" bson:"parking"`
	Facing       string       `json:"facing,omitempty" bson:"facing,omitempty"`
	Description  string       `json:"description,omitempty" bson:"description,omitempty"`
	ProjectID    string       `json:"project_id,omitempty" bson:"project_id,omitempty"`
	IsActive     bool         `json:"is_active" bson:"is_active"`
	CreatedAt    time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at" bson:"updated_at"`
}
