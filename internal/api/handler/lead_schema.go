package handler

import (
	"github.com/estateops/crm-backend/internal/core/domain"
	"github.com/estateops/crm-backend/internal/core/ports"
)

type createLeadRequest struct {
	Name               string  `json:"name"                 validate:"required"`
	Email              string  `json:"email"                validate:"omitempty,email"`
	Phone              string  `json:"phone"`
	Company            string  `json:"company"`
	Status             string  `json:"status"               validate:"omitempty,oneof=new contacted qualified proposal negotiation closed_won closed_lost"`
	Source             string  `json:"source"               validate:"omitempty,oneof=website referral social_media advertisement cold_call other"`
	Budget             float64 `json:"budget"               validate:"omitempty,gt=0"`
	Requirements       string  `json:"requirements"`
	Notes              string  `json:"notes"`
	AssignedEmployeeID string  `json:"assigned_employee_id"`
}

// updateLeadRequest is a PATCH-style partial update: absent fields stay
// untouched, which is why everything is a pointer.
type updateLeadRequest struct {
	Name               *string  `json:"name"`
	Email              *string  `json:"email"  validate:"omitempty,email"`
	Phone              *string  `json:"phone"`
	Company            *string  `json:"company"`
	Status             *string  `json:"status" validate:"omitempty,oneof=new contacted qualified proposal negotiation closed_won closed_lost"`
	Source             *string  `json:"source" validate:"omitempty,oneof=website referral social_media advertisement cold_call other"`
	Budget             *float64 `json:"budget" validate:"omitempty,gt=0"`
	Requirements       *string  `json:"requirements"`
	Notes              *string  `json:"notes"`
	AssignedEmployeeID *string  `json:"assigned_employee_id"`
}

type listLeadsResponse struct {
	Data       []*domain.Lead     `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

func (r createLeadRequest) toDomain() *domain.Lead {
	return &domain.Lead{
		Name:               r.Name,
		Email:              r.Email,
		Phone:              r.Phone,
		Company:            r.Company,
		Status:             domain.LeadStatus(r.Status),
		Source:             domain.LeadSource(r.Source),
		Budget:             r.Budget,
		Requirements:       r.Requirements,
		Notes:              r.Notes,
		AssignedEmployeeID: r.AssignedEmployeeID,
	}
}

func (r updateLeadRequest) toUpdate() (upd ports.LeadUpdate) {
	upd.Name = r.Name
	upd.Email = r.Email
	upd.Phone = r.Phone
	upd.Company = r.Company
	if r.Status != nil {
		s := domain.LeadStatus(*r.Status)
		upd.Status = &s
	}
	if r.Source != nil {
		s := domain.LeadSource(*r.Source)
		upd.Source = &s
	}
	upd.Budget = r.Budget
	upd.Requirements = r.Requirements
	upd.Notes = r.Notes
	upd.AssignedEmployeeID = r.AssignedEmployeeID
	return upd
}
