package handler

import (
	"github.com/estateops/crm-backend/internal/core/domain"
	"github.com/estateops/crm-backend/internal/core/ports"
)

type createEnquiryRequest struct {
	Subject            string  `json:"subject"              validate:"required"`
	EnquiryType        string  `json:"enquiry_type"         validate:"omitempty,oneof=purchase rental investment general"`
	Status             string  `json:"status"               validate:"omitempty,oneof=open in_progress resolved closed"`
	CustomerName       string  `json:"customer_name"`
	CustomerEmail      string  `json:"customer_email"       validate:"omitempty,email"`
	CustomerPhone      string  `json:"customer_phone"`
	Budget             float64 `json:"budget"               validate:"omitempty,gt=0"`
	PreferredLocation  string  `json:"preferred_location"`
	Requirements       string  `json:"requirements"`
	Description        string  `json:"description"`
	AssignedEmployeeID string  `json:"assigned_employee_id"`
}

type updateEnquiryRequest struct {
	Subject            *string  `json:"subject"`
	EnquiryType        *string  `json:"enquiry_type"   validate:"omitempty,oneof=purchase rental investment general"`
	Status             *string  `json:"status"         validate:"omitempty,oneof=open in_progress resolved closed"`
	CustomerName       *string  `json:"customer_name"`
	CustomerEmail      *string  `json:"customer_email" validate:"omitempty,email"`
	CustomerPhone      *string  `json:"customer_phone"`
	Budget             *float64 `json:"budget"         validate:"omitempty,gt=0"`
	PreferredLocation  *string  `json:"preferred_location"`
	Requirements       *string  `json:"requirements"`
	Description        *string  `json:"description"`
	Response           *string  `json:"response"`
	AssignedEmployeeID *string  `json:"assigned_employee_id"`
}

type listEnquiriesResponse struct {
	Data       []*domain.Enquiry  `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

func (r createEnquiryRequest) toDomain() *domain.Enquiry {
	return &domain.Enquiry{
		Subject:            r.Subject,
		EnquiryType:        domain.EnquiryType(r.EnquiryType),
		Status:             domain.EnquiryStatus(r.Status),
		CustomerName:       r.CustomerName,
		CustomerEmail:      r.CustomerEmail,
		CustomerPhone:      r.CustomerPhone,
		Budget:             r.Budget,
		PreferredLocation:  r.PreferredLocation,
		Requirements:       r.Requirements,
		Description:        r.Description,
		AssignedEmployeeID: r.AssignedEmployeeID,
	}
}

func (r updateEnquiryRequest) toUpdate() (upd ports.EnquiryUpdate) {
	upd.Subject = r.Subject
	if r.EnquiryType != nil {
		t := domain.EnquiryType(*r.EnquiryType)
		upd.EnquiryType = &t
	}
	if r.Status != nil {
		s := domain.EnquiryStatus(*r.Status)
		upd.Status = &s
	}
	upd.CustomerName = r.CustomerName
	upd.CustomerEmail = r.CustomerEmail
	upd.CustomerPhone = r.CustomerPhone
	upd.Budget = r.Budget
	upd.PreferredLocation = r.PreferredLocation
	upd.Requirements = r.Requirements
	upd.Description = r.Description
	upd.Response = r.Response
	upd.AssignedEmployeeID = r.AssignedEmployeeID
	return upd
}
