package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// NewUser is the input of user creation. Password is plaintext and never stored.
type NewUser struct {
	Name        string `json:"name"`
	Email       string `json:"email" validate:"crm_email"`
	Password    string `json:"password" validate:"min=8"`
	Department  string `json:"department" validate:"department"`
	Role        Role   `json:"role" validate:"role"`
	IsSuperuser bool   `json:"is_superuser"`
}

// UserUpdate is the input of a partial user update; nil fields are left untouched.
type UserUpdate struct {
	Name       *string `json:"name"`
	Email      *string `json:"email" validate:"omitnil,crm_email"`
	Password   *string `json:"password" validate:"omitnil,min=8"`
	Department *string `json:"department" validate:"omitnil,department"`
	Role       *Role   `json:"role" validate:"omitnil,role"`
}

// UserPatch is what gets persisted for a user update. PwdHash replaces the plaintext password.
type UserPatch struct {
	Name       *string
	Email      *string
	PwdHash    *string
	Department *string
	Role       *Role
}

// Empty reports whether no field is set.
func (p UserPatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.PwdHash == nil && p.Department == nil && p.Role == nil
}

// Apply copies every set field onto u.
func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.PwdHash != nil {
		u.PwdHash = *p.PwdHash
	}
	if p.Department != nil {
		u.Department = *p.Department
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
}

// NewClient is the input of client creation.
type NewClient struct {
	Name        string `json:"name" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"has_digit"`
	Email       string `json:"email" validate:"crm_email"`
	CompanyName string `json:"company_name" validate:"required"`
}

// ClientPatch is a partial client update. The sales contact cannot be changed through it.
type ClientPatch struct {
	Name        *string `json:"name" validate:"omitnil,min=1"`
	PhoneNumber *string `json:"phone_number" validate:"omitnil,has_digit"`
	Email       *string `json:"email" validate:"omitnil,crm_email"`
	CompanyName *string `json:"company_name" validate:"omitnil,min=1"`
}

// Empty reports whether no field is set.
func (p ClientPatch) Empty() bool {
	return p.Name == nil && p.PhoneNumber == nil && p.Email == nil && p.CompanyName == nil
}

// Apply copies every set field onto c.
func (p ClientPatch) Apply(c *Client) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.PhoneNumber != nil {
		c.PhoneNumber = *p.PhoneNumber
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.CompanyName != nil {
		c.CompanyName = *p.CompanyName
	}
}

// NewContract is the input of contract creation. An empty Status means pending.
type NewContract struct {
	ClientID        uuid.UUID
	TotalAmount     decimal.Decimal
	RemainingAmount decimal.Decimal
	Status          ContractStatus
}

// ContractPatch is a partial contract update. The client link is immutable.
type ContractPatch struct {
	Status          *ContractStatus
	TotalAmount     *decimal.Decimal
	RemainingAmount *decimal.Decimal
}

// Empty reports whether no field is set.
func (p ContractPatch) Empty() bool {
	return p.Status == nil && p.TotalAmount == nil && p.RemainingAmount == nil
}

// Apply copies every set field onto c.
func (p ContractPatch) Apply(c *Contract) {
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.TotalAmount != nil {
		c.TotalAmount = *p.TotalAmount
	}
	if p.RemainingAmount != nil {
		c.RemainingAmount = *p.RemainingAmount
	}
}

// NewEvent is the input of event creation.
type NewEvent struct {
	ContractID uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
	Location   string
	Attendees  int
	Notes      *string
}

// EventPatch is a partial event update. Contract and support links are not patchable.
type EventPatch struct {
	StartDate *time.Time
	EndDate   *time.Time
	Location  *string
	Attendees *int
	Notes     *string
}

// Empty reports whether no field is set.
func (p EventPatch) Empty() bool {
	return p.StartDate == nil && p.EndDate == nil && p.Location == nil && p.Attendees == nil && p.Notes == nil
}

// Apply copies every set field onto e.
func (p EventPatch) Apply(e *Event) {
	if p.StartDate != nil {
		e.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		e.EndDate = *p.EndDate
	}
	if p.Location != nil {
		e.Location = *p.Location
	}
	if p.Attendees != nil {
		e.Attendees = *p.Attendees
	}
	if p.Notes != nil {
		e.Notes = p.Notes
	}
}
