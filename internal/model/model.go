// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Role is the closed set of collaborator roles.
type Role string

const (
	RoleSales   Role = "sales"
	RoleSupport Role = "support"
	RoleGestion Role = "gestion"
)

// Roles lists every known role in display order.
var Roles = []Role{RoleSales, RoleSupport, RoleGestion}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSales, RoleSupport, RoleGestion:
		return true
	}
	return false
}

// ContractStatus is the contract lifecycle state.
type ContractStatus string

const (
	StatusPending ContractStatus = "pending"
	StatusSigned  ContractStatus = "signed"
)

// Valid reports whether s is pending or signed.
func (s ContractStatus) Valid() bool {
	return s == StatusPending || s == StatusSigned
}

// Departments is the closed set of departments a user may belong to.
// It mirrors the role names.
var Departments = []string{string(RoleSales), string(RoleSupport), string(RoleGestion)}

// User is a collaborator account. PwdHash is a PHC-encoded Argon2id string.
type User struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Email       string    `db:"email"`
	PwdHash     string    `db:"password_hash"`
	Department  string    `db:"department"`
	Role        Role      `db:"role"`
	IsSuperuser bool      `db:"is_superuser"`
	CreatedAt   time.Time `db:"created_at"`
}

// Client is a customer record owned by a sales collaborator.
type Client struct {
	ID             uuid.UUID `db:"id"`
	Name           string    `db:"name"`
	PhoneNumber    string    `db:"phone_number"`
	Email          string    `db:"email"`
	CompanyName    string    `db:"company_name"`
	SalesContactID uuid.UUID `db:"sales_contact_id"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"last_update"`
}

// Contract belongs to a client. ClientName and SalesContactID are read from
// the owning client and are never written through a contract.
type Contract struct {
	ID              uuid.UUID       `db:"id"`
	ClientID        uuid.UUID       `db:"client_id"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	RemainingAmount decimal.Decimal `db:"remaining_amount"`
	Status          ContractStatus  `db:"status"`
	CreatedAt       time.Time       `db:"created_at"`
	ClientName      string          `db:"client_name"`
	SalesContactID  uuid.UUID       `db:"sales_contact_id"`
}

// Event is organised for a signed contract and optionally assigned to support.
// ClientName and SalesContactID follow the contract -> client ownership chain.
type Event struct {
	ID               uuid.UUID  `db:"id"`
	ContractID       uuid.UUID  `db:"contract_id"`
	StartDate        time.Time  `db:"start_date"`
	EndDate          time.Time  `db:"end_date"`
	Location         string     `db:"location"`
	Attendees        int        `db:"attendees"`
	Notes            *string    `db:"notes"`
	SupportContactID *uuid.UUID `db:"support_contact_id"`
	ClientName       string     `db:"client_name"`
	SalesContactID   uuid.UUID  `db:"sales_contact_id"`
}

// Session is an issued bearer token.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

// Claims is the decoded content of a valid session token.
type Claims struct {
	UserID    uuid.UUID
	Role      Role
	ExpiresAt time.Time
}
