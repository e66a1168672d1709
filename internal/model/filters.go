package model

import "github.com/gofrs/uuid/v5"

// ClientFilter narrows client listings. A nil owner means all clients.
type ClientFilter struct {
	SalesContactID *uuid.UUID
}

// ContractFilter narrows contract listings.
type ContractFilter struct {
	SalesContactID *uuid.UUID
	Unsigned       bool // status != signed
	Unpaid         bool // remaining_amount > 0
}

// EventFilter narrows event listings.
type EventFilter struct {
	SalesContactID   *uuid.UUID
	SupportContactID *uuid.UUID
	NoSupport        bool // support_contact_id IS NULL
}

// ContractListOptions are the caller-selectable contract filters.
type ContractListOptions struct {
	Unsigned bool
	Unpaid   bool
}

// EventListOptions are the caller-selectable event filters.
type EventListOptions struct {
	NoSupport bool
	Mine      bool
}
