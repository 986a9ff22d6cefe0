package domain

import (
	"encoding/json"
	"fmt"
)

// Ref is a polymorphic reference to an external record: either a bare id or
// an id with the record expanded inline. Consumers go through ID() and
// Record() instead of inspecting the variant ad hoc, so both forms are
// handled uniformly everywhere.
type Ref[T any] struct {
	id     int64
	record *T
}

// NewRef creates a bare reference.
func NewRef[T any](id int64) Ref[T] {
	return Ref[T]{id: id}
}

// NewExpandedRef creates a reference carrying the full record.
func NewExpandedRef[T any](id int64, record *T) Ref[T] {
	return Ref[T]{id: id, record: record}
}

// ID returns the referenced id regardless of variant.
func (r Ref[T]) ID() int64 {
	return r.id
}

// Record returns the expanded record when present.
func (r Ref[T]) Record() (*T, bool) {
	return r.record, r.record != nil
}

// IsExpanded reports whether the full record is attached.
func (r Ref[T]) IsExpanded() bool {
	return r.record != nil
}

// MarshalJSON encodes a bare reference as the id and an expanded reference
// as the full record object.
func (r Ref[T]) MarshalJSON() ([]byte, error) {
	if r.record != nil {
		return json.Marshal(r.record)
	}
	return json.Marshal(r.id)
}

// UnmarshalJSON accepts either a bare id or a record object with an "id"
// field.
func (r *Ref[T]) UnmarshalJSON(data []byte) error {
	var id int64
	if err := json.Unmarshal(data, &id); err == nil {
		*r = Ref[T]{id: id}
		return nil
	}

	var record T
	if err := json.Unmarshal(data, &record); err != nil {
		return fmt.Errorf("domain: reference is neither an id nor a record: %w", err)
	}

	var envelope struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}

	*r = Ref[T]{id: envelope.ID, record: &record}
	return nil
}

// Typed aliases used throughout the service.
type (
	ClientRef  = Ref[Client]
	BarberRef  = Ref[Barber]
	ServiceRef = Ref[Service]
)

// ClientReference creates a bare client reference.
func ClientReference(id int64) ClientRef { return NewRef[Client](id) }

// BarberReference creates a bare barber reference.
func BarberReference(id int64) BarberRef { return NewRef[Barber](id) }

// ServiceReference creates a bare service reference.
func ServiceReference(id int64) ServiceRef { return NewRef[Service](id) }

// ExpandedClient creates a client reference carrying the record.
func ExpandedClient(c *Client) ClientRef { return NewExpandedRef(c.ID, c) }

// ExpandedBarber creates a barber reference carrying the record.
func ExpandedBarber(b *Barber) BarberRef { return NewExpandedRef(b.ID, b) }

// ExpandedService creates a service reference carrying the record.
func ExpandedService(s *Service) ServiceRef { return NewExpandedRef(s.ID, s) }
