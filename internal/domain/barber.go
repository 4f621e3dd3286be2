package domain

import (
	"database/sql/driver"
	"fmt"
)

// BarberPreference is either a specific barber or "any barber".
// The zero value means any barber.
type BarberPreference struct {
	id string
}

// AnyBarber returns the "no preference" value
func AnyBarber() BarberPreference {
	return BarberPreference{}
}

// SpecificBarber returns a preference for the barber with the given id.
// An empty id yields AnyBarber.
func SpecificBarber(id string) BarberPreference {
	return BarberPreference{id: id}
}

// BarberFromPtr maps a nullable barber id onto a preference
func BarberFromPtr(id *string) BarberPreference {
	if id == nil {
		return AnyBarber()
	}
	return SpecificBarber(*id)
}

func (p BarberPreference) IsAny() bool {
	return p.id == ""
}

// BarberID returns the barber id and true for a specific preference
func (p BarberPreference) BarberID() (string, bool) {
	return p.id, p.id != ""
}

// Ptr returns nil for AnyBarber
func (p BarberPreference) Ptr() *string {
	if p.IsAny() {
		return nil
	}
	id := p.id
	return &id
}

// Collides reports whether a booking held under other occupies the same chair as p.
// Any collides with every booking; a specific barber collides with his own and with unassigned ones.
func (p BarberPreference) Collides(other BarberPreference) bool {
	if p.IsAny() || other.IsAny() {
		return true
	}
	return p.id == other.id
}

func (p BarberPreference) String() string {
	if p.IsAny() {
		return "any"
	}
	return p.id
}

// Scan implements sql.Scanner for a nullable barber_id column
func (p *BarberPreference) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*p = AnyBarber()
	case string:
		*p = SpecificBarber(v)
	case []byte:
		*p = SpecificBarber(string(v))
	default:
		return fmt.Errorf("domain: cannot scan %T into BarberPreference", src)
	}
	return nil
}

// Value implements driver.Valuer; AnyBarber is stored as NULL
func (p BarberPreference) Value() (driver.Value, error) {
	if p.IsAny() {
		return nil, nil
	}
	return p.id, nil
}
