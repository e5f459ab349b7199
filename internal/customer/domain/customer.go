package domain

import (
	"strings"
	"time"
)

// Profile holds the mutable contact fields of a customer. An empty field means
// "not supplied" when merging.
type Profile struct {
	Name       string
	Phone      string
	Address    string
	City       string
	Country    string
	PostalCode string
}

// Merge returns p with every non-empty field of in applied on top.
func (p Profile) Merge(in Profile) Profile {
	set := func(dst *string, v string) {
		if v = strings.TrimSpace(v); v != "" {
			*dst = v
		}
	}
	set(&p.Name, in.Name)
	set(&p.Phone, in.Phone)
	set(&p.Address, in.Address)
	set(&p.City, in.City)
	set(&p.Country, in.Country)
	set(&p.PostalCode, in.PostalCode)
	return p
}

type Customer struct {
	ID        string
	Email     string
	Profile   Profile
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
