// Package models holds the canonical shapes the backend payloads are
// normalized into. The backend is loose about ids and numeric types, so
// each From*JSON function is an explicit compatibility step: every accepted
// input variant is handled by name, never by falling through untyped data.
package models

import "github.com/tidwall/gjson"

// Customer is the authenticated profile. DeviceVerified is the backend's
// device-approval flag; a session can exist while it is still false.
type Customer struct {
	ID               string
	FullName         string
	Email            string
	Phone            string
	EmploymentStatus string
	DeviceVerified   bool
}

// CustomerFromJSON normalizes a profile object. Accepted id variants:
// "id", "_id".
func CustomerFromJSON(r gjson.Result) Customer {
	return Customer{
		ID:               firstString(r, "id", "_id"),
		FullName:         r.Get("fullName").String(),
		Email:            r.Get("email").String(),
		Phone:            r.Get("phone").String(),
		EmploymentStatus: r.Get("employmentStatus").String(),
		DeviceVerified:   r.Get("deviceVerified").Bool(),
	}
}

// ProfileOf extracts the profile object from an auth response. Both the
// wrapped ("customer": {...}) and the bare shape occur in the wild.
func ProfileOf(r gjson.Result) gjson.Result {
	if c := r.Get("customer"); c.Exists() {
		return c
	}
	return r
}

func firstString(r gjson.Result, paths ...string) string {
	for _, p := range paths {
		if v := r.Get(p); v.Exists() {
			return v.String()
		}
	}
	return ""
}
