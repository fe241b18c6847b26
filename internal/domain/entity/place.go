// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "github.com/paulmach/orb"

// Place is a point of interest from the travel catalog. Places are owned
// by the document store: this module only ever reads them, and a place is
// treated as immutable for the duration of a browsing session.
type Place struct {
	ID          string   // Document key assigned by the store.
	Name        string   // Display name.
	Description string   // Free-form description.
	Address     string   // Street address.
	Category    Category // One of the fixed catalog categories.

	// Location is nil when the stored coordinates are absent or not
	// numeric. A nil location means "location unavailable" and must never
	// be rendered as latitude/longitude zero.
	Location *orb.Point

	// Hours maps a day label to an opening-hours string. Nil when the
	// place publishes no schedule.
	Hours map[string]string
}
