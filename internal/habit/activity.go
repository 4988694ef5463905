// Package habit holds the activity catalog: the ordered, persisted
// list of things the user tracks day by day. An activity's position
// in the catalog is what the ledger keys cell data on; its id never
// changes once assigned.
package habit

import "github.com/google/uuid"

// Activity is one trackable habit. ID is permanent; Name and Color
// are freely editable and may collide across activities.
type Activity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color Color  `json:"-"`
}

// NewActivity assigns a fresh id.
func NewActivity(name string, color Color) Activity {
	return Activity{ID: uuid.NewString(), Name: name, Color: color}
}
