// Package catalog holds the built-in opportunity board shown on the
// dashboard when no session or network is available. The entries mirror the
// curated list the mobile app ships with; live data always comes from the
// shows API instead.
package catalog

import "strings"

// Opportunity is one curated board entry.
type Opportunity struct {
	ID           string
	VenueName    string
	EventDate    string
	EventType    string
	Location     string
	Payment      string
	GenresWanted []string
	Urgent       bool
}

// Filters accepted by Filter, in display order.
var Filters = []string{"Todos", "Rock", "Jazz", "Indie", "Acústico", "Urgente"}

// Genres shown as quick chips on the dashboard.
var Genres = []string{"Rock", "Jazz", "Pop", "Clásica", "Electrónica"}

var board = []Opportunity{
	{
		ID: "1", VenueName: "La Noche Bar", EventDate: "20 Oct 2025",
		EventType: "Noche de Rock", Location: "Miraflores", Payment: "S/ 600",
		GenresWanted: []string{"Rock", "Pop Rock"}, Urgent: true,
	},
	{
		ID: "2", VenueName: "Centro Cultural", EventDate: "25 Oct 2025",
		EventType: "Festival Indie", Location: "Barranco", Payment: "S/ 450",
		GenresWanted: []string{"Indie", "Alternativo"},
	},
	{
		ID: "3", VenueName: "Jazz Club Lima", EventDate: "28 Oct 2025",
		EventType: "Noche de Jazz", Location: "San Isidro", Payment: "S/ 750",
		GenresWanted: []string{"Jazz", "Blues"},
	},
	{
		ID: "4", VenueName: "El Dragón Club", EventDate: "30 Oct 2025",
		EventType: "Noche Acústica", Location: "San Isidro", Payment: "S/ 350",
		GenresWanted: []string{"Acústico", "Folk"},
	},
}

// All returns the whole board.
func All() []Opportunity { return Filter("") }

// Filter returns the board entries matching a filter chip. "Urgente" selects
// urgent entries, genre chips match case-insensitively against the wanted
// genres, and "Todos" (or anything unknown) returns everything.
func Filter(name string) []Opportunity {
	out := make([]Opportunity, 0, len(board))
	for _, o := range board {
		if matches(o, name) {
			out = append(out, o)
		}
	}
	return out
}

func matches(o Opportunity, filter string) bool {
	switch filter {
	case "", "Todos":
		return true
	case "Urgente":
		return o.Urgent
	}
	for _, g := range o.GenresWanted {
		if strings.Contains(strings.ToLower(g), strings.ToLower(filter)) {
			return true
		}
	}
	return false
}
