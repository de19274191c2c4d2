package protocol

import "encoding/json"

// Envelope
type Envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// ================= C -> S =================

// Join registers the local identity. Sent once per connection.
type Join struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Move carries one tick of movement intent; (DX, DY) is a unit vector.
type Move struct {
	ID string  `json:"id"`
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

// ================= S -> C =================

type PlayerView struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	R     float64 `json:"r"`
	Color string  `json:"color"`
	Name  string  `json:"name"`
	Score int     `json:"score"`
}

type FoodView struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	R float64 `json:"r"`
}

// State is a full world snapshot; it replaces the previous one wholesale.
type State struct {
	Players map[string]PlayerView `json:"players"`
	Food    []FoodView            `json:"food"`
}

// Winner payload is the bare display name of the round winner.
type Winner string
