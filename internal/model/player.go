package model

import "time"

// PlayerID uniquely identifies a player across the system
type PlayerID string

// Player is a bare game participant identity. There is no account or
// credential attached; the ID exists so flags can record who planted them.
type Player struct {
	ID          PlayerID
	DisplayName string
	CreatedAt   time.Time
}
