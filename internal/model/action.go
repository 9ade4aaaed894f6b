package model

// ActionKind is the kind of move a player can make
type ActionKind string

const (
	ActionReveal ActionKind = "reveal"
	ActionFlag   ActionKind = "flag"
	ActionUnflag ActionKind = "unflag"
)

// Action is a single player move request against a game
type Action struct {
	Kind     ActionKind
	Pos      Coordinate
	PlayerID PlayerID // required for flag and unflag; recorded for reveal
}
