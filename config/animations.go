package config

import "time"

// AnimationDef describes the frames of one state in a species sprite sheet.
type AnimationDef struct {
	Frames int
}

// SpeciesAnimations is the frame layout shared read-only by every actor of a
// species. Interval is the time each frame stays on screen.
type SpeciesAnimations struct {
	Interval time.Duration
	States   map[StateID]AnimationDef
}

// FrameCount returns the number of frames for state, or 0 when the species
// has no frames for it.
func (s *SpeciesAnimations) FrameCount(state StateID) int {
	if s == nil {
		return 0
	}
	return s.States[state].Frames
}

// Has reports whether the species can display state.
func (s *SpeciesAnimations) Has(state StateID) bool {
	return state.Valid() && s.FrameCount(state) > 0
}

// CharacterAnimations maps a species key to its frame layout.
var CharacterAnimations = map[string]*SpeciesAnimations{
	SpeciesSoldier: {
		Interval: 60 * time.Millisecond,
		States: map[StateID]AnimationDef{
			Idle:   {Frames: 6},
			Walk:   {Frames: 8},
			Attack: {Frames: 6},
			Hit:    {Frames: 4},
			Death:  {Frames: 4},
		},
	},
	SpeciesOrc: {
		Interval: 150 * time.Millisecond,
		States: map[StateID]AnimationDef{
			Idle:   {Frames: 6},
			Walk:   {Frames: 8},
			Attack: {Frames: 6},
			Hit:    {Frames: 4},
			Death:  {Frames: 4},
		},
	},
}
