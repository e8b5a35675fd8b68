package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// AiDifficulty is the strength tier of a computer opponent.
type AiDifficulty int

const (
	Easy AiDifficulty = iota
	Normal
	Hard
)

func (d AiDifficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Normal:
		return "Normal"
	case Hard:
		return "Hard"
	default:
		return fmt.Sprintf("AiDifficulty(%d)", int(d))
	}
}

// DifficultyFromName parses a difficulty name, ignoring case.
func DifficultyFromName(name string) (AiDifficulty, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "easy":
		return Easy, nil
	case "normal":
		return Normal, nil
	case "hard":
		return Hard, nil
	default:
		return 0, fmt.Errorf("unknown difficulty %q", name)
	}
}

func (d AiDifficulty) MarshalJSON() ([]byte, error) {
	if d < Easy || d > Hard {
		return nil, fmt.Errorf("cannot encode invalid difficulty %d", int(d))
	}
	return json.Marshal(d.String())
}

func (d *AiDifficulty) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := DifficultyFromName(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

const (
	PlayerKindHuman    = "human"
	PlayerKindComputer = "computer"
)

// PlayerType is either Human or Computer carrying a difficulty. Difficulty
// is meaningless for humans.
type PlayerType struct {
	Kind       string       `json:"kind"`
	Difficulty AiDifficulty `json:"difficulty,omitempty"`
}

// Human is the player type for a person at the keyboard.
func Human() PlayerType {
	return PlayerType{Kind: PlayerKindHuman}
}

// Computer is the player type for an AI opponent of the given difficulty.
func Computer(d AiDifficulty) PlayerType {
	return PlayerType{Kind: PlayerKindComputer, Difficulty: d}
}

func (t PlayerType) IsComputer() bool {
	return t.Kind == PlayerKindComputer
}

func (t PlayerType) String() string {
	if t.IsComputer() {
		return "Computer (" + t.Difficulty.String() + ")"
	}
	return "Human"
}

func (t PlayerType) MarshalJSON() ([]byte, error) {
	switch t.Kind {
	case PlayerKindHuman:
		return json.Marshal(struct {
			Kind string `json:"kind"`
		}{Kind: PlayerKindHuman})
	case PlayerKindComputer:
		return json.Marshal(struct {
			Kind       string       `json:"kind"`
			Difficulty AiDifficulty `json:"difficulty"`
		}{Kind: PlayerKindComputer, Difficulty: t.Difficulty})
	default:
		return nil, fmt.Errorf("cannot encode player kind %q", t.Kind)
	}
}

func (t *PlayerType) UnmarshalJSON(data []byte) error {
	var raw struct {
		Kind       string        `json:"kind"`
		Difficulty *AiDifficulty `json:"difficulty"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw.Kind {
	case PlayerKindHuman:
		*t = Human()
	case PlayerKindComputer:
		if raw.Difficulty == nil {
			return fmt.Errorf("computer player missing difficulty")
		}
		*t = Computer(*raw.Difficulty)
	default:
		return fmt.Errorf("unknown player kind %q", raw.Kind)
	}
	return nil
}

// Player is a participant identified by display name. The name is also the
// scoreboard key; two people using the same name share statistics.
type Player struct {
	Name string     `json:"name"`
	Type PlayerType `json:"player_type"`
}

func NewHuman(name string) Player {
	return Player{Name: name, Type: Human()}
}

func NewComputer(name string, d AiDifficulty) Player {
	return Player{Name: name, Type: Computer(d)}
}

func (p Player) IsComputer() bool {
	return p.Type.IsComputer()
}
