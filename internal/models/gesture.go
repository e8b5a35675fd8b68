package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Gesture is a hand shape a player throws in a round. The ordering of the
// constants is significant: prediction ties resolve to the lowest value.
type Gesture int

const (
	Rock Gesture = iota
	Paper
	Scissors
	Lizard
	Spock
)

// AllGestures lists every gesture in enum order.
var AllGestures = []Gesture{Rock, Paper, Scissors, Lizard, Spock}

func (g Gesture) String() string {
	switch g {
	case Rock:
		return "Rock"
	case Paper:
		return "Paper"
	case Scissors:
		return "Scissors"
	case Lizard:
		return "Lizard"
	case Spock:
		return "Spock"
	default:
		return fmt.Sprintf("Gesture(%d)", int(g))
	}
}

// Valid reports whether g is one of the five known gestures.
func (g Gesture) Valid() bool {
	return g >= Rock && g <= Spock
}

// GestureFromName looks up a gesture by its full display name, ignoring case.
func GestureFromName(name string) (Gesture, error) {
	for _, g := range AllGestures {
		if strings.EqualFold(g.String(), strings.TrimSpace(name)) {
			return g, nil
		}
	}
	return 0, fmt.Errorf("unknown gesture %q", name)
}

func (g Gesture) MarshalJSON() ([]byte, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("cannot encode invalid gesture %d", int(g))
	}
	return json.Marshal(g.String())
}

func (g *Gesture) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := GestureFromName(s)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// Ruleset selects which gestures are legal in a match.
type Ruleset int

const (
	Classic Ruleset = iota
	Extended
)

func (r Ruleset) String() string {
	switch r {
	case Classic:
		return "Classic"
	case Extended:
		return "Extended"
	default:
		return fmt.Sprintf("Ruleset(%d)", int(r))
	}
}

// RulesetFromName parses "Classic" or "Extended", ignoring case.
func RulesetFromName(name string) (Ruleset, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "classic":
		return Classic, nil
	case "extended":
		return Extended, nil
	default:
		return 0, fmt.Errorf("unknown ruleset %q", name)
	}
}

func (r Ruleset) MarshalJSON() ([]byte, error) {
	if r != Classic && r != Extended {
		return nil, fmt.Errorf("cannot encode invalid ruleset %d", int(r))
	}
	return json.Marshal(r.String())
}

func (r *Ruleset) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := RulesetFromName(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// RoundResult is the outcome of a single round from player 1's perspective.
type RoundResult int

const (
	Tie RoundResult = iota
	Player1Win
	Player2Win
)

func (r RoundResult) String() string {
	switch r {
	case Player1Win:
		return "player1"
	case Player2Win:
		return "player2"
	default:
		return "tie"
	}
}

// RoundResultFromString is the inverse of RoundResult.String.
func RoundResultFromString(s string) (RoundResult, error) {
	switch s {
	case "player1":
		return Player1Win, nil
	case "player2":
		return Player2Win, nil
	case "tie":
		return Tie, nil
	default:
		return Tie, fmt.Errorf("unknown round result %q", s)
	}
}
