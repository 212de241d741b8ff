package goap

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Token is a named boolean proposition about the world.
type Token struct {
	Name  string
	Value bool
}

func (token Token) String() string {
	return fmt.Sprintf("%s: %t", token.Name, token.Value)
}

// WorldState maps token names to values. The zero value is an empty state.
type WorldState struct {
	tokens map[string]bool
}

// NewWorldState returns a state holding the given tokens. Later tokens win on
// duplicate names.
func NewWorldState(tokens ...Token) *WorldState {
	state := &WorldState{}
	for _, token := range tokens {
		state.Set(token)
	}
	return state
}

// SetToken inserts name or overwrites its value.
func (state *WorldState) SetToken(name string, value bool) {
	if state.tokens == nil {
		state.tokens = make(map[string]bool)
	}
	state.tokens[name] = value
}

// Set is SetToken for a Token.
func (state *WorldState) Set(token Token) {
	state.SetToken(token.Name, token.Value)
}

// Value returns the value held for name; ok is false when name is absent.
func (state *WorldState) Value(name string) (value bool, ok bool) {
	value, ok = state.tokens[name]
	return value, ok
}

// Len returns the number of tokens.
func (state *WorldState) Len() int { return len(state.tokens) }

// Tokens returns the tokens sorted by name.
func (state *WorldState) Tokens() []Token {
	tokens := make([]Token, 0, len(state.tokens))
	for _, name := range slices.Sorted(maps.Keys(state.tokens)) {
		tokens = append(tokens, Token{Name: name, Value: state.tokens[name]})
	}
	return tokens
}

// Apply copies every token of changes into state, overwriting existing values.
func (state *WorldState) Apply(changes *WorldState) {
	for name, value := range changes.tokens {
		state.SetToken(name, value)
	}
}

// SatisfiedBy reports whether other holds every token of state with the same
// value. Tokens only present in other are ignored.
func (state *WorldState) SatisfiedBy(other *WorldState) bool {
	for name, value := range state.tokens {
		otherValue, ok := other.Value(name)
		if !ok || otherValue != value {
			return false
		}
	}
	return true
}

// Equal reports whether both states hold exactly the same tokens.
func (state *WorldState) Equal(other *WorldState) bool {
	return state.Len() == other.Len() && state.SatisfiedBy(other)
}

// DifferenceFrom counts the tokens of other that are missing or different in
// state, plus how many more tokens other holds than state.
//
// It is used as the planning heuristic. It counts tokens, not action costs,
// so it is not admissible and plans found with it are not guaranteed optimal.
func (state *WorldState) DifferenceFrom(other *WorldState) float64 {
	difference := 0
	for name, value := range other.tokens {
		ownValue, ok := state.tokens[name]
		if !ok || ownValue != value {
			difference++
		}
	}
	difference += max(0, other.Len()-state.Len())
	return float64(difference)
}

// Clone returns an independent copy. A nil state clones to an empty one.
func (state *WorldState) Clone() *WorldState {
	if state == nil {
		return &WorldState{}
	}
	return &WorldState{tokens: maps.Clone(state.tokens)}
}

func (state *WorldState) String() string {
	tokens := state.Tokens()
	parts := make([]string, len(tokens))
	for i, token := range tokens {
		parts[i] = token.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
