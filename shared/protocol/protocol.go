package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// ErrMalformed marks a server payload that failed schema validation.
var ErrMalformed = errors.New("protocol: malformed payload")

// Encode wraps v in an envelope of the given type.
func Encode(typ string, v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", typ, err)
	}
	return json.Marshal(Envelope{Type: typ, Data: data})
}

func DecodeEnvelope(b []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return env, fmt.Errorf("%w: envelope: %v", ErrMalformed, err)
	}
	if env.Type == "" {
		return env, fmt.Errorf("%w: envelope without type", ErrMalformed)
	}
	return env, nil
}

// DecodeState parses and validates a state payload. Missing players or
// food decode as empty; non-finite or negative geometry is rejected.
func DecodeState(raw json.RawMessage) (*State, error) {
	var s State
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("%w: state: %v", ErrMalformed, err)
	}
	if s.Players == nil {
		s.Players = map[string]PlayerView{}
	}
	for id, p := range s.Players {
		if id == "" {
			return nil, fmt.Errorf("%w: state: player with empty id", ErrMalformed)
		}
		if !finite(p.X, p.Y, p.R) || p.R < 0 {
			return nil, fmt.Errorf("%w: state: player %s geometry (%v,%v,%v)", ErrMalformed, id, p.X, p.Y, p.R)
		}
	}
	for i, f := range s.Food {
		if !finite(f.X, f.Y, f.R) || f.R < 0 {
			return nil, fmt.Errorf("%w: state: food %d geometry (%v,%v,%v)", ErrMalformed, i, f.X, f.Y, f.R)
		}
	}
	return &s, nil
}

func DecodeWinner(raw json.RawMessage) (Winner, error) {
	var w string
	if err := json.Unmarshal(raw, &w); err != nil {
		return "", fmt.Errorf("%w: winner: %v", ErrMalformed, err)
	}
	return Winner(w), nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
