package pool

import (
	"fmt"
	"strings"
)

// Padding selects how windows at the input edge are treated.
type Padding int

// Supported padding policies.
const (
	// Any lets windows extend past the input edge; out-of-range samples are skipped.
	Any Padding = iota
	// Valid only places windows that fit fully inside the input.
	Valid
)

// String returns the policy name.
func (p Padding) String() string {
	switch p {
	case Any:
		return "any"
	case Valid:
		return "valid"
	default:
		return fmt.Sprintf("Padding(%d)", int(p))
	}
}

// IsValid reports whether p is a recognized policy.
func (p Padding) IsValid() bool {
	return p == Any || p == Valid
}

// ParsePadding parses a policy name (case-insensitive).
func ParsePadding(s string) (Padding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "any":
		return Any, nil
	case "valid":
		return Valid, nil
	default:
		return 0, invalidConfig("padding", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Padding) MarshalText() ([]byte, error) {
	if !p.IsValid() {
		return nil, invalidConfig("padding", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Padding) UnmarshalText(text []byte) error {
	parsed, err := ParsePadding(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
