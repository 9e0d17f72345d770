package vcard

import (
	"fmt"
	"strings"
)

// Version is a vCard format revision. Versions are totally ordered.
type Version int

const (
	V21 Version = iota + 1
	V30
	V40
)

// Versions lists every supported revision in ascending order.
var Versions = []Version{V21, V30, V40}

// String returns the value written on the VERSION line.
func (v Version) String() string {
	switch v {
	case V21:
		return "2.1"
	case V30:
		return "3.0"
	case V40:
		return "4.0"
	default:
		return fmt.Sprintf("Version(%d)", int(v))
	}
}

// Valid reports whether v is one of the known revisions.
func (v Version) Valid() bool {
	return v >= V21 && v <= V40
}

// ParseVersion accepts "2.1", "3.0", "4.0" and the short forms "2", "3", "4".
func ParseVersion(s string) (Version, error) {
	switch strings.TrimSpace(s) {
	case "2.1", "2":
		return V21, nil
	case "3.0", "3":
		return V30, nil
	case "4.0", "4":
		return V40, nil
	}
	return 0, fmt.Errorf("unknown vCard version %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (v Version) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("invalid vCard version %d", int(v))
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := ParseVersion(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// containsVersion reports whether list includes v.
func containsVersion(list []Version, v Version) bool {
	for _, candidate := range list {
		if candidate == v {
			return true
		}
	}
	return false
}
