// Package value classifies environment variable text into typed values.
package value

import (
	"encoding/json"
	"net/netip"
	"strconv"
)

// Kind identifies which alternative a Value holds.
// The order matches the classification cascade, with Absent first.
type Kind int

const (
	Absent Kind = iota
	Bool
	Int
	IP
	URL
	Path
	String
)

var kindNames = [...]string{
	Absent: "absent",
	Bool:   "bool",
	Int:    "int",
	IP:     "ip",
	URL:    "url",
	Path:   "path",
	String: "string",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// ParseKind returns the Kind named s ("bool", "int", "ip", "url", "path", "string").
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), true
		}
	}
	return Absent, false
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown names are rejected.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, ok := ParseKind(string(text))
	if !ok {
		return &UnknownKindError{Name: string(text)}
	}
	*k = parsed
	return nil
}

// UnknownKindError is returned when decoding a kind name that does not exist.
type UnknownKindError struct {
	Name string
}

func (e *UnknownKindError) Error() string {
	return "unknown value kind " + strconv.Quote(e.Name)
}

// Value is a classified environment value. The zero Value is Absent.
type Value struct {
	kind Kind
	raw  string
	b    bool
	i    int64
	ip   netip.Addr
	url  URLValue
}

// Text returns a String value holding s verbatim, without classification.
func Text(s string) Value {
	return Value{kind: String, raw: s}
}

// Kind reports which alternative v holds.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether v carries no value.
func (v Value) IsAbsent() bool { return v.kind == Absent }

// Raw returns the text v was classified from.
func (v Value) Raw() string { return v.raw }

// String returns the original text for every kind, and "" for Absent.
func (v Value) String() string { return v.raw }

// Bool returns the boolean and true if v is a Bool.
func (v Value) Bool() (bool, bool) {
	return v.b, v.kind == Bool
}

// Int returns the integer and true if v is an Int.
func (v Value) Int() (int64, bool) {
	return v.i, v.kind == Int
}

// IP returns the address and true if v is an IP.
func (v Value) IP() (netip.Addr, bool) {
	return v.ip, v.kind == IP
}

// URL returns the URL and true if v is a URL.
func (v Value) URL() (URLValue, bool) {
	return v.url, v.kind == URL
}

// Path returns the path and true if v is a Path.
func (v Value) Path() (PathValue, bool) {
	if v.kind != Path {
		return "", false
	}
	return PathValue(v.raw), true
}

// Str returns the text and true if v is a String.
func (v Value) Str() (string, bool) {
	return v.raw, v.kind == String
}

// Exploded renders IPv6 addresses in their full eight-group form.
// Other values return String().
func (v Value) Exploded() string {
	if v.kind == IP && v.ip.Is6() {
		return v.ip.StringExpanded()
	}
	return v.raw
}

// Any returns the Go representation of v: nil, bool, int64, netip.Addr,
// URLValue, PathValue or string.
func (v Value) Any() any {
	switch v.kind {
	case Bool:
		return v.b
	case Int:
		return v.i
	case IP:
		return v.ip
	case URL:
		return v.url
	case Path:
		return PathValue(v.raw)
	case String:
		return v.raw
	default:
		return nil
	}
}

// Equal reports whether v and o hold the same kind and text.
func (v Value) Equal(o Value) bool {
	return v.kind == o.kind && v.raw == o.raw
}

// Scalar returns v as a bool, int64 or string, suitable for encoders that
// only understand plain scalars. Absent is nil.
func (v Value) Scalar() any {
	switch v.kind {
	case Absent:
		return nil
	case Bool:
		return v.b
	case Int:
		return v.i
	default:
		return v.raw
	}
}

// MarshalJSON encodes booleans and integers natively, absence as null,
// and everything else as its original text.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Scalar())
}

// MarshalYAML implements yaml.Marshaler.
func (v Value) MarshalYAML() (any, error) {
	return v.Scalar(), nil
}
