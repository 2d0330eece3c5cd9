package easing

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownKind is returned when parsing the name of a curve that doesn't
// exist.
var ErrUnknownKind = errors.New("unknown easing curve")

// Kind identifies one of the named curves.
//
// Kinds are ordered by family and then by direction, so that k / 3 is the
// family and k % 3 the direction. The zero value is [EaseInSine].
type Kind uint8

const (
	EaseInSine Kind = iota
	EaseOutSine
	EaseInOutSine
	EaseInQuad
	EaseOutQuad
	EaseInOutQuad
	EaseInCubic
	EaseOutCubic
	EaseInOutCubic
	EaseInQuart
	EaseOutQuart
	EaseInOutQuart
	EaseInQuint
	EaseOutQuint
	EaseInOutQuint
	EaseInExpo
	EaseOutExpo
	EaseInOutExpo
	EaseInCirc
	EaseOutCirc
	EaseInOutCirc
	EaseInBack
	EaseOutBack
	EaseInOutBack
	EaseInElastic
	EaseOutElastic
	EaseInOutElastic
	EaseInBounce
	EaseOutBounce
	EaseInOutBounce

	numKinds
)

// Family is a family of curves, such as Sine or Bounce.
type Family uint8

const (
	Sine Family = iota
	Quad
	Cubic
	Quart
	Quint
	Expo
	Circ
	Back
	Elastic
	Bounce

	numFamilies
)

// Direction describes at which ends of the transition a curve applies its
// easing.
type Direction uint8

const (
	In Direction = iota
	Out
	InOut

	numDirections
)

var funcs = [numKinds]Func{
	EaseInSine:       InSine,
	EaseOutSine:      OutSine,
	EaseInOutSine:    InOutSine,
	EaseInQuad:       InQuad,
	EaseOutQuad:      OutQuad,
	EaseInOutQuad:    InOutQuad,
	EaseInCubic:      InCubic,
	EaseOutCubic:     OutCubic,
	EaseInOutCubic:   InOutCubic,
	EaseInQuart:      InQuart,
	EaseOutQuart:     OutQuart,
	EaseInOutQuart:   InOutQuart,
	EaseInQuint:      InQuint,
	EaseOutQuint:     OutQuint,
	EaseInOutQuint:   InOutQuint,
	EaseInExpo:       InExpo,
	EaseOutExpo:      OutExpo,
	EaseInOutExpo:    InOutExpo,
	EaseInCirc:       InCirc,
	EaseOutCirc:      OutCirc,
	EaseInOutCirc:    InOutCirc,
	EaseInBack:       InBack,
	EaseOutBack:      OutBack,
	EaseInOutBack:    InOutBack,
	EaseInElastic:    InElastic,
	EaseOutElastic:   OutElastic,
	EaseInOutElastic: InOutElastic,
	EaseInBounce:     InBounce,
	EaseOutBounce:    OutBounce,
	EaseInOutBounce:  InOutBounce,
}

var familyNames = [numFamilies]string{
	Sine:    "Sine",
	Quad:    "Quad",
	Cubic:   "Cubic",
	Quart:   "Quart",
	Quint:   "Quint",
	Expo:    "Expo",
	Circ:    "Circ",
	Back:    "Back",
	Elastic: "Elastic",
	Bounce:  "Bounce",
}

var directionNames = [numDirections]string{
	In:    "In",
	Out:   "Out",
	InOut: "InOut",
}

// kindsByName maps lower-cased names, without the "ease" prefix, to kinds.
var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, numKinds)
	for k := range Kinds() {
		m[strings.ToLower(directionNames[k.Direction()]+familyNames[k.Family()])] = k
	}
	return m
}()

// Resolve returns the curve identified by k. It returns false if k isn't one
// of the named kinds.
func Resolve(k Kind) (Func, bool) {
	if k >= numKinds {
		return nil, false
	}
	return funcs[k], true
}

// Kinds returns an iterator over all named kinds, in order.
func Kinds() iter.Seq[Kind] {
	return func(yield func(Kind) bool) {
		for k := range numKinds {
			if !yield(k) {
				return
			}
		}
	}
}

// KindOf returns the kind for a family and direction. It returns false if
// either is out of range.
func KindOf(f Family, d Direction) (Kind, bool) {
	if f >= numFamilies || d >= numDirections {
		return 0, false
	}
	return Kind(f)*Kind(numDirections) + Kind(d), true
}

// Valid reports whether k is one of the named kinds.
func (k Kind) Valid() bool {
	return k < numKinds
}

// Func returns the curve identified by k, or nil if k isn't valid.
func (k Kind) Func() Func {
	fn, _ := Resolve(k)
	return fn
}

// Family returns k's family. The result is meaningless if k isn't valid.
func (k Kind) Family() Family {
	return Family(k / Kind(numDirections))
}

// Direction returns k's direction. The result is meaningless if k isn't
// valid.
func (k Kind) Direction() Direction {
	return Direction(k % Kind(numDirections))
}

// String returns the conventional name of the curve, such as "easeInOutQuad".
func (k Kind) String() string {
	if !k.Valid() {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return "ease" + directionNames[k.Direction()] + familyNames[k.Family()]
}

func (f Family) String() string {
	if f >= numFamilies {
		return "Family(" + strconv.Itoa(int(f)) + ")"
	}
	return familyNames[f]
}

func (d Direction) String() string {
	if d >= numDirections {
		return "Direction(" + strconv.Itoa(int(d)) + ")"
	}
	return directionNames[d]
}

// ParseKind returns the kind with the given name. Names are matched case
// insensitively and the "ease" prefix is optional, so that "easeOutBack",
// "EaseOutBack" and "outBack" all name [EaseOutBack].
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.TrimPrefix(name, "ease")
	if k, ok := kindsByName[name]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// MarshalText implements [encoding.TextMarshaler].
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid %s", k)
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *Kind) UnmarshalText(text []byte) error {
	v, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// MarshalYAML implements [yaml.Marshaler].
func (k Kind) MarshalYAML() (any, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid %s", k)
	}
	return k.String(), nil
}

// UnmarshalYAML implements [yaml.Unmarshaler], reading a kind from a YAML
// scalar.
func (k *Kind) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	v, err := ParseKind(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*k = v
	return nil
}
