package device

import (
	"errors"
	"fmt"
)

var ErrUnknownType = errors.New("unknown component type")

// Type is the kind of a placed component. The set is closed.
type Type int

const (
	Resistor Type = iota
	Capacitor
	Inductor
	Diode
	DCSource
	ACSource
	Battery
	Switch
	Relay
	Contactor
	CircuitBreaker
	Voltmeter
	Ammeter
	Wattmeter

	typeCount
)

// Types returns every component type in palette order.
func Types() []Type {
	types := make([]Type, 0, typeCount)
	for t := Type(0); t < typeCount; t++ {
		types = append(types, t)
	}
	return types
}

func (t Type) Valid() bool { return t >= 0 && t < typeCount }

func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return catalog[t].name
}

// Label is the human readable name shown in the palette and panel header.
func (t Type) Label() string {
	if !t.Valid() {
		return t.String()
	}
	return catalog[t].label
}

func (t Type) Category() Category {
	if !t.Valid() {
		return CategoryUnknown
	}
	return catalog[t].category
}

func (t Type) Rule() Rule {
	if !t.Valid() {
		return RuleMeasurement
	}
	return catalog[t].rule
}

func (t Type) Conduction() Conduction {
	if !t.Valid() {
		return ConductionOpen
	}
	return catalog[t].conduction
}

// IsVoltageSource reports whether t can drive the circuit.
func (t Type) IsVoltageSource() bool {
	return t.Category() == CategorySource
}

// Defaults returns a fresh default property set for t.
func (t Type) Defaults() Properties {
	if !t.Valid() {
		return Generic{Name: "COMP1"}
	}
	return catalog[t].defaults()
}

func ParseType(name string) (Type, error) {
	for t := Type(0); t < typeCount; t++ {
		if catalog[t].name == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
