package device

import (
	"strconv"
)

// Properties is the per-type configuration of a component.
// Implementations are values; Apply returns a modified copy.
type Properties interface {
	DisplayName() string
	Primary() string // Primary value as entered, e.g. "1k" or "12"
	Fields() []Field // Property editor schema with current values
	Apply(patch Patch) Properties
	Closed() bool
}

// Patch is a shallow property update keyed by Field.Key.
type Patch map[string]any

type FieldKind int

const (
	FieldText FieldKind = iota
	FieldNumber
	FieldSelect
	FieldCheckbox
)

type Field struct {
	Key     string
	Label   string
	Kind    FieldKind
	Unit    string
	Options []string
	Value   any
}

var (
	toleranceOptions     = []string{"1%", "5%", "10%", "20%"}
	capacitorTypeOptions = []string{"Ceramic", "Electrolytic", "Tantalum", "Film"}
	switchTypeOptions    = []string{"SPST", "SPDT", "DPST", "DPDT"}
)

type ResistorProps struct {
	Name      string
	Value     string // Resistance
	Tolerance string
	Power     string // Rating (W)
}

func (p ResistorProps) DisplayName() string { return p.Name }
func (p ResistorProps) Primary() string     { return p.Value }
func (p ResistorProps) Closed() bool        { return false }

func (p ResistorProps) Fields() []Field {
	return []Field{
		{Key: "name", Label: "Name", Kind: FieldText, Value: p.Name},
		{Key: "value", Label: "Resistance", Kind: FieldText, Unit: "Ω", Value: p.Value},
		{Key: "tolerance", Label: "Tolerance", Kind: FieldSelect, Options: toleranceOptions, Value: p.Tolerance},
		{Key: "power", Label: "Power Rating", Kind: FieldText, Unit: "W", Value: p.Power},
	}
}

func (p ResistorProps) Apply(patch Patch) Properties {
	patch.text("name", &p.Name)
	patch.text("value", &p.Value)
	patch.text("tolerance", &p.Tolerance)
	patch.text("power", &p.Power)
	return p
}

type CapacitorProps struct {
	Name          string
	Value         string // Capacitance
	Voltage       string // Rating (V)
	CapacitorType string
}

func (p CapacitorProps) DisplayName() string { return p.Name }
func (p CapacitorProps) Primary() string     { return p.Value }
func (p CapacitorProps) Closed() bool        { return false }

func (p CapacitorProps) Fields() []Field {
	return []Field{
		{Key: "name", Label: "Name", Kind: FieldText, Value: p.Name},
		{Key: "value", Label: "Capacitance", Kind: FieldText, Unit: "F", Value: p.Value},
		{Key: "voltage", Label: "Voltage Rating", Kind: FieldText, Unit: "V", Value: p.Voltage},
		{Key: "capacitorType", Label: "Type", Kind: FieldSelect, Options: capacitorTypeOptions, Value: p.CapacitorType},
	}
}

func (p CapacitorProps) Apply(patch Patch) Properties {
	patch.text("name", &p.Name)
	patch.text("value", &p.Value)
	patch.text("voltage", &p.Voltage)
	patch.text("capacitorType", &p.CapacitorType)
	return p
}

type InductorProps struct {
	Name    string
	Value   string // Inductance
	Current string // Rating (A)
}

func (p InductorProps) DisplayName() string { return p.Name }
func (p InductorProps) Primary() string     { return p.Value }
func (p InductorProps) Closed() bool        { return false }

func (p InductorProps) Fields() []Field {
	return []Field{
		{Key: "name", Label: "Name", Kind: FieldText, Value: p.Name},
		{Key: "value", Label: "Inductance", Kind: FieldText, Unit: "H", Value: p.Value},
		{Key: "current", Label: "Current Rating", Kind: FieldText, Unit: "A", Value: p.Current},
	}
}

func (p InductorProps) Apply(patch Patch) Properties {
	patch.text("name", &p.Name)
	patch.text("value", &p.Value)
	patch.text("current", &p.Current)
	return p
}

type DCSourceProps struct {
	Name    string
	Value   float64 // Voltage
	Current string  // Max current (A)
}

func (p DCSourceProps) DisplayName() string { return p.Name }
func (p DCSourceProps) Primary() string     { return strconv.FormatFloat(p.Value, 'g', -1, 64) }
func (p DCSourceProps) Closed() bool        { return false }

func (p DCSourceProps) Fields() []Field {
	return []Field{
		{Key: "name", Label: "Name", Kind: FieldText, Value: p.Name},
		{Key: "value", Label: "Voltage", Kind: FieldNumber, Unit: "V", Value: p.Value},
		{Key: "current", Label: "Max Current", Kind: FieldText, Unit: "A", Value: p.Current},
	}
}

func (p DCSourceProps) Apply(patch Patch) Properties {
	patch.text("name", &p.Name)
	patch.number("value", &p.Value)
	patch.text("current", &p.Current)
	return p
}

type SwitchProps struct {
	Name       string
	IsClosed   bool
	SwitchType string
}

func (p SwitchProps) DisplayName() string { return p.Name }
func (p SwitchProps) Primary() string     { return strconv.FormatBool(p.IsClosed) }
func (p SwitchProps) Closed() bool        { return p.IsClosed }

func (p SwitchProps) Fields() []Field {
	return []Field{
		{Key: "name", Label: "Name", Kind: FieldText, Value: p.Name},
		{Key: "isClosed", Label: "State", Kind: FieldCheckbox, Value: p.IsClosed},
		{Key: "switchType", Label: "Type", Kind: FieldSelect, Options: switchTypeOptions, Value: p.SwitchType},
	}
}

func (p SwitchProps) Apply(patch Patch) Properties {
	patch.text("name", &p.Name)
	patch.flag("isClosed", &p.IsClosed)
	patch.text("switchType", &p.SwitchType)
	return p
}

// Generic covers every type without a dedicated schema.
type Generic struct {
	Name  string
	Value string
}

func (p Generic) DisplayName() string { return p.Name }
func (p Generic) Primary() string     { return p.Value }
func (p Generic) Closed() bool        { return false }

func (p Generic) Fields() []Field {
	return []Field{
		{Key: "name", Label: "Name", Kind: FieldText, Value: p.Name},
	}
}

func (p Generic) Apply(patch Patch) Properties {
	patch.text("name", &p.Name)
	patch.text("value", &p.Value)
	return p
}

// text copies key into dst when present as a string or a number.
func (p Patch) text(key string, dst *string) {
	switch v := p[key].(type) {
	case string:
		*dst = v
	case float64:
		*dst = strconv.FormatFloat(v, 'g', -1, 64)
	case int:
		*dst = strconv.Itoa(v)
	}
}

func (p Patch) number(key string, dst *float64) {
	switch v := p[key].(type) {
	case float64:
		*dst = v
	case int:
		*dst = float64(v)
	case string:
		if f, err := LeadingFloat(v); err == nil {
			*dst = f
		}
	}
}

func (p Patch) flag(key string, dst *bool) {
	switch v := p[key].(type) {
	case bool:
		*dst = v
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}
