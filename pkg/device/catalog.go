package device

type Category int

const (
	CategoryUnknown Category = iota
	CategorySource
	CategoryPassive
	CategorySwitching
	CategoryMeter
)

func (c Category) String() string {
	switch c {
	case CategorySource:
		return "Sources"
	case CategoryPassive:
		return "Passive"
	case CategorySwitching:
		return "Switching"
	case CategoryMeter:
		return "Meters"
	default:
		return "Unknown"
	}
}

// Rule selects how the single-driver engine derives a component's state.
type Rule int

const (
	RuleMeasurement Rule = iota // Driver voltage, minimal measurement current
	RuleSource                  // Own value, nominal load current
	RuleResistive               // Driver voltage over parsed resistance
	RuleSwitch                  // Driver voltage and nominal current when closed
	RuleReactive                // Driver voltage, small reactive current
)

// Conduction is how a component is stamped by the network analysis.
type Conduction int

const (
	ConductionOpen      Conduction = iota // No stamp
	ConductionShort                       // Small fixed resistance
	ConductionResistive                   // 1/R from the primary value
	ConductionSource                      // Branch row with the source voltage
	ConductionSwitched                    // Short when closed, open otherwise
)

type entry struct {
	name       string
	label      string
	category   Category
	rule       Rule
	conduction Conduction
	defaults   func() Properties
}

func generic() Properties { return Generic{Name: "COMP1"} }

// Indexed by Type. A type missing here has a nil defaults func and fails TestCatalogComplete.
var catalog = [typeCount]entry{
	Resistor: {
		name: "resistor", label: "Resistor", category: CategoryPassive,
		rule: RuleResistive, conduction: ConductionResistive,
		defaults: func() Properties {
			return ResistorProps{Name: "R1", Value: "1k", Tolerance: "5%", Power: "0.25"}
		},
	},
	Capacitor: {
		name: "capacitor", label: "Capacitor", category: CategoryPassive,
		rule: RuleReactive, conduction: ConductionOpen,
		defaults: func() Properties {
			return CapacitorProps{Name: "C1", Value: "10µ", Voltage: "50", CapacitorType: "Ceramic"}
		},
	},
	Inductor: {
		name: "inductor", label: "Inductor", category: CategoryPassive,
		rule: RuleReactive, conduction: ConductionShort,
		defaults: func() Properties {
			return InductorProps{Name: "L1", Value: "1m", Current: "1"}
		},
	},
	Diode: {
		name: "diode", label: "Diode", category: CategoryPassive,
		rule: RuleMeasurement, conduction: ConductionShort,
		defaults: generic,
	},
	DCSource: {
		name: "dc_source", label: "DC Source", category: CategorySource,
		rule: RuleSource, conduction: ConductionSource,
		defaults: func() Properties {
			return DCSourceProps{Name: "V1", Value: 12, Current: "1"}
		},
	},
	ACSource: {
		name: "ac_source", label: "AC Source", category: CategorySource,
		rule: RuleMeasurement, conduction: ConductionSource,
		defaults: generic,
	},
	Battery: {
		name: "battery", label: "Battery", category: CategorySource,
		rule: RuleSource, conduction: ConductionSource,
		defaults: generic,
	},
	Switch: {
		name: "switch", label: "Switch", category: CategorySwitching,
		rule: RuleSwitch, conduction: ConductionSwitched,
		defaults: func() Properties {
			return SwitchProps{Name: "S1", IsClosed: false, SwitchType: "SPST"}
		},
	},
	Relay: {
		name: "relay", label: "Relay", category: CategorySwitching,
		rule: RuleMeasurement, conduction: ConductionOpen,
		defaults: generic,
	},
	Contactor: {
		name: "contactor", label: "Contactor", category: CategorySwitching,
		rule: RuleMeasurement, conduction: ConductionOpen,
		defaults: generic,
	},
	CircuitBreaker: {
		name: "circuit_breaker", label: "Circuit Breaker", category: CategorySwitching,
		rule: RuleMeasurement, conduction: ConductionShort,
		defaults: generic,
	},
	Voltmeter: {
		name: "voltmeter", label: "Voltmeter", category: CategoryMeter,
		rule: RuleMeasurement, conduction: ConductionOpen,
		defaults: generic,
	},
	Ammeter: {
		name: "ammeter", label: "Ammeter", category: CategoryMeter,
		rule: RuleMeasurement, conduction: ConductionShort,
		defaults: generic,
	},
	Wattmeter: {
		name: "wattmeter", label: "Wattmeter", category: CategoryMeter,
		rule: RuleMeasurement, conduction: ConductionShort,
		defaults: generic,
	},
}
