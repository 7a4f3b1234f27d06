package weapon

// Mode is one of the weapon's operating states.
type Mode int

const (
	Idle Mode = iota
	Sharp
	Overcharged
	Coolingdown
)

var modeNames = map[Mode]string{
	Idle:        "Idle",
	Sharp:       "Sharp",
	Overcharged: "Overcharged",
	Coolingdown: "Coolingdown",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "Unknown"
}
