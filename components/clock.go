package components

import "github.com/yohamta/donburi"

// ClockData is the fixed simulation step shared by all systems.
type ClockData struct {
	DT        float64 // seconds per tick before scaling
	TimeScale float64
	Elapsed   float64
	Ticks     int
}

// Step returns the scaled seconds of one tick.
func (c *ClockData) Step() float64 {
	return c.DT * c.TimeScale
}

var Clock = donburi.NewComponentType[ClockData]()
