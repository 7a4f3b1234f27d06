package weapon

import "log"

// GripTracker counts the appendages holding the item.
type GripTracker struct {
	count int
}

// Grab records one more holder.
func (g *GripTracker) Grab() {
	g.count++
}

// Release records one holder letting go. Unpaired releases are ignored so
// the count never goes negative.
func (g *GripTracker) Release() {
	if g.count == 0 {
		log.Println("Warning: release without a matching grab")
		return
	}
	g.count--
}

// Count returns the number of holders.
func (g *GripTracker) Count() int {
	return g.count
}

// InputEdgeTracker turns alternate-use start/stop signals into a pressed
// flag and the armed latch used by the overcharged detonation.
type InputEdgeTracker struct {
	pressed bool
	armed   bool
}

// Press handles an alternate-use start. Repeated starts are ignored.
func (in *InputEdgeTracker) Press() {
	if !in.pressed {
		in.pressed = true
	}
}

// Release handles an alternate-use stop. It clears the latch too, which is
// what lets the next press through.
func (in *InputEdgeTracker) Release() {
	in.pressed = false
	in.armed = false
}

// Arm latches the current pressed value.
func (in *InputEdgeTracker) Arm() {
	in.armed = in.pressed
}

// Pressed reports whether the button is held.
func (in *InputEdgeTracker) Pressed() bool {
	return in.pressed
}

// Armed reports the latch captured by Arm.
func (in *InputEdgeTracker) Armed() bool {
	return in.armed
}

// Triggered reports a press that was not already held when Arm ran.
func (in *InputEdgeTracker) Triggered() bool {
	return in.pressed && !in.armed
}
