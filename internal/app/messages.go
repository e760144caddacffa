package app

import "time"

// TickMsg triggers a simulation step and redraw.
type TickMsg time.Time
