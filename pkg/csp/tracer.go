package csp

import "time"

type SearchPosition interface {
	Assigned() []time.Time
	Meeting() int
}

type Tracer interface {
	Trace(p SearchPosition)
}
