package data

type Timers struct {
	Totals   map[string]int64 `json:"totals,omitempty"`   //nanoseconds
	Averages map[string]int64 `json:"averages,omitempty"` //nanoseconds
}

type Counters struct {
	Successes map[string]int `json:"successes,omitempty"`
	Failures  map[string]int `json:"failures,omitempty"`
}
