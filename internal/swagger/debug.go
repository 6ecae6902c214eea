package swagger

import "github.com/antonio-alexander/go-bizadmin/internal/data"

// swagger:route GET /debug/timers Debug ReadTimers
// Reads the request timers per endpoint.
//
// responses:
//   200: TimersResponseOk

// swagger:response TimersResponseOk
type TimersResponseOk struct {
	// in:body
	Body data.Timers
}

// swagger:route DELETE /debug/timers Debug DeleteTimers
// Deletes all timers.
//
// responses:
//   204: NoContentResponse

// swagger:route GET /debug/counters Debug ReadCounters
// Reads the success and failure counters per endpoint.
//
// responses:
//   200: CountersResponseOk

// swagger:response CountersResponseOk
type CountersResponseOk struct {
	// in:body
	Body data.Counters
}

// swagger:route DELETE /debug/counters Debug DeleteCounters
// Deletes all counters.
//
// responses:
//   204: NoContentResponse
