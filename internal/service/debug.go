package service

import "net/http"

func (s *service) endpointTimersRead(writer http.ResponseWriter, _ *http.Request) {
	handleResponse(writer, http.StatusOK, nil, s.timers.ReadAll())
}

func (s *service) endpointTimersClear(writer http.ResponseWriter, _ *http.Request) {
	s.timers.Clear()
	handleResponse(writer, http.StatusNoContent, nil)
}

func (s *service) endpointCountersRead(writer http.ResponseWriter, _ *http.Request) {
	handleResponse(writer, http.StatusOK, nil, s.counter.ReadAll())
}

func (s *service) endpointCountersClear(writer http.ResponseWriter, _ *http.Request) {
	s.counter.Reset()
	handleResponse(writer, http.StatusNoContent, nil)
}
