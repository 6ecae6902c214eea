package client

import (
	"context"
	"net/http"

	"github.com/antonio-alexander/go-bizadmin/internal/data"
)

func (c *client) TimersRead(ctx context.Context) (*data.Timers, error) {
	envelope, err := c.Do(ctx, Request{Path: data.RouteDebugTimers})
	if err != nil {
		return nil, err
	}
	timers := &data.Timers{}
	if err := envelope.Decode(timers); err != nil {
		return nil, err
	}
	return timers, nil
}

func (c *client) TimersClear(ctx context.Context) error {
	_, err := c.Do(ctx, Request{
		Path:   data.RouteDebugTimers,
		Method: http.MethodDelete,
	})
	return err
}

func (c *client) CountersRead(ctx context.Context) (*data.Counters, error) {
	envelope, err := c.Do(ctx, Request{Path: data.RouteDebugCounters})
	if err != nil {
		return nil, err
	}
	counters := &data.Counters{}
	if err := envelope.Decode(counters); err != nil {
		return nil, err
	}
	return counters, nil
}

func (c *client) CountersClear(ctx context.Context) error {
	_, err := c.Do(ctx, Request{
		Path:   data.RouteDebugCounters,
		Method: http.MethodDelete,
	})
	return err
}
