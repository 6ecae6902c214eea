package utilities_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/antonio-alexander/go-bizadmin/internal"
	"github.com/antonio-alexander/go-bizadmin/internal/utilities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	buffer := &bytes.Buffer{}
	logger := utilities.NewLogger(buffer)
	err := logger.Configure(map[string]string{"LOG_LEVEL": "info"})
	require.NoError(t, err)

	ctx := internal.CtxWithCorrelationId(context.TODO(), "test_logger")
	logger.Debug(ctx, "dropped %d", 1)
	logger.Info(ctx, "kept %d", 2)
	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	err = json.Unmarshal([]byte(lines[0]), &entry)
	require.NoError(t, err)
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "kept 2", entry["message"])
	assert.Equal(t, "test_logger", entry["correlation_id"])
}

func TestLoggerDefaultLevel(t *testing.T) {
	buffer := &bytes.Buffer{}
	logger := utilities.NewLogger(buffer)
	logger.Info(context.TODO(), "dropped")
	logger.Error(context.TODO(), "kept")
	assert.NotContains(t, buffer.String(), "dropped")
	assert.Contains(t, buffer.String(), "kept")

	nop := utilities.NewNopLogger()
	nop.Error(context.TODO(), "nothing")
}

func TestTimers(t *testing.T) {
	timers := utilities.NewTimers()
	index := timers.Start("employee_read")
	elapsed := timers.Stop("employee_read", index)
	assert.GreaterOrEqual(t, elapsed, int64(0))
	assert.Equal(t, int64(-1), timers.Stop("employee_read", index+1))
	assert.Equal(t, int64(-1), timers.Stop("unknown", 0))

	//a running timer doesn't count toward the average
	_ = timers.Start("employee_read")
	all := timers.ReadAll()
	assert.Equal(t, elapsed, all.Totals["employee_read"])
	assert.Equal(t, elapsed, all.Averages["employee_read"])

	_ = timers.Start("never_stopped")
	all = timers.ReadAll()
	assert.Contains(t, all.Totals, "never_stopped")
	assert.NotContains(t, all.Averages, "never_stopped")

	timers.Clear()
	assert.Empty(t, timers.ReadAll().Totals)
}

func TestCounter(t *testing.T) {
	var wg sync.WaitGroup

	counter := utilities.NewCounter()
	success, failure := counter.Read("login")
	assert.Equal(t, -1, success)
	assert.Equal(t, -1, failure)
	for range 10 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			counter.IncrementSuccess("login")
		}()
		go func() {
			defer wg.Done()
			counter.IncrementFailure("login")
		}()
	}
	wg.Wait()
	success, failure = counter.Read("login")
	assert.Equal(t, 10, success)
	assert.Equal(t, 10, failure)
	all := counter.ReadAll()
	assert.Equal(t, 10, all.Successes["login"])
	assert.Equal(t, 10, all.Failures["login"])
	counter.Reset()
	assert.Empty(t, counter.ReadAll().Successes)
}
