package internal

import (
	"context"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
)

func GenerateId() string {
	return uuid.Must(uuid.NewRandom()).String()
}

// EnvsFromOs converts the process environment into the map consumed by
// Configure; later entries win.
func EnvsFromOs() map[string]string {
	envs := make(map[string]string)
	for _, env := range os.Environ() {
		if s := strings.Split(env, "="); len(s) > 1 {
			envs[s[0]] = strings.Join(s[1:], "=")
		}
	}
	return envs
}

// LaunchContext returns a context that is cancelled when a signal arrives
// on osSignal or when the returned cancel is called.
func LaunchContext(wg *sync.WaitGroup, osSignal chan os.Signal) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	wg.Add(1)
	go func() {
		defer wg.Done()

		select {
		case <-ctx.Done():
		case <-osSignal:
			cancel()
		}
	}()
	return ctx, cancel
}
