package cli

import (
	"context"
	"fmt"
)

// Health probes the backend once and reports the result, updating Mode.
func (a *App) Health(ctx context.Context) error {
	if err := a.health.Ping(ctx); err != nil {
		printlnFn(fmt.Sprintf("Backend unreachable: %s", err.Error()))
		a.setMode(ModeOffline)
		return err
	}
	printlnFn("Backend is up")
	a.setMode(ModeOnline)
	return nil
}
