// Package bootstrap provides application lifecycle helpers.
package bootstrap

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
)

// App runs a long-lived process and coordinates graceful shutdown.
type App struct {
	mu    sync.Mutex
	hooks []func(ctx context.Context) error
}

// New creates a new App.
func New() *App {
	return &App{}
}

// AddShutdownHook registers a function to call during graceful shutdown.
// Hooks run in reverse registration order. Safe for concurrent use.
func (app *App) AddShutdownHook(hook func(ctx context.Context) error) {
	app.mu.Lock()
	defer app.mu.Unlock()
	app.hooks = append(app.hooks, hook)
}

// Run executes run with a context cancelled on OS interrupt. When the
// interrupt arrives, registered shutdown hooks run in LIFO order and their
// joined errors are returned. An error from run before any signal is
// returned as is.
func (app *App) Run(ctx context.Context, run func(ctx context.Context) error) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		if err := run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		return app.shutdown(context.Background())
	case err := <-errCh:
		return err
	}
}

func (app *App) shutdown(ctx context.Context) error {
	app.mu.Lock()
	hooks := make([]func(ctx context.Context) error, len(app.hooks))
	copy(hooks, app.hooks)
	app.mu.Unlock()

	var errs []error
	for i := len(hooks) - 1; i >= 0; i-- {
		if err := hooks[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
