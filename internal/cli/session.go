// Package cli implements the interactive terminal front-end.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
)

// errEnd signals a normal end of the interactive session.
var errEnd = errors.New("session ended")

//go:generate mockgen -source=session.go -destination=../mocks/cli/mock_session.go -package=mock_cli Session

// Session is one round of an interactive loop.
type Session interface {
	Session(ctx context.Context) error
}

// Run repeats session rounds until the session ends or an interrupt arrives.
func Run(ctx context.Context, session Session) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	errCh := make(chan error)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := session.Session(ctx); err != nil {
				if errors.Is(err, errEnd) {
					break
				}
				errCh <- err
				break
			}
		}
	}()
	select {
	case <-ctx.Done():
		fmt.Println("Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}
