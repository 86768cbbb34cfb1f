package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aretw0/collage/internal/host"
	httpAdapter "github.com/aretw0/collage/pkg/adapters/http"
)

// ServeOptions configures the headless host.
type ServeOptions struct {
	Options
	Addr string
}

// Handler returns the admin API handler for app.
func Handler(app *App) http.Handler {
	admin := host.NewAdmin(app.Loop, app.Container)
	return httpAdapter.NewHandler(admin,
		httpAdapter.WithGatherer(app.Registry),
		httpAdapter.WithStreams(app.Streams),
		httpAdapter.WithLogger(app.Logger.With("component", "http")),
	)
}

// Serve runs the container headless with the admin API until ctx is cancelled.
func Serve(ctx context.Context, opts ServeOptions, out io.Writer) error {
	app, err := NewApp(opts.Options, false)
	if err != nil {
		return err
	}
	defer app.Close()

	addr := opts.Addr
	if addr == "" {
		addr = app.Config.Admin.Addr
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           Handler(app),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	loopErr := make(chan error, 1)
	go func() { loopErr <- app.Loop.Run(ctx) }()

	serverErrors := make(chan error, 1)
	go func() {
		printSystemMessage(out, "Collage admin API listening on %s", addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		cancel()
		<-loopErr
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		app.Logger.Warn("Graceful shutdown did not complete", "err", err)
		_ = srv.Close()
	}
	<-loopErr
	if err := <-serverErrors; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	printSystemMessage(out, "Collage stopped")
	return nil
}
