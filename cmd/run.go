package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rpupo63/portfolio-site/api"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 30 * time.Second

// worker is a background loop that runs for as long as the servers do
type worker func(ctx context.Context) error

// runServers starts the servers and workers, then blocks until a server fails
// or the process is interrupted. Servers are shut down gracefully and workers
// are cancelled before it returns.
func runServers(servers []api.Server, workers ...worker) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errChannel := make(chan error, len(servers)+1)
	for _, server := range servers {
		go server.Start(errChannel)
	}

	// Listen for interrupt signals to gracefully shutdown the servers
	go listenToInterrupt(ctx, errChannel)

	g, gctx := errgroup.WithContext(ctx)
	for _, w := range workers {
		g.Go(func() error { return w(gctx) })
	}

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	for _, server := range servers {
		server.ShutdownGracefully(shutdownTimeout)
	}
	cancel()

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if errors.Is(fatalErr, errInterrupted) || errors.Is(fatalErr, http.ErrServerClosed) {
		return nil
	}
	return fatalErr
}

var errInterrupted = errors.New("interrupted")

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(ctx context.Context, errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(c)

	select {
	case sig := <-c:
		errChannel <- fmt.Errorf("%w: %s", errInterrupted, sig)
	case <-ctx.Done():
	}
}
