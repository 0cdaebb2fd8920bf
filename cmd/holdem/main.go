package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/torafjell/holdem-client/internal/channel"
	"github.com/torafjell/holdem-client/internal/client"
	"github.com/torafjell/holdem-client/internal/debugapi"
	"github.com/torafjell/holdem-client/internal/render"
)

func main() {
	// .env is optional; flags beat env, env beats defaults.
	_ = godotenv.Load()

	serverURL := flag.String("server", envOr("HOLDEM_SERVER_URL", "ws://localhost:5000/ws"), "websocket URL of the game server")
	debugAddr := flag.String("debug-addr", envOr("HOLDEM_DEBUG_ADDR", ""), "optional listen address for the diagnostics endpoint")
	logPath := flag.String("log", envOr("HOLDEM_LOG", "holdem.log"), "log file (the terminal belongs to the table)")
	flag.Parse()

	log, err := newLogger(*logPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(*serverURL, *debugAddr, log); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("client exited", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(serverURL, debugAddr string, log *zap.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := channel.Dial(ctx, serverURL, log)
	if err != nil {
		return err
	}
	defer ch.Close()

	cl := client.New(ctx, ch, log, client.WithOnUpdate(func(snap client.Snapshot) {
		// Redraw the whole screen after every handled message.
		fmt.Print("\033[2J\033[H" + render.Render(snap) + "> ")
	}))

	g, ctx := errgroup.WithContext(ctx)

	// Transport read loop. When it ends, everything above it is stale.
	g.Go(func() error {
		err := ch.Run(ctx)
		cl.Inbox() <- client.TransportLost{}
		return err
	})

	// Pump decoded envelopes into the dispatch loop.
	g.Go(func() error {
		for env := range ch.Events() {
			cl.Inbox() <- client.ServerEvent{Env: env}
		}
		return nil
	})

	// Terminal input.
	g.Go(func() error {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := scanner.Text()
			if line == "" {
				continue
			}
			msg, err := client.ParseCommand(line)
			if err != nil {
				fmt.Println(err)
				continue
			}
			cl.Inbox() <- msg
			if _, quit := msg.(client.Shutdown); quit {
				cancel()
				return nil
			}
		}
		cancel()
		return scanner.Err()
	})

	if debugAddr != "" {
		srv := &http.Server{Addr: debugAddr, Handler: debugapi.Routes(cl)}
		g.Go(func() error {
			log.Info("diagnostics listening", zap.String("addr", debugAddr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			return srv.Shutdown(context.Background())
		})
	}

	return g.Wait()
}

func newLogger(path string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	return cfg.Build()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
