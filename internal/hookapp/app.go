// Package hookapp runs the urlfetch example hook end to end: it enables the
// device's Wi-Fi when it is off, waits for the network to come up, downloads
// a configured URL into the save directory, and notifies the reader.
package hookapp

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/plato-tools/platohook"
	"github.com/plato-tools/platohook/internal/fetch"
	"github.com/plato-tools/platohook/internal/logging"
)

// Config comes from the environment; Plato passes everything else as
// positional arguments.
type Config struct {
	URL         string        `env:"URLFETCH_URL,required,notEmpty"`
	HTTPTimeout time.Duration `env:"URLFETCH_HTTP_TIMEOUT" envDefault:"2m"`
	WaitTimeout time.Duration `env:"URLFETCH_WAIT_TIMEOUT" envDefault:"1m"`
	KeepWifi    bool          `env:"URLFETCH_KEEP_WIFI"`
}

// Execute parses the hook arguments and environment, then runs the fetch
// flow over the given protocol streams. It returns a process exit code.
func Execute(ctx context.Context, argv []string, out io.Writer, in io.Reader, stderr io.Writer) int {
	args, err := platohook.ParseHookArgs(argv)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		fmt.Fprintf(stderr, "error: parse environment: %v\n", err)
		return 2
	}

	logRuntime, err := logging.New("urlfetch")
	if err != nil {
		fmt.Fprintf(stderr, "error: setup logging: %v\n", err)
		return 1
	}
	defer func() { _ = logRuntime.Close() }()
	logger := logRuntime.Logger

	channel := platohook.New(out, in)
	if err := run(ctx, channel, args, cfg, logger); err != nil {
		logger.Error("hook failed", "error", err.Error())
		fmt.Fprintf(stderr, "error: %v\n", err)
		_ = channel.Notify(fmt.Sprintf("Fetch failed: %v", err))
		return 1
	}
	return 0
}

func run(ctx context.Context, channel *platohook.Channel, args platohook.HookArgs, cfg Config, logger *slog.Logger) error {
	logger.Info("hook start",
		"library", args.LibraryPath,
		"save_dir", args.SaveDir,
		"wifi", args.Wifi.String(),
		"online", args.Online,
		"url", cfg.URL,
	)

	wifiWasOff := args.Wifi == platohook.WifiDisabled
	if wifiWasOff {
		if err := channel.SetWifi(platohook.WifiEnabled); err != nil {
			return fmt.Errorf("enable wifi: %w", err)
		}
	}

	if !args.Online {
		if err := waitForNetworkUp(ctx, channel, cfg.WaitTimeout, logger); err != nil {
			return err
		}
	}

	client := fetch.New(args.SaveDir, cfg.HTTPTimeout)
	saved, err := client.Download(ctx, cfg.URL)
	if err != nil {
		return err
	}
	logger.Info("document saved", "path", saved)

	if err := channel.Notify(fmt.Sprintf("Saved %s", filepath.Base(saved))); err != nil {
		return fmt.Errorf("notify: %w", err)
	}

	if wifiWasOff && !cfg.KeepWifi {
		if err := channel.SetWifi(platohook.WifiDisabled); err != nil {
			return fmt.Errorf("restore wifi: %w", err)
		}
	}
	return nil
}

// waitForNetworkUp composes a deadline around the channel's blocking read by
// running it on a goroutine that is abandoned when the deadline passes. An
// abandoned read still owns the source, so the channel must not be read
// from again after a timeout; writes remain safe.
func waitForNetworkUp(ctx context.Context, channel *platohook.Channel, timeout time.Duration, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		ev  platohook.NetworkEvent
		err error
	}
	events := make(chan result, 1)
	go func() {
		for {
			ev, err := channel.WaitForNetwork()
			if err != nil {
				events <- result{err: err}
				return
			}
			if ev.Status == "up" {
				events <- result{ev: ev}
				return
			}
			logger.Debug("ignoring network event", "type", ev.Type, "status", ev.Status)
		}
	}()

	select {
	case res := <-events:
		if res.err != nil {
			return fmt.Errorf("wait for network: %w", res.err)
		}
		logger.Info("network up", "type", res.ev.Type)
		return nil
	case <-ctx.Done():
		return fmt.Errorf("wait for network: %w", ctx.Err())
	}
}
