package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tailwater/sawmill/internal/alert"
	"github.com/tailwater/sawmill/internal/model"
	"github.com/tailwater/sawmill/internal/monitor"
	"github.com/tailwater/sawmill/internal/report"
)

var tailFromStart bool

var tailCmd = &cobra.Command{
	Use:   "tail <file>",
	Short: "Follow a live access log and fire alert rules on new entries",
	Args:  cobra.ExactArgs(1),
	Run:   runTail,
}

func init() {
	tailCmd.Flags().BoolVar(&tailFromStart, "from-start", false,
		"read the file from the beginning instead of only new lines")
}

func runTail(cmd *cobra.Command, args []string) {
	opts := []monitor.Option{monitor.WithPollInterval(cfg.Monitor.PollInterval)}
	if tailFromStart {
		opts = append(opts, monitor.WithFromStart())
	}

	m, err := monitor.New(args[0], opts...)
	if err != nil {
		slog.Error("monitor failed", "error", err)
		os.Exit(1)
	}

	mgr := defaultRules(cfg.Monitor.LargeResponse)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		fmt.Fprintf(os.Stderr, "\nreceived %v, shutting down...\n", sig)
		cancel()
	}()

	fmt.Fprintf(os.Stderr, "sawmill: following %s\n", args[0])
	err = m.Run(ctx, func(e model.Entry) {
		fmt.Printf("%s %s %s %d %s\n",
			e.Timestamp.Format("15:04:05"), e.Method, e.Path, e.Status, report.FormatBytes(e.Size))
		mgr.Check(e)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("monitor stopped", "error", err)
		os.Exit(1)
	}

	stats := mgr.Stats()
	if stats.Total > 0 {
		fmt.Fprintf(os.Stderr, "alerts fired: %d\n", stats.Total)
		for rule, n := range stats.ByRule {
			fmt.Fprintf(os.Stderr, "  %s: %d\n", rule, n)
		}
	}
}

// defaultRules builds the stock alert set: server errors, repeated auth
// failures, and oversized responses.
func defaultRules(largeResponse int64) *alert.Manager {
	mgr := alert.NewManager()

	mgr.AddRule(alert.Rule{
		Name:      "server_errors",
		Condition: func(e model.Entry) bool { return e.Status >= 500 },
		Action: func(e model.Entry) {
			fmt.Fprintf(os.Stderr, "ALERT server error: %d %s %s from %s\n",
				e.Status, e.Method, e.Path, e.IP)
		},
		Cooldown: cfg.Monitor.AlertCooldown,
	})
	mgr.AddRule(alert.Rule{
		Name:      "unauthorized",
		Condition: func(e model.Entry) bool { return e.Status == 401 || e.Status == 403 },
		Action: func(e model.Entry) {
			fmt.Fprintf(os.Stderr, "ALERT unauthorized access: %s %s from %s\n",
				e.Method, e.Path, e.IP)
		},
		Cooldown: cfg.Monitor.AlertCooldown,
	})
	mgr.AddRule(alert.Rule{
		Name:      "large_responses",
		Condition: func(e model.Entry) bool { return e.Size > largeResponse },
		Action: func(e model.Entry) {
			fmt.Fprintf(os.Stderr, "ALERT large response: %s for %s\n",
				report.FormatBytes(e.Size), e.Path)
		},
		Cooldown: cfg.Monitor.AlertCooldown,
	})

	return mgr
}
