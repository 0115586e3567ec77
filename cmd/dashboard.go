package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vibast-solutions/gym-console/app/view"
)

var dashboardWatch bool

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the dashboard metrics",
	Long:  "Show the dashboard metrics. With --watch the dashboard is refreshed every DASHBOARD_REFRESH_SECONDS until interrupted.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c := mustCreateConsole()
		defer c.Close()

		if dashboardWatch {
			return watchDashboard(cmd.Context(), cmd.OutOrStdout(), c, c.cfg.Dashboard.RefreshInterval)
		}
		return showDashboard(cmd.Context(), cmd.OutOrStdout(), c)
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	dashboardCmd.Flags().BoolVar(&dashboardWatch, "watch", false, "Refresh continuously using the configured interval")
}

func showDashboard(ctx context.Context, w io.Writer, c *console) error {
	var dashboard *view.Dashboard
	err := c.load(ctx, "/dashboard", func(ctx context.Context) error {
		var err error
		dashboard, err = c.dashboard.Build(ctx)
		return err
	})
	if err != nil {
		return err
	}
	return printResult(w, dashboard, dashboard)
}

// watchDashboard redraws the dashboard on every tick. A failed refresh is
// logged and the next tick tries again.
func watchDashboard(ctx context.Context, w io.Writer, c *console, interval time.Duration) error {
	if interval <= 0 {
		logrus.WithField("interval", interval.String()).Fatal("invalid dashboard refresh interval")
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	refreshDashboard(ctx, w, c)
	for {
		select {
		case <-ctx.Done():
			logrus.Info("Dashboard watch stopped")
			return nil
		case <-ticker.C:
			refreshDashboard(ctx, w, c)
		}
	}
}

func refreshDashboard(ctx context.Context, w io.Writer, c *console) {
	start := time.Now()
	err := showDashboard(ctx, w, c)
	latency := time.Since(start)
	entry := logrus.WithField("job", "dashboard_refresh").WithField("latency", latency.String())
	if err != nil {
		entry.WithError(err).Error("job_failed")
		return
	}
	entry.Debug("job_completed")
}
