package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"hamcal/internal/app"
	"hamcal/internal/config"
	appLog "hamcal/internal/log"
	"hamcal/internal/timeutil"
	"hamcal/internal/web"
)

type flagConfig struct {
	configPath string
	outDir     string
	listen     string
	serve      bool
	debug      bool
}

func main() {
	flags := parseFlags()
	if flags.debug {
		appLog.SetLevel(appLog.LevelDebug)
	}

	appLog.Info("hamcal starting", "version", "0.1.0")

	configPath := flags.configPath
	if configPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			appLog.Error("failed to resolve default config path", err)
			os.Exit(1)
		}
		configPath = p
	}

	conf, err := config.Load(configPath)
	if err != nil {
		appLog.Error("failed to load config", err, "config_path", configPath)
		os.Exit(1)
	}

	// CLI overrides.
	if flags.outDir != "" {
		conf.OutDir = flags.outDir
	}
	if flags.listen != "" {
		conf.Listen = flags.listen
	}

	appLog.Info("effective config",
		"out_dir", conf.OutDir,
		"timezone", conf.Timezone,
		"horizon_days", conf.HorizonDays,
		"hamfest_max_pages", conf.HamfestMaxPages,
		"refresh", conf.RefreshCron,
		"serve", flags.serve,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		appLog.Info("signal received, shutting down", "signal", sig.String())
		cancel()
	}()

	if !flags.serve {
		if err := runOnce(ctx, conf); err != nil {
			appLog.Error("run failed", err)
			os.Exit(1)
		}
		return
	}

	// Serve mode: generate immediately, then on the cron schedule, while
	// serving the output directory.
	if err := runOnce(ctx, conf); err != nil {
		appLog.Error("initial run failed", err)
		os.Exit(1)
	}

	c := cron.New()
	if _, err := c.AddFunc(conf.RefreshCron, func() {
		if err := runOnce(ctx, conf); err != nil {
			appLog.Error("scheduled run failed", err)
		}
	}); err != nil {
		appLog.Error("invalid refresh schedule", err, "refresh", conf.RefreshCron)
		os.Exit(1)
	}
	c.Start()
	defer c.Stop()

	go func() {
		if err := web.Start(conf.Listen, conf.OutDir); err != nil {
			appLog.Error("http server failed", err, "listen", conf.Listen)
			cancel()
		}
	}()

	<-ctx.Done()
	time.Sleep(100 * time.Millisecond)
	appLog.Info("hamcal exiting")
}

// runOnce snapshots the clock and executes a full pipeline pass. The
// snapshot is shared by every window check and DTSTAMP within the run.
func runOnce(ctx context.Context, conf *config.Config) error {
	clock := timeutil.NewClock(time.Now().UTC(), conf.HorizonDays)
	return app.Run(ctx, conf, clock)
}

func parseFlags() flagConfig {
	var cfg flagConfig

	flag.StringVar(&cfg.configPath, "config", "", "Path to config file (default: per-user config dir)")
	flag.StringVar(&cfg.outDir, "out", "", "Output directory (overrides config if set)")
	flag.StringVar(&cfg.listen, "listen", "", "HTTP listen address for -serve (overrides config if set)")
	flag.BoolVar(&cfg.serve, "serve", false, "Serve the output directory and refresh on a schedule instead of exiting")
	flag.BoolVar(&cfg.debug, "debug", false, "Enable debug logging")

	flag.Parse()

	return cfg
}
