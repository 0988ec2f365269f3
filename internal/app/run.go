// Package app wires the pipeline together: run every source, aggregate,
// encode the six calendar files and render the HTML pages.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"hamcal/internal/aggregate"
	"hamcal/internal/config"
	"hamcal/internal/fetch"
	"hamcal/internal/ics"
	appLog "hamcal/internal/log"
	"hamcal/internal/model"
	"hamcal/internal/render"
	"hamcal/internal/source"
	"hamcal/internal/timeutil"
)

// calendarNames maps output set names to file base names and calendar
// display names.
var calendarNames = map[string]struct {
	file  string
	title string
}{
	"all":       {"all.ics", "HAMCAL - All"},
	"cw":        {"cw.ics", "HAMCAL - CW Contests"},
	"phone":     {"phone.ics", "HAMCAL - Phone Contests"},
	"digital":   {"digital.ics", "HAMCAL - Digital Contests"},
	"hamfests":  {"hamfests.ics", "HAMCAL - Hamfests"},
	"field-day": {"field-day.ics", "HAMCAL - Field Day"},
}

// Sources builds the three production sources from configuration.
func Sources(cfg *config.Config) []source.Source {
	client := fetch.NewClient(cfg.UserAgent, cfg.FetchTimeoutDuration())
	return []source.Source{
		source.NewContestFeed(client, cfg.ContestFeedURL),
		source.NewContestPage(client, cfg.ContestPageURL),
		source.NewHamfestPages(client, cfg.HamfestPageURL, cfg.HamfestMaxPages),
	}
}

// Collect runs every source in order. A failing source contributes
// whatever it produced before failing and is reported as a warning; it
// never aborts the run.
func Collect(ctx context.Context, sources []source.Source, clock timeutil.Clock) []model.Event {
	var all []model.Event
	for _, src := range sources {
		events, err := src.Fetch(ctx, clock)
		if err != nil {
			appLog.Warn("source ingest degraded", "source", src.Name(), "err", err, "events_kept", len(events))
		} else {
			appLog.Info("source ingest ok", "source", src.Name(), "events", len(events))
		}
		all = append(all, events...)
	}
	return all
}

// Run executes one full pipeline pass against the production sources.
func Run(ctx context.Context, cfg *config.Config, clock timeutil.Clock) error {
	return RunWith(ctx, cfg, clock, Sources(cfg))
}

// RunWith executes one full pipeline pass over the given sources and
// writes all outputs. Only rendering or write failures are returned;
// source degradation is logged and absorbed.
func RunWith(ctx context.Context, cfg *config.Config, clock timeutil.Clock, sources []source.Source) error {
	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("resolve timezone %q: %w", cfg.Timezone, err)
	}

	events := Collect(ctx, sources, clock)
	events = aggregate.Dedup(events)
	sets := aggregate.Split(events)

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	for _, name := range aggregate.Names {
		meta := calendarNames[name]
		body := ics.Encode(meta.title, sets[name], clock.Now)
		if err := writeFile(filepath.Join(cfg.OutDir, meta.file), body); err != nil {
			return err
		}
		appLog.Info("calendar written", "file", meta.file, "events", len(sets[name]))
	}

	summary, err := render.Summary(sets["all"], clock, loc)
	if err != nil {
		return fmt.Errorf("render summary: %w", err)
	}
	if err := writeFile(filepath.Join(cfg.OutDir, "summary.html"), summary); err != nil {
		return err
	}

	index, err := render.Index()
	if err != nil {
		return fmt.Errorf("render index: %w", err)
	}
	if err := writeFile(filepath.Join(cfg.OutDir, "index.html"), index); err != nil {
		return err
	}

	appLog.Info("run complete", "out_dir", cfg.OutDir, "events", len(events),
		"elapsed", time.Since(clock.Now).Round(time.Millisecond))
	return nil
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
