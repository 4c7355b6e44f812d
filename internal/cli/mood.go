package cli

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	apperrors "github.com/julianstephens/mindcare/internal/errors"
)

type MoodCmd struct {
	List   MoodListCmd   `cmd:"" help:"List recent mood entries." default:"1"`
	Record MoodRecordCmd `cmd:"" help:"Record how you feel right now."`
	Stats  MoodStatsCmd  `cmd:"" help:"Show average mood and trend."`
}

type MoodListCmd struct {
	Limit int  `help:"Maximum entries to show (0 for all)." default:"0"`
	JSON  bool `help:"Print entries as JSON."`
}

func (c *MoodListCmd) Run(ctx *Context) error {
	entries := ctx.Mood.List()
	if c.Limit > 0 {
		entries = ctx.Mood.Recent(c.Limit)
	}
	if c.JSON {
		return ctx.printJSON(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(ctx.out(), "No mood entries yet.")
		return nil
	}

	for _, e := range entries {
		fmt.Fprintf(ctx.out(), "%s  %-16s %s", e.Date, FormatScore(e.Score), strings.Join(e.Emotions, ", "))
		if e.Note != "" {
			fmt.Fprintf(ctx.out(), "  %q", e.Note)
		}
		fmt.Fprintf(ctx.out(), "  (%s)\n", humanize.Time(e.CreatedAt))
	}
	return nil
}

type MoodRecordCmd struct {
	Score    int      `arg:"" help:"Mood score from 1 (very low) to 5 (excellent)."`
	Emotions []string `help:"Emotions you are feeling." short:"e" sep:","`
	Note     string   `help:"Optional note." short:"n"`
}

func (c *MoodRecordCmd) Run(ctx *Context) error {
	entry, err := ctx.Mood.Record(c.Score, c.Emotions, c.Note)
	if err != nil {
		return err
	}

	fmt.Fprintf(ctx.out(), "Recorded %s for %s\n", FormatScore(entry.Score), entry.Date)
	return nil
}

type MoodStatsCmd struct {
	JSON bool `help:"Print statistics as JSON."`
}

func (c *MoodStatsCmd) Run(ctx *Context) error {
	stats, err := ctx.Mood.Stats()
	if err != nil {
		if apperrors.IsInsufficientData(err) {
			fmt.Fprintln(ctx.out(), "No mood entries yet. Record one with 'mindcare mood record'.")
			return nil
		}
		return err
	}
	if c.JSON {
		return ctx.printJSON(stats)
	}

	fmt.Fprintf(ctx.out(), "Entries:       %d\n", stats.Count)
	fmt.Fprintf(ctx.out(), "Average mood:  %.1f/5\n", stats.Average)
	fmt.Fprintf(ctx.out(), "Trend:         %s (recent %.1f vs prior %.1f)\n", stats.TrendLabel(), stats.RecentTrendAvg, stats.PriorTrendAvg)
	if !stats.HasFullTrend() {
		fmt.Fprintf(ctx.out(), "               based on %d recent and %d prior entries\n", stats.RecentCount, stats.PriorCount)
	}
	return nil
}
