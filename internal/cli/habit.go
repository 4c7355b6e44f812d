package cli

import (
	"fmt"

	"github.com/julianstephens/mindcare/internal/habits"
)

type HabitCmd struct {
	List   HabitListCmd   `cmd:"" help:"List habits." default:"1"`
	Toggle HabitToggleCmd `cmd:"" help:"Toggle today's completion of a habit."`
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	Stats  HabitStatsCmd  `cmd:"" help:"Show completion rate and streak totals."`
}

type HabitListCmd struct {
	JSON bool `help:"Print habits as JSON."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	list := ctx.Ledger.List()
	if c.JSON {
		return ctx.printJSON(list)
	}

	if len(list) == 0 {
		fmt.Fprintln(ctx.out(), "No habits found.")
		return nil
	}

	for _, h := range list {
		check := " "
		if h.CompletedToday {
			check = "✓"
		}
		p := habits.WeeklyProgress(h)
		fmt.Fprintf(ctx.out(), "[%s] %s %-22s %s  %d/%d  🔥 %d  (%s)\n",
			check, h.Icon, h.Name, FormatWeek(h.WeeklyRecord), p.Completed, p.Target, h.Streak, h.ID)
	}
	return nil
}

type HabitToggleCmd struct {
	ID string `arg:"" help:"Habit ID."`
}

func (c *HabitToggleCmd) Run(ctx *Context) error {
	h, err := ctx.Ledger.Toggle(c.ID)
	if err != nil {
		return err
	}

	if h.CompletedToday {
		fmt.Fprintf(ctx.out(), "Completed %q today. Streak: %d\n", h.Name, h.Streak)
	} else {
		fmt.Fprintf(ctx.out(), "Unmarked %q for today. Streak: %d\n", h.Name, h.Streak)
	}
	return nil
}

type HabitAddCmd struct {
	Name        string `arg:"" help:"Habit name."`
	Description string `help:"Short description." short:"d"`
	Category    string `help:"Habit category (default: Mental Wellness)."`
	Target      int    `help:"Target days per week (1-7)." default:"7"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	h, err := ctx.Ledger.Add(habits.NewHabit{
		Name:              c.Name,
		Description:       c.Description,
		Category:          c.Category,
		TargetDaysPerWeek: c.Target,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(ctx.out(), "Added habit: %s %s (%s, %d days/week)\n", h.Icon, h.Name, h.Category, h.TargetDaysPerWeek)
	return nil
}

type HabitStatsCmd struct{}

func (c *HabitStatsCmd) Run(ctx *Context) error {
	done, total := ctx.Ledger.CompletedToday()
	fmt.Fprintf(ctx.out(), "Habits today:    %d/%d\n", done, total)
	fmt.Fprintf(ctx.out(), "Completion rate: %.0f%%\n", ctx.Ledger.CompletionRate())
	fmt.Fprintf(ctx.out(), "Total streak:    %d days\n", ctx.Ledger.TotalStreak())
	return nil
}
