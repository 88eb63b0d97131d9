package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/julianstephens/calmher/internal/models"
	"github.com/julianstephens/calmher/internal/service"
	"github.com/julianstephens/calmher/internal/validation"
)

type GenerateCmd struct {
	RequestFlags `embed:""`

	ICS  string `help:"Write the schedule and your events to this .ics file." type:"path"`
	JSON bool   `help:"Print the API response JSON instead of a listing."`
	Save bool   `help:"Persist the schedule to the configured storage."`
}

func (c *GenerateCmd) Run(ctx *Context) error {
	req, err := c.Build()
	if err != nil {
		return err
	}

	runCtx := context.Background()
	if c.Save {
		if err := ctx.Sink.Load(runCtx); err != nil {
			return err
		}
	}

	res, err := ctx.Service.Generate(runCtx, req, service.GenerateOptions{
		Calendar: c.ICS != "" || c.JSON,
		Save:     c.Save,
	})
	if err != nil {
		return err
	}

	if c.ICS != "" {
		if err := os.WriteFile(c.ICS, []byte(res.CalendarDocument), 0644); err != nil {
			return fmt.Errorf("failed to write calendar: %w", err)
		}
	}

	if c.JSON {
		return ctx.printJSON(models.ScheduleResult{
			Success:          true,
			Schedule:         res.Schedule,
			CalendarDocument: res.CalendarDocument,
		})
	}

	printSchedule(ctx.out(), res.Schedule)
	printConflicts(ctx, res.Conflicts)
	if c.ICS != "" {
		ctx.printf("\nCalendar written to %s\n", c.ICS)
	}
	if res.RecordID != "" {
		ctx.printf("Saved as %s (%s)\n", res.RecordID, ctx.Sink.GetConfigPath())
	}
	return nil
}

func printConflicts(ctx *Context, result validation.ValidationResult) {
	if !result.HasConflicts() {
		return
	}
	ctx.println()
	ctx.printf("%s", warnStyle.Render(result.FormatReport()))
}
