package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/julianstephens/calmher/internal/calendar"
)

// ImportCmd converts an .ics export into the calendar_events JSON the
// generator accepts.
type ImportCmd struct {
	File   string `arg:"" help:"iCalendar file to convert." type:"existingfile"`
	Output string `short:"o" help:"Write JSON here instead of stdout." type:"path"`
}

func (c *ImportCmd) Run(ctx *Context) error {
	f, err := os.Open(c.File)
	if err != nil {
		return err
	}
	defer f.Close()

	events, err := calendar.ParseEvents(f)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", c.File, err)
	}

	if c.Output == "" {
		return ctx.printJSON(events)
	}

	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.Output, append(data, '\n'), 0644); err != nil {
		return err
	}
	ctx.printf("Imported %d events into %s\n", len(events), c.Output)
	return nil
}
