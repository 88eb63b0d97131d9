package cli

import (
	"context"

	"github.com/julianstephens/calmher/internal/service"
)

// ValidateCmd checks a request without printing the schedule: bad dates and
// out-of-range scores fail, unreadable or overlapping events are reported.
type ValidateCmd struct {
	RequestFlags `embed:""`
}

func (c *ValidateCmd) Run(ctx *Context) error {
	req, err := c.Build()
	if err != nil {
		return err
	}

	ctx.println("Validating request...")
	res, err := ctx.Service.Generate(context.Background(), req, service.GenerateOptions{})
	if err != nil {
		return err
	}

	ctx.println()
	ctx.println(res.Conflicts.FormatReport())
	return nil
}
