package cli

import "context"

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Sink.Init(context.Background()); err != nil {
		return err
	}
	ctx.printf("Initialized calmher storage at: %s\n", ctx.Sink.GetConfigPath())
	return nil
}
