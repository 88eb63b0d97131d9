package cli

import (
	"github.com/julianstephens/calmher/internal/scheduler"
)

type ClassifyCmd struct {
	Score float64 `arg:"" help:"Burnout score from 1 to 5."`
}

func (c *ClassifyCmd) Run(ctx *Context) error {
	category, err := scheduler.Classify(c.Score)
	if err != nil {
		return err
	}
	ctx.println(category.String())
	return nil
}
