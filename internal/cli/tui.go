package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/calmher/internal/service"
	"github.com/julianstephens/calmher/internal/tui"
)

type TuiCmd struct {
	RequestFlags `embed:""`
}

func (c *TuiCmd) Run(ctx *Context) error {
	req, err := c.Build()
	if err != nil {
		return err
	}

	res, err := ctx.Service.Generate(context.Background(), req, service.GenerateOptions{})
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(res), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
