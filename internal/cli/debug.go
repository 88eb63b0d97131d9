package cli

import (
	"github.com/julianstephens/calmher/internal/config"
)

type DebugCmd struct {
	Paths  DebugPathsCmd  `cmd:"" help:"Show config, data and storage locations."`
	Config DebugConfigCmd `cmd:"" help:"Dump the effective configuration as JSON."`
}

type DebugPathsCmd struct{}

func (cmd *DebugPathsCmd) Run(ctx *Context) error {
	return ctx.printJSON(map[string]string{
		"config_file": config.ConfigFile(),
		"data_dir":    config.DataDir(),
		"storage":     ctx.Sink.GetConfigPath(),
	})
}

type DebugConfigCmd struct{}

func (cmd *DebugConfigCmd) Run(ctx *Context) error {
	cfg := *ctx.Config
	if cfg.Storage.DSN != "" {
		cfg.Storage.DSN = "(set)"
	}
	return ctx.printJSON(cfg)
}
