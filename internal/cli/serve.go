package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/julianstephens/calmher/internal/server"
)

type ServeCmd struct {
	Addr string `help:"Listen address; overrides server.addr."`
}

func (c *ServeCmd) Run(ctx *Context) error {
	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := ctx.Sink.Load(runCtx); err != nil {
		return err
	}

	cfg := server.Config{
		Addr:           ctx.Config.Server.Addr,
		CORSOrigins:    ctx.Config.Server.CORSOrigins,
		RequestTimeout: ctx.Config.Server.RequestTimeout,
	}
	if c.Addr != "" {
		cfg.Addr = c.Addr
	}

	return server.New(cfg, ctx.Service, ctx.Metrics).Run(runCtx)
}
