package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/julianstephens/calmher/internal/constants"
	"github.com/julianstephens/calmher/internal/keyring"
)

type DoctorCmd struct{}

type check struct {
	name    string
	run     func() error
	warning bool
}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	ctx.println("Running diagnostics...")
	ctx.println()

	checks := []check{
		{name: "Configuration", run: func() error { return checkConfig(ctx) }},
		{name: "Storage reachable", run: func() error { return checkStorage(ctx) }},
		{name: "OS keyring", run: func() error { return checkKeyring(ctx) }, warning: true},
		{name: "Clock/timezone", run: func() error { return checkClock(ctx) }},
	}

	hasError := false
	for _, c := range checks {
		err := c.run()
		switch {
		case err == nil:
			ctx.printf("%s %s: OK\n", okStyle.Render("✓"), c.name)
		case c.warning:
			ctx.printf("%s %s: WARNING\n", warnStyle.Render("⚠"), c.name)
			ctx.printf("   %v\n", err)
		default:
			ctx.printf("%s %s: FAIL\n", failStyle.Render("✗"), c.name)
			ctx.printf("   Error: %v\n", err)
			hasError = true
		}
	}

	ctx.println()
	if hasError {
		ctx.println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	ctx.println("All diagnostics passed!")
	return nil
}

func checkConfig(ctx *Context) error {
	if ctx.Config == nil {
		return fmt.Errorf("no configuration loaded")
	}
	if errs := ctx.Config.Validate(); len(errs) > 0 {
		return fmt.Errorf("%d invalid setting(s), first: %v", len(errs), errs[0])
	}
	return nil
}

func checkStorage(ctx *Context) error {
	c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := ctx.Sink.Load(c); err != nil {
		return fmt.Errorf("%s: %w", ctx.Sink.GetConfigPath(), err)
	}
	return nil
}

func checkKeyring(ctx *Context) error {
	if ctx.Config == nil || ctx.Config.Storage.Driver != constants.DriverPostgres {
		return nil
	}
	if !keyring.IsAvailable() {
		return fmt.Errorf("no OS keyring; storage.dsn must carry the connection details")
	}
	return nil
}

func checkClock(ctx *Context) error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	loc := ctx.Service.Location()
	name, offset := now.In(loc).Zone()
	ctx.printf("   Scheduling in %s (%s, UTC%+d)\n", loc, name, offset/3600)
	return nil
}
