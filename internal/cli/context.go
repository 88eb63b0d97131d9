package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/calmher/internal/config"
	"github.com/julianstephens/calmher/internal/server"
	"github.com/julianstephens/calmher/internal/service"
	"github.com/julianstephens/calmher/internal/storage"
)

// Context is handed to every command's Run method by kong.
type Context struct {
	Config  *config.Config
	Service *service.Service
	Sink    storage.Sink
	Metrics *server.Metrics
	Out     io.Writer
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) printf(format string, args ...any) {
	fmt.Fprintf(c.out(), format, args...)
}

func (c *Context) println(args ...any) {
	fmt.Fprintln(c.out(), args...)
}

func (c *Context) printJSON(v any) error {
	enc := json.NewEncoder(c.out())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
