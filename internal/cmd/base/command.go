// Package base holds what every uos CLI command shares: logging, UI, config
// loading, client construction and output.
package base

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/hashicorp-forge/uos/internal/config"
	"github.com/hashicorp-forge/uos/pkg/uos"
)

// Exit codes.
const (
	ExitOK          = 0
	ExitFailed      = 1
	ExitConfigError = 2
)

// Command is embedded by every command.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui

	// Fs and LookupEnv are replaced in tests.
	Fs        afero.Fs
	LookupEnv func(string) (string, bool)

	// Sender, when set, replaces the HTTP transport of built clients.
	Sender uos.Sender

	flagConfig string
	flagFormat string
}

// NewCommand creates a Command reading files and environment from the OS.
func NewCommand(log hclog.Logger, ui cli.Ui) *Command {
	return &Command{
		Log:       log,
		UI:        ui,
		Fs:        afero.NewOsFs(),
		LookupEnv: os.LookupEnv,
	}
}

// FlagSet wraps flag.FlagSet with help rendering.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet wraps f. Parse errors are returned rather than printed.
func NewFlagSet(f *flag.FlagSet) *FlagSet {
	f.SetOutput(&bytes.Buffer{})
	return &FlagSet{FlagSet: f}
}

// Help renders the flags for a command's help text.
func (f *FlagSet) Help() string {
	var b strings.Builder
	b.WriteString("\n\nOptions:\n")
	f.VisitAll(func(fl *flag.Flag) {
		fmt.Fprintf(&b, "\n  -%s", fl.Name)
		if fl.DefValue != "" && fl.DefValue != "false" {
			fmt.Fprintf(&b, "=%s", fl.DefValue)
		}
		fmt.Fprintf(&b, "\n      %s\n", fl.Usage)
	})
	return b.String()
}

// AddCommonFlags registers the -config and -format flags.
func (c *Command) AddCommonFlags(f *FlagSet) {
	f.StringVar(&c.flagConfig, "config", "", "Path to an HCL config file (optional).")
	f.StringVar(&c.flagFormat, "format", "json", "Output format: json or yaml.")
}

func (c *Command) getenv(key string) string {
	v, _ := c.LookupEnv(key)
	return v
}

// Client loads configuration and builds a uos client.
func (c *Command) Client() (*uos.Client, error) {
	cfg, err := config.Load(c.Fs, c.flagConfig, c.getenv)
	if err != nil {
		return nil, err
	}

	if cfg.LogLevel != "" {
		c.Log.SetLevel(hclog.LevelFromString(cfg.LogLevel))
	}

	clientCfg, err := cfg.ClientConfig()
	if err != nil {
		return nil, err
	}
	clientCfg.Logger = c.Log
	clientCfg.Credentials = uos.NewCredentials(c.LookupEnv)
	clientCfg.Sender = c.Sender

	return uos.New(clientCfg)
}

// Context returns a context canceled on SIGINT or SIGTERM.
func (c *Command) Context() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// Output writes v to the UI in the selected format.
func (c *Command) Output(v any) error {
	var out []byte
	var err error

	switch c.flagFormat {
	case "", "json":
		out, err = json.MarshalIndent(v, "", "  ")
	case "yaml":
		// Round trip through JSON so YAML keys follow the json tags.
		var generic any
		if out, err = json.Marshal(v); err == nil {
			if err = json.Unmarshal(out, &generic); err == nil {
				out, err = yaml.Marshal(generic)
			}
		}
	default:
		return fmt.Errorf("unknown format %q", c.flagFormat)
	}
	if err != nil {
		return fmt.Errorf("error encoding output: %w", err)
	}

	c.UI.Output(strings.TrimRight(string(out), "\n"))
	return nil
}

// Report prints a call's outcome and returns the exit code: ExitConfigError
// for a configuration error, ExitFailed for a failed Result, ExitOK otherwise.
func Report[T any](c *Command, res uos.Result[T], err error) int {
	if err != nil {
		c.UI.Error(err.Error())
		return ExitConfigError
	}
	if !res.OK {
		c.UI.Error(res.Error)
		return ExitFailed
	}
	if err := c.Output(res.Value); err != nil {
		c.UI.Error(err.Error())
		return ExitFailed
	}
	return ExitOK
}

// Done reports a call that returns no value.
func Done(c *Command, res uos.Result[struct{}], err error, msg string) int {
	if err != nil {
		c.UI.Error(err.Error())
		return ExitConfigError
	}
	if !res.OK {
		c.UI.Error(res.Error)
		return ExitFailed
	}
	c.UI.Info(msg)
	return ExitOK
}
