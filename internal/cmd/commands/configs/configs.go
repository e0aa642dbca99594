package configs

import (
	"flag"
	"fmt"

	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/uos/internal/cmd/base"
)

// Command lists every remote config.
type Command struct {
	*base.Command

	flagFlush bool
}

func (c *Command) Synopsis() string {
	return "List the remote configs of the app"
}

func (c *Command) Help() string {
	return `Usage: uos configs [options]

  This command lists every remote config of the app, keyed by config key.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("configs", flag.ContinueOnError))
	c.AddCommonFlags(f)

	f.BoolVar(
		&c.flagFlush, "flush", false,
		"Ignore any cached config list and fetch it again.",
	)

	return f
}

func (c *Command) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return base.ExitFailed
	}

	rc, code := remoteConfig(c.Command)
	if rc == nil {
		return code
	}

	ctx, stop := c.Context()
	defer stop()

	res, err := rc.FetchAll(ctx, c.flagFlush)
	return base.Report(c.Command, res, err)
}

// ConfigCommand groups the single-config subcommands.
type ConfigCommand struct {
	*base.Command
}

func (c *ConfigCommand) Synopsis() string {
	return "Read and write single remote configs"
}

func (c *ConfigCommand) Help() string {
	return `Usage: uos config <subcommand> [options] [args]

  This command groups subcommands for working with one remote config.

  Use "get" to read a config by key from the cached list, "fetch" to read it
  by id from the service, "set" to update it and "delete" to remove it.`
}

func (c *ConfigCommand) Run(args []string) int {
	return cli.RunResultHelp
}
