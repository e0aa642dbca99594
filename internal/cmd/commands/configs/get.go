package configs

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/uos/internal/cmd/base"
	"github.com/hashicorp-forge/uos/pkg/uos/remoteconfig"
)

type GetCommand struct {
	*base.Command

	flagKey string
}

func (c *GetCommand) Synopsis() string {
	return "Show a remote config by key"
}

func (c *GetCommand) Help() string {
	return `Usage: uos config get [options]

  This command looks up a remote config by key in the config list.` +
		c.Flags().Help()
}

func (c *GetCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("config get", flag.ContinueOnError))
	c.AddCommonFlags(f)

	f.StringVar(&c.flagKey, "key", "", "Config key (required).")

	return f
}

func (c *GetCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return base.ExitFailed
	}
	if c.flagKey == "" {
		c.UI.Error("key is required")
		return base.ExitFailed
	}

	rc, code := remoteConfig(c.Command)
	if rc == nil {
		return code
	}

	ctx, stop := c.Context()
	defer stop()

	res, err := rc.Get(ctx, c.flagKey)
	return base.Report(c.Command, res, err)
}

type FetchCommand struct {
	*base.Command

	flagID     string
	flagLegacy bool
}

func (c *FetchCommand) Synopsis() string {
	return "Fetch a remote config by id"
}

func (c *FetchCommand) Help() string {
	return `Usage: uos config fetch [options]

  This command fetches a single remote config by id from the service.` +
		c.Flags().Help()
}

func (c *FetchCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("config fetch", flag.ContinueOnError))
	c.AddCommonFlags(f)

	f.StringVar(&c.flagID, "id", "", "Config id (required).")
	f.BoolVar(
		&c.flagLegacy, "legacy-shape-result", false,
		"Report a malformed config as a successful result carrying an error.",
	)

	return f
}

func (c *FetchCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return base.ExitFailed
	}
	if c.flagID == "" {
		c.UI.Error("id is required")
		return base.ExitFailed
	}

	rc, code := remoteConfig(c.Command, remoteconfig.Options{
		LegacyShapeResult: c.flagLegacy,
	})
	if rc == nil {
		return code
	}

	ctx, stop := c.Context()
	defer stop()

	res, err := rc.Fetch(ctx, c.flagID)
	if err == nil && res.OK && res.Error != "" {
		c.UI.Warn(res.Error)
	}
	return base.Report(c.Command, res, err)
}
