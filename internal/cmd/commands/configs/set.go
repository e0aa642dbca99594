package configs

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/uos/internal/cmd/base"
	"github.com/hashicorp-forge/uos/pkg/uos/remoteconfig"
)

type SetCommand struct {
	*base.Command

	flagID    string
	flagKey   string
	flagValue string
}

func (c *SetCommand) Synopsis() string {
	return "Update a remote config"
}

func (c *SetCommand) Help() string {
	return `Usage: uos config set [options]

  This command sets the key and string value of a remote config.` +
		c.Flags().Help()
}

func (c *SetCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("config set", flag.ContinueOnError))
	c.AddCommonFlags(f)

	f.StringVar(&c.flagID, "id", "", "Config id (required).")
	f.StringVar(&c.flagKey, "key", "", "Config key (required).")
	f.StringVar(&c.flagValue, "value", "", "Config value.")

	return f
}

func (c *SetCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return base.ExitFailed
	}
	if c.flagID == "" || c.flagKey == "" {
		c.UI.Error("id and key are required")
		return base.ExitFailed
	}

	rc, code := remoteConfig(c.Command)
	if rc == nil {
		return code
	}

	ctx, stop := c.Context()
	defer stop()

	res, err := rc.Update(ctx, c.flagID, c.flagKey, c.flagValue)
	return base.Done(c.Command, res, err, fmt.Sprintf("updated config %s", c.flagID))
}

type DeleteCommand struct {
	*base.Command

	flagID string
}

func (c *DeleteCommand) Synopsis() string {
	return "Delete a remote config"
}

func (c *DeleteCommand) Help() string {
	return `Usage: uos config delete [options]

  This command deletes a remote config by id.` +
		c.Flags().Help()
}

func (c *DeleteCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("config delete", flag.ContinueOnError))
	c.AddCommonFlags(f)

	f.StringVar(&c.flagID, "id", "", "Config id (required).")

	return f
}

func (c *DeleteCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return base.ExitFailed
	}
	if c.flagID == "" {
		c.UI.Error("id is required")
		return base.ExitFailed
	}

	rc, code := remoteConfig(c.Command)
	if rc == nil {
		return code
	}

	ctx, stop := c.Context()
	defer stop()

	res, err := rc.Delete(ctx, c.flagID)
	return base.Done(c.Command, res, err, fmt.Sprintf("deleted config %s", c.flagID))
}

// remoteConfig builds a remote-config client, reporting a configuration error
// and its exit code when that fails.
func remoteConfig(c *base.Command, opts ...remoteconfig.Options) (*remoteconfig.Client, int) {
	client, err := c.Client()
	if err != nil {
		c.UI.Error(fmt.Sprintf("error initializing client: %v", err))
		return nil, base.ExitConfigError
	}
	return remoteconfig.New(client, opts...), base.ExitOK
}
