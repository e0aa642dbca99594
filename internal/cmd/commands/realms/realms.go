package realms

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/uos/internal/cmd/base"
	"github.com/hashicorp-forge/uos/pkg/uos/passport"
)

type Command struct {
	*base.Command

	flagFlush bool
}

func (c *Command) Synopsis() string {
	return "List the realms of the app"
}

func (c *Command) Help() string {
	return `Usage: uos realms [options]

  This command lists every realm of the app, keyed by realm name.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("realms", flag.ContinueOnError))
	c.AddCommonFlags(f)

	f.BoolVar(
		&c.flagFlush, "flush", false,
		"Ignore any cached realm list and fetch it again.",
	)

	return f
}

func (c *Command) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return base.ExitFailed
	}

	client, err := c.Client()
	if err != nil {
		c.UI.Error(fmt.Sprintf("error initializing client: %v", err))
		return base.ExitConfigError
	}

	ctx, stop := c.Context()
	defer stop()

	res, err := passport.New(client).FetchAllRealms(ctx, c.flagFlush)
	return base.Report(c.Command, res, err)
}

type GetCommand struct {
	*base.Command

	flagName string
}

func (c *GetCommand) Synopsis() string {
	return "Show one realm by name"
}

func (c *GetCommand) Help() string {
	return `Usage: uos realm [options]

  This command shows a single realm. Without -name it shows the default realm.` +
		c.Flags().Help()
}

func (c *GetCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("realm", flag.ContinueOnError))
	c.AddCommonFlags(f)

	f.StringVar(
		&c.flagName, "name", passport.DefaultRealmName, "Realm name.",
	)

	return f
}

func (c *GetCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return base.ExitFailed
	}

	client, err := c.Client()
	if err != nil {
		c.UI.Error(fmt.Sprintf("error initializing client: %v", err))
		return base.ExitConfigError
	}

	ctx, stop := c.Context()
	defer stop()

	p := passport.New(client)
	if c.flagName == passport.DefaultRealmName {
		res, err := p.GetDefaultRealm(ctx)
		return base.Report(c.Command, res, err)
	}
	res, err := p.GetRealm(ctx, c.flagName)
	return base.Report(c.Command, res, err)
}
