// Package identity holds the CLI commands reading users and personas.
package identity

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/uos/internal/cmd/base"
	"github.com/hashicorp-forge/uos/pkg/uos/passport"
)

type UserCommand struct {
	*base.Command

	flagID string
}

func (c *UserCommand) Synopsis() string {
	return "Show a user"
}

func (c *UserCommand) Help() string {
	return `Usage: uos user [options]

  This command shows a user of the app by user id.` +
		c.Flags().Help()
}

func (c *UserCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("user", flag.ContinueOnError))
	c.AddCommonFlags(f)

	f.StringVar(&c.flagID, "id", "", "User id (required).")

	return f
}

func (c *UserCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return base.ExitFailed
	}
	if c.flagID == "" {
		c.UI.Error("id is required")
		return base.ExitFailed
	}

	p, code := passportClient(c.Command)
	if p == nil {
		return code
	}

	ctx, stop := c.Context()
	defer stop()

	res, err := p.GetUser(ctx, c.flagID)
	return base.Report(c.Command, res, err)
}

type PersonaCommand struct {
	*base.Command

	flagID string
}

func (c *PersonaCommand) Synopsis() string {
	return "Show a persona"
}

func (c *PersonaCommand) Help() string {
	return `Usage: uos persona [options]

  This command shows a persona by persona id.` +
		c.Flags().Help()
}

func (c *PersonaCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("persona", flag.ContinueOnError))
	c.AddCommonFlags(f)

	f.StringVar(&c.flagID, "id", "", "Persona id (required).")

	return f
}

func (c *PersonaCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return base.ExitFailed
	}
	if c.flagID == "" {
		c.UI.Error("id is required")
		return base.ExitFailed
	}

	p, code := passportClient(c.Command)
	if p == nil {
		return code
	}

	ctx, stop := c.Context()
	defer stop()

	res, err := p.GetPersona(ctx, c.flagID)
	return base.Report(c.Command, res, err)
}

type FriendsCommand struct {
	*base.Command

	flagPersona string
	flagStart   int
	flagCount   int
}

func (c *FriendsCommand) Synopsis() string {
	return "List the friends of a persona"
}

func (c *FriendsCommand) Help() string {
	return `Usage: uos friends [options]

  This command lists one page of the friends of a persona.` +
		c.Flags().Help()
}

func (c *FriendsCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("friends", flag.ContinueOnError))
	c.AddCommonFlags(f)

	f.StringVar(&c.flagPersona, "persona", "", "Persona id (required).")
	f.IntVar(&c.flagStart, "start", 0, "Index of the first friend.")
	f.IntVar(&c.flagCount, "count", 20, "Number of friends to list.")

	return f
}

func (c *FriendsCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return base.ExitFailed
	}
	if c.flagPersona == "" {
		c.UI.Error("persona is required")
		return base.ExitFailed
	}
	if c.flagStart < 0 || c.flagCount <= 0 {
		c.UI.Error("start must not be negative and count must be positive")
		return base.ExitFailed
	}

	p, code := passportClient(c.Command)
	if p == nil {
		return code
	}

	ctx, stop := c.Context()
	defer stop()

	res, err := p.GetFriends(ctx, c.flagPersona, c.flagStart, c.flagCount)
	return base.Report(c.Command, res, err)
}

func passportClient(c *base.Command) (*passport.Client, int) {
	client, err := c.Client()
	if err != nil {
		c.UI.Error(fmt.Sprintf("error initializing client: %v", err))
		return nil, base.ExitConfigError
	}
	return passport.New(client), base.ExitOK
}
