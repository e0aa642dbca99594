package version

import (
	"github.com/hashicorp-forge/uos/internal/cmd/base"
	"github.com/hashicorp-forge/uos/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the version"
}

func (c *Command) Help() string {
	return "Usage: uos version\n\n  This command prints the uos CLI version."
}

func (c *Command) Run(args []string) int {
	c.UI.Output(version.Version)
	return base.ExitOK
}
