package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/uos/internal/cmd/base"
	"github.com/hashicorp-forge/uos/internal/cmd/commands/configs"
	"github.com/hashicorp-forge/uos/internal/cmd/commands/identity"
	"github.com/hashicorp-forge/uos/internal/cmd/commands/realms"
	"github.com/hashicorp-forge/uos/internal/cmd/commands/version"
)

// Commands is the mapping of all available uos commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	b := base.NewCommand(log, ui)

	Commands = map[string]cli.CommandFactory{
		"realms": func() (cli.Command, error) {
			return &realms.Command{Command: b}, nil
		},
		"realm": func() (cli.Command, error) {
			return &realms.GetCommand{Command: b}, nil
		},
		"configs": func() (cli.Command, error) {
			return &configs.Command{Command: b}, nil
		},
		"config": func() (cli.Command, error) {
			return &configs.ConfigCommand{Command: b}, nil
		},
		"config get": func() (cli.Command, error) {
			return &configs.GetCommand{Command: b}, nil
		},
		"config fetch": func() (cli.Command, error) {
			return &configs.FetchCommand{Command: b}, nil
		},
		"config set": func() (cli.Command, error) {
			return &configs.SetCommand{Command: b}, nil
		},
		"config delete": func() (cli.Command, error) {
			return &configs.DeleteCommand{Command: b}, nil
		},
		"user": func() (cli.Command, error) {
			return &identity.UserCommand{Command: b}, nil
		},
		"persona": func() (cli.Command, error) {
			return &identity.PersonaCommand{Command: b}, nil
		},
		"friends": func() (cli.Command, error) {
			return &identity.FriendsCommand{Command: b}, nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{Command: b}, nil
		},
	}
}
