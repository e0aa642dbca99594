package realms

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"

	"github.com/hashicorp-forge/uos/internal/cmd/base"
	"github.com/hashicorp-forge/uos/pkg/uos"
)

type realmSender struct {
	calls int32
}

func (s *realmSender) Send(ctx context.Context, req *uos.Request) uos.Outcome {
	atomic.AddInt32(&s.calls, 1)
	return uos.Outcome{
		Kind:   uos.OutcomeResponse,
		Status: 200,
		Body: uos.Payload{
			"realms": []any{
				map[string]any{"realmID": "r1", "name": "default"},
				map[string]any{"realmID": "r2", "name": "asia"},
			},
		},
	}
}

func newTestBase(sender uos.Sender) (*base.Command, *cli.MockUi) {
	ui := cli.NewMockUi()
	b := base.NewCommand(hclog.NewNullLogger(), ui)
	b.Fs = afero.NewMemMapFs()
	b.Sender = sender
	b.LookupEnv = func(key string) (string, bool) {
		return "x", key == uos.EnvAppID || key == uos.EnvServiceSecret
	}
	return b, ui
}

func TestRealmsCommand(t *testing.T) {
	sender := &realmSender{}
	b, ui := newTestBase(sender)

	code := (&Command{Command: b}).Run([]string{"-flush"})
	assert.Equal(t, base.ExitOK, code, ui.ErrorWriter.String())
	assert.Contains(t, ui.OutputWriter.String(), `"asia"`)
	assert.Equal(t, int32(1), atomic.LoadInt32(&sender.calls))
}

func TestRealmCommand(t *testing.T) {
	t.Run("Default realm", func(t *testing.T) {
		b, ui := newTestBase(&realmSender{})

		code := (&GetCommand{Command: b}).Run(nil)
		assert.Equal(t, base.ExitOK, code, ui.ErrorWriter.String())
		assert.Contains(t, ui.OutputWriter.String(), `"realmID": "r1"`)
	})

	t.Run("Named realm", func(t *testing.T) {
		b, ui := newTestBase(&realmSender{})

		code := (&GetCommand{Command: b}).Run([]string{"-name", "asia"})
		assert.Equal(t, base.ExitOK, code, ui.ErrorWriter.String())
		assert.Contains(t, ui.OutputWriter.String(), `"realmID": "r2"`)
	})

	t.Run("Unknown realm", func(t *testing.T) {
		b, ui := newTestBase(&realmSender{})

		code := (&GetCommand{Command: b}).Run([]string{"-name", "europe"})
		assert.Equal(t, base.ExitFailed, code)
		assert.Equal(t, "realm europe not found\n", ui.ErrorWriter.String())
	})
}
