// Package passport provides the identity service operations: login, users,
// personas, friends, realms and anti-addiction payment reports.
package passport

import (
	"github.com/hashicorp/go-hclog"

	"github.com/hashicorp-forge/uos/pkg/uos"
)

// Client wraps a uos.Client with the passport service operations.
type Client struct {
	uos    *uos.Client
	realms *uos.Collection[Realms]
	logger hclog.Logger
}

// New creates a passport client. Each passport client owns its realm cache.
func New(c *uos.Client) *Client {
	p := &Client{
		uos:    c,
		logger: c.Logger().Named("passport"),
	}
	p.realms = uos.NewCollection("realms", p.searchRealms, p.logger)
	return p
}

func (p *Client) url(path string) string {
	return p.uos.PassportURL(path)
}
