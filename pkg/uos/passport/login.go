package passport

import (
	"context"
	"net/http"
	"time"

	"github.com/hashicorp-forge/uos/pkg/uos"
)

// LoginParams identifies an externally authenticated user.
type LoginParams struct {
	ExternalUserID     string           `json:"externalUserID"`
	DisplayName        string           `json:"displayName"`
	ExternalPersonalID string           `json:"externalPersonalID,omitempty"`
	ExternalAppID      string           `json:"externalAppId,omitempty"`
	IDProvider         string           `json:"idProvider,omitempty"`
	Properties         CustomProperties `json:"properties,omitempty"`
}

// Login is the service's answer to an external login.
type Login struct {
	Persona             Persona `json:"persona"`
	PersonaAccessToken  string  `json:"personaAccessToken"`
	PersonaRefreshToken string  `json:"personaRefreshToken"`
	IsNew               bool    `json:"isNew"`
	// ExpiresAt is the access token expiry in unix seconds.
	ExpiresAt string `json:"expiresAt"`
}

// ExpiresTime parses ExpiresAt.
func (l Login) ExpiresTime() (time.Time, error) { return parseTime(l.ExpiresAt) }

// Login signs in an externally authenticated user, creating the user and
// persona on first use.
func (p *Client) Login(ctx context.Context, params LoginParams) (uos.Result[Login], error) {
	res, err := p.uos.Do(ctx, http.MethodPost, p.url("/v1/login/external"), params)
	if err != nil || !res.OK {
		return uos.FailWith[Login](res), err
	}

	var login Login
	if err := uos.Decode(res.Value, &login); err != nil {
		p.logger.Debug("invalid login response", "external_user_id", params.ExternalUserID, "error", err)
		return uos.Failf[Login]("invalid response of login for externalUserId:'%s'", params.ExternalUserID), nil
	}
	return uos.Ok(login), nil
}
