package passport

import (
	"context"
	"net/http"

	"github.com/hashicorp-forge/uos/pkg/uos"
)

// UpdateUserRequest is the body of an update to a user.
type UpdateUserRequest struct {
	Name      string     `json:"name"`
	AvatarURL string     `json:"avatarUrl,omitempty"`
	Status    UserStatus `json:"status,omitempty"`
}

func userPath(userID string) string {
	return "/v1/users/" + uos.PathSegment(userID)
}

// GetUser retrieves a user by id.
func (p *Client) GetUser(ctx context.Context, userID string) (uos.Result[User], error) {
	res, err := p.uos.Do(ctx, http.MethodGet, p.url(userPath(userID)), nil)
	if err != nil || !res.OK {
		return uos.FailWith[User](res), err
	}

	user, err := uos.Field[User](res.Value, "user", ValidUser)
	if err != nil {
		p.logger.Debug("invalid user response", "user_id", userID, "error", err)
		return uos.Failf[User]("invalid response of user for userId:'%s'", userID), nil
	}

	return uos.Ok(user), nil
}

// UpdateUser replaces the editable attributes of a user.
func (p *Client) UpdateUser(ctx context.Context, userID string, req UpdateUserRequest) (uos.Result[struct{}], error) {
	return p.uos.Exec(ctx, http.MethodPut, p.url(userPath(userID)), req)
}

// DeleteUser marks a user as deleted.
func (p *Client) DeleteUser(ctx context.Context, userID string) (uos.Result[struct{}], error) {
	return p.uos.Exec(ctx, http.MethodDelete, p.url(userPath(userID)), nil)
}
