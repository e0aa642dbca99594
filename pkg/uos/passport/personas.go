package passport

import (
	"context"
	"net/http"

	"github.com/hashicorp-forge/uos/pkg/uos"
)

// UpdatePersonaRequest is the body of an update to a persona.
type UpdatePersonaRequest struct {
	DisplayName string           `json:"displayName"`
	IconURL     string           `json:"iconUrl,omitempty"`
	Status      PersonaStatus    `json:"status,omitempty"`
	Properties  CustomProperties `json:"properties,omitempty"`
}

// Friends is one page of a persona's friend list. Start, Count and Total are
// echoed from the service.
type Friends struct {
	Friends []FriendRelation `json:"friends"`
	Start   int              `json:"start"`
	Count   int              `json:"count"`
	Total   int              `json:"total"`
}

func personaPath(personaID string) string {
	return "/v1/personas/" + uos.PathSegment(personaID)
}

// GetPersona retrieves a persona by id.
func (p *Client) GetPersona(ctx context.Context, personaID string) (uos.Result[Persona], error) {
	res, err := p.uos.Do(ctx, http.MethodGet, p.url(personaPath(personaID)), nil)
	if err != nil || !res.OK {
		return uos.FailWith[Persona](res), err
	}

	persona, err := uos.Field[Persona](res.Value, "persona", ValidPersona)
	if err != nil {
		p.logger.Debug("invalid persona response", "persona_id", personaID, "error", err)
		return uos.Failf[Persona]("invalid response of persona for personaId:'%s'", personaID), nil
	}

	return uos.Ok(persona), nil
}

// UpdatePersona replaces the editable attributes of a persona.
func (p *Client) UpdatePersona(ctx context.Context, personaID string, req UpdatePersonaRequest) (uos.Result[struct{}], error) {
	return p.uos.Exec(ctx, http.MethodPut, p.url(personaPath(personaID)), req)
}

// DeletePersona marks a persona as deleted.
func (p *Client) DeletePersona(ctx context.Context, personaID string) (uos.Result[struct{}], error) {
	return p.uos.Exec(ctx, http.MethodDelete, p.url(personaPath(personaID)), nil)
}

// GetFriends lists count friends of a persona starting at start.
func (p *Client) GetFriends(ctx context.Context, personaID string, start, count int) (uos.Result[Friends], error) {
	body := map[string]int{
		"start": start,
		"count": count,
	}

	res, err := p.uos.Do(ctx, http.MethodGet, p.url(personaPath(personaID)+"/friends"), body)
	if err != nil || !res.OK {
		return uos.FailWith[Friends](res), err
	}

	friends, skipped, err := uos.Items[FriendRelation](res.Value, "friends", ValidFriendRelation)
	if err != nil {
		return uos.Failf[Friends]("invalid response of friends for personaId:'%s'", personaID), nil
	}
	if skipped > 0 {
		p.logger.Debug("skipped malformed friend relations", "persona_id", personaID, "skipped", skipped)
	}

	return uos.Ok(Friends{
		Friends: friends,
		Start:   uos.Int(res.Value, "start"),
		Count:   uos.Int(res.Value, "count"),
		Total:   uos.Int(res.Value, "total"),
	}), nil
}
