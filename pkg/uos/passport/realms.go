package passport

import (
	"context"
	"errors"
	"net/http"

	"github.com/hashicorp-forge/uos/pkg/uos"
)

// DefaultRealmName is the name of the realm every app starts with.
const DefaultRealmName = "default"

// Realms is the full realm list keyed by realm name.
type Realms struct {
	Start  int              `json:"start"`
	Count  int              `json:"count"`
	Total  int              `json:"total"`
	Realms map[string]Realm `json:"realms"`
}

// FetchAllRealms returns every realm of the app. The result, including a
// failed one, is cached by this client until a call with flush set.
func (p *Client) FetchAllRealms(ctx context.Context, flush bool) (uos.Result[Realms], error) {
	return p.realms.FetchAll(ctx, flush)
}

// GetRealm looks up a realm by name in the cached realm list, fetching the
// list first if nothing is cached.
func (p *Client) GetRealm(ctx context.Context, name string) (uos.Result[Realm], error) {
	return p.getRealm(ctx, name, "realm "+name+" not found")
}

// GetDefaultRealm looks up the realm named "default".
func (p *Client) GetDefaultRealm(ctx context.Context) (uos.Result[Realm], error) {
	return p.getRealm(ctx, DefaultRealmName, "default realm not found")
}

func (p *Client) getRealm(ctx context.Context, name, notFound string) (uos.Result[Realm], error) {
	res, err := p.realms.FetchAll(ctx, false)
	if err != nil || !res.OK {
		return uos.FailWith[Realm](res), err
	}

	realm, ok := res.Value.Realms[name]
	if !ok || realm.RealmID == "" {
		return uos.Fail[Realm](notFound), nil
	}
	return uos.Ok(realm), nil
}

// searchRealms loads the realm list from the service.
func (p *Client) searchRealms(ctx context.Context) (uos.Result[Realms], error) {
	res, err := p.uos.Do(ctx, http.MethodPost, p.url("/v1/realms/search"), nil)
	if err != nil || !res.OK {
		return uos.FailWith[Realms](res), err
	}

	items, skipped, err := uos.Items[Realm](res.Value, "realms", ValidRealm)
	if errors.Is(err, uos.ErrNotArray) {
		return uos.Fail[Realms]("result is not realms array"), nil
	}
	if skipped > 0 {
		p.logger.Debug("skipped malformed realms", "skipped", skipped)
	}

	realms := Realms{
		Start:  uos.Int(res.Value, "start"),
		Count:  uos.Int(res.Value, "count"),
		Total:  uos.Int(res.Value, "total"),
		Realms: make(map[string]Realm, len(items)),
	}
	for _, r := range items {
		realms.Realms[r.Name] = r
	}
	return uos.Ok(realms), nil
}
