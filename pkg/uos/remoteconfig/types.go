package remoteconfig

import (
	"time"

	"github.com/araddon/dateparse"

	"github.com/hashicorp-forge/uos/pkg/uos"
)

// TypeString is the only value type written by Update.
const TypeString = "STRING"

// RemoteConfig is one key/value entry. ConfigID identifies it for updates and
// deletes; Key is how applications look it up.
type RemoteConfig struct {
	ConfigID      string `json:"configId"`
	Key           string `json:"key"`
	Type          string `json:"type"`
	Value         string `json:"value"`
	CreatedAt     string `json:"createdAt"`
	ModifiedAt    string `json:"modifiedAt"`
	CreatedBy     string `json:"createdBy"`
	ModifiedBy    string `json:"modifiedBy"`
	ResourceAge   int    `json:"resourceAge"`
	OverrideCount int    `json:"overrideCount"`
}

// ModifiedTime parses ModifiedAt.
func (c RemoteConfig) ModifiedTime() (time.Time, error) {
	return dateparse.ParseAny(c.ModifiedAt)
}

// ValidRemoteConfig accepts objects carrying a configId.
var ValidRemoteConfig = uos.RequireKeys("configId")
