package uos

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "Defaults",
			cfg:  *DefaultConfig(),
		},
		{
			name:    "Missing endpoint",
			cfg:     Config{RemoteConfigEndpoint: DefaultRemoteConfigEndpoint, Timeout: time.Second},
			wantErr: "cannot be blank",
		},
		{
			name:    "Endpoint without scheme",
			cfg:     Config{PassportEndpoint: "p.unity.cn", RemoteConfigEndpoint: DefaultRemoteConfigEndpoint},
			wantErr: "must use http or https scheme",
		},
		{
			name:    "Endpoint without host",
			cfg:     Config{PassportEndpoint: DefaultPassportEndpoint, RemoteConfigEndpoint: "https://"},
			wantErr: "host is required",
		},
		{
			name: "Timeout below a millisecond",
			cfg: Config{
				PassportEndpoint:     DefaultPassportEndpoint,
				RemoteConfigEndpoint: DefaultRemoteConfigEndpoint,
				Timeout:              time.Nanosecond,
			},
			wantErr: "timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewHTTPClient(t *testing.T) {
	cfg := DefaultConfig()
	transport, ok := cfg.NewHTTPClient().Transport.(*http.Transport)
	require.True(t, ok)
	assert.Nil(t, transport.TLSClientConfig)

	insecure := false
	cfg.TLSVerify = &insecure
	transport, ok = cfg.NewHTTPClient().Transport.(*http.Transport)
	require.True(t, ok)
	require.NotNil(t, transport.TLSClientConfig)
	assert.True(t, transport.TLSClientConfig.InsecureSkipVerify)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, DefaultPassportEndpoint, cfg.PassportEndpoint)
	assert.Equal(t, DefaultRemoteConfigEndpoint, cfg.RemoteConfigEndpoint)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.NotNil(t, cfg.Logger)
	assert.NotNil(t, cfg.Credentials)
	assert.NotNil(t, cfg.HTTPClient)
}
