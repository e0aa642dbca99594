package uos

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		outcome Outcome
		wantOK  bool
		wantErr string
		want    Payload
	}{
		{
			name: "Response",
			outcome: Outcome{
				Kind:   OutcomeResponse,
				Status: 200,
				Body:   Payload{"user": Payload{"userID": "u1"}},
			},
			wantOK: true,
			want:   Payload{"user": Payload{"userID": "u1"}},
		},
		{
			name:    "Response that is not an object",
			outcome: Outcome{Kind: OutcomeResponse, Status: 200, RawBody: []byte(`[1]`)},
			wantOK:  true,
			want:    Payload{},
		},
		{
			name: "Service error in a 2xx response",
			outcome: Outcome{
				Kind:   OutcomeResponse,
				Status: 200,
				Body:   Payload{"code": "E1", "message": "boom"},
			},
			wantErr: "E1: boom",
		},
		{
			name: "Service error without message",
			outcome: Outcome{
				Kind:   OutcomeResponse,
				Status: 200,
				Body:   Payload{"code": float64(40001)},
			},
			wantErr: "40001: unknown error",
		},
		{
			name: "Service error in a non-2xx response",
			outcome: Outcome{
				Kind:    OutcomeResponseError,
				Status:  404,
				Body:    Payload{"code": "NotFound", "message": "user not found"},
				RawBody: []byte(`{"code":"NotFound","message":"user not found"}`),
			},
			wantErr: "NotFound: user not found",
		},
		{
			name: "Null code",
			outcome: Outcome{
				Kind:   OutcomeResponse,
				Status: 200,
				Body:   Payload{"code": nil, "message": "odd"},
			},
			wantErr: "null: odd",
		},
		{
			name: "Non-2xx with JSON body",
			outcome: Outcome{
				Kind:       OutcomeResponseError,
				Status:     503,
				StatusText: "Service Unavailable",
				Body:       Payload{"reason": "maintenance"},
				RawBody:    []byte("{\n  \"reason\": \"maintenance\"\n}"),
			},
			wantErr: `http[503]: http status code is 503, Service Unavailable, {"reason":"maintenance"}`,
		},
		{
			name: "Non-2xx with text body",
			outcome: Outcome{
				Kind:       OutcomeResponseError,
				Status:     502,
				StatusText: "Bad Gateway",
				RawBody:    []byte("upstream down"),
			},
			wantErr: `http[502]: http status code is 502, Bad Gateway, "upstream down"`,
		},
		{
			name:    "No response",
			outcome: Outcome{Kind: OutcomeNoResponse, Err: errors.New("connection refused")},
			wantErr: "http[0]: connection refused",
		},
		{
			name: "No response after timeout",
			outcome: Outcome{
				Kind: OutcomeNoResponse,
				Err:  fmt.Errorf("Get: %w", context.DeadlineExceeded),
			},
			wantErr: "http[0]: request timed out, Get: context deadline exceeded",
		},
		{
			name:    "Request error",
			outcome: Outcome{Kind: OutcomeRequestError, Err: errors.New("bad url")},
			wantErr: "unknown: request could not be sent, bad url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Normalize(tt.outcome)

			assert.Equal(t, tt.wantOK, res.OK)
			assert.Equal(t, tt.wantErr, res.Error)
			if tt.wantOK {
				assert.Equal(t, tt.want, res.Value)
			}
		})
	}
}

func TestResultUnwrap(t *testing.T) {
	v, err := Ok(3).Unwrap()
	assert.NoError(t, err)
	assert.Equal(t, 3, v)

	_, err = Fail[int]("E1: boom").Unwrap()
	assert.EqualError(t, err, "E1: boom")
}
