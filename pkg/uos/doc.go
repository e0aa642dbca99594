// Package uos is a client for the UOS server APIs: the passport (identity)
// service and the remote-config service.
//
// # Overview
//
// A Client composes three pieces for every call:
//
//   - Credentials: the Basic auth token, base64(appID + ":" + secret), derived
//     once from UOS_APP_ID and UOS_APP_SERVICE_SECRET.
//   - Sender: one HTTP round trip, reported as a tagged Outcome
//     (response, response-error, no-response, request-error).
//   - Normalize: Outcome to Result, folding service error payloads and
//     transport failures into one "<code>: <message>" string.
//
// Resource operations are in the passport and remoteconfig sub-packages.
//
// # Results and errors
//
// Operations return (Result[T], error). Result carries every runtime failure:
//
//	http[503]: http status code is 503, Service Unavailable, "..."
//	http[0]: request timed out, ...
//	unknown: request could not be sent, ...
//	E1: boom                      (service error payload)
//	invalid response of user for userId:'u1'
//
// The error is reserved for *ConfigError, returned before any network call
// when credentials are missing. It will not go away by retrying.
//
// # Collections
//
// Collection caches a "fetch all" result per client until an explicit flush,
// including failed results. Concurrent callers share one in-flight fetch.
//
// # Configuration Example
//
//	client, err := uos.New(&uos.Config{
//	  Timeout: 2 * time.Second,
//	  Logger:  uos.NewLogger("uos"),
//	})
//	if err != nil { ... }
//	pp := passport.New(client)
//	res, err := pp.GetDefaultRealm(ctx)
//
// # Environment
//
//   - UOS_APP_ID, UOS_APP_SERVICE_SECRET: credentials (required).
//   - UOS_DEBUG: true, yes or 1 enables debug logging in NewLogger.
//
// No call is retried.
package uos
