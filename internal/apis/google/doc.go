// Package google provides the shared request machinery for the gapi Google
// REST API clients.
//
// Each API package (drive, healthcare, placeactions, sdm) builds on:
//   - Client, which owns the authenticated *http.Client and the base URL
//   - Call, which turns one operation into exactly one HTTP round trip
//   - Credentials and ClientOptions, which bridge credential sources to
//     option.ClientOption values
//   - Error classification for *googleapi.Error (401, 403, 404, 409, 410, 429)
//   - An opt-in RateLimiter for pacing requests to Google API quotas
//
// # Usage
//
//	opts, err := google.ClientOptions(ctx, google.Credentials{File: "sa.json"}, drive.DriveReadonlyScope)
//	svc, err := drive.NewService(ctx, opts...)
//	files, err := svc.Files.List().PageSize(10).Context(ctx).Do()
//
// A Call never retries and never follows page tokens. HTTP failures surface as
// *googleapi.Error exactly as googleapi.CheckResponse reports them.
package google
