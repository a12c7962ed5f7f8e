// Package submit implements the wire side of a password change: one JSON POST
// of {"currentPassword","newPassword"} to a fixed endpoint, classified into a
// success, a remote rejection or a transport failure. Credentials are never
// produced here; callers attach them through options (bearer token, cookie,
// arbitrary headers or a request decorator). There is deliberately a single
// attempt per call and no client-side deadline beyond the caller's context.
package submit
