// Package railapi handles HTTP access to the 12306 query endpoints.
//
// The upstream is session-sensitive and undocumented: query GETs only succeed
// after an unauthenticated warm-up GET has seeded session cookies, and
// suspected automated traffic is answered with a redirect instead of an error
// status. The Client encapsulates both quirks and classifies every failure as
// transport, status, format or blocked, so callers can tell "network is down"
// from "they blocked us".
package railapi
