// Package fixtures holds the two canned demo events: one fully compliant
// record and one that violates every rule family at least once. They back the
// `example` command and the end-to-end tests; they are not part of the
// engine's API.
package fixtures

// CompliantEvent passes the default rules with zero issues.
const CompliantEvent = `{
  "event_name": "user.login",
  "user_id": 123,
  "timestamp": "2025-11-22T15:00:00Z",
  "environment": "prod",
  "source": "web",
  "action_type": "LOGIN"
}`

// ViolatingEvent trips all four rule families: a camelCase key, a missing
// required field, a mistyped user_id, a non-ISO timestamp, and an
// out-of-domain action_type.
const ViolatingEvent = `{
  "eventName": "user.login",
  "user_id": "123",
  "timestamp": "2025/11/22 15:00",
  "env": "production",
  "action_type": "LOGIN-FAILED"
}`
