// Package manifest records fixture generation runs in SQLite.
//
// Each run stores a UUIDv7 id, the tool version, and one row per emitted
// fixture with its output path, SHA-256 digest, case count, and the suite
// parameters serialized as RFC 8785 canonical JSON. The read side answers
// "what did the last run for this suite produce" and checks fixtures on
// disk against the recorded digests.
package manifest
