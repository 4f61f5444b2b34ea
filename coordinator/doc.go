// Package coordinator composes the readiness gate with the promotion SDK,
// the durable store and application navigation.
//
// It initialises the SDK and opens the gate on an accepted result, holds the
// most recent deep link until the gate opens, uploads push tokens only after
// readiness and only when they differ from the last uploaded token, and
// registers screens with the SDK once it is ready.
package coordinator
