// Package gate implements a one-way readiness gate used to hold work until an
// asynchronously initialising subsystem reports that it is ready.
//
// A Gate starts NotReady and transitions to Ready at most once per process.
// Observers registered with OnReady run exactly once: immediately when the
// gate is already ready, otherwise when SetReady is called. Defer keeps a
// single pending action slot where the most recent action wins; the pending
// action runs exactly once when the gate opens.
package gate
