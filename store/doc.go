// Package store defines the durable key-value store used to persist small
// pieces of client state across process restarts, such as the last device
// token registered with the promotion SDK.
//
// It ships with an in-memory implementation for tests and CLI usage, a JSON
// file backed store that works with any github.com/viant/afs URL, and a SQLite
// backed store.
package store
