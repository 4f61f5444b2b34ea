// Package logger provides a small named and leveled logger shared by the
// executor, cache, gate and coordinator packages.
//
// Entries are written through the standard library log package; child loggers
// created with Logger(name) inherit the level and sink of their parent.
package logger
