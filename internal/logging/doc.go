// Package logging provides the structured logging interface used by fanwait.
// It abstracts the underlying logging implementation so that the fan-out core,
// the metrics recorder and the application layer log the same way, with
// zerolog as the production backend.
package logging
