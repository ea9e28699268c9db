// Package http implements the REST surface of the hi-time server.
//
// Every user document (weeks, settings, goals, plans, shipping entries,
// reviews and memories) is served by the same generic resource handlers,
// parameterised by a resource kind, a key extractor and the JSON envelope
// the document travels in. Authentication, trace ids, access logging and
// gzip are handled by middleware before the service layer is reached.
package http
