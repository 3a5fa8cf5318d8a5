// Package domain contains the entities the digest pipeline operates on: stale
// pull request records as reported by upstream collection steps, and the
// ranked digest built from them. The types are free of I/O concerns so they
// can be shared by readers, the pipeline and the sink writers.
package domain
