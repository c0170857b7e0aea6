// Package timeouts defines shared timeout constants used by the uuidgen
// process. Keeping them together keeps server and telemetry shutdown aligned.
package timeouts

import "time"

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// OTelShutdown limits how long pending spans may take to flush on exit.
const OTelShutdown = 5 * time.Second
