// Package timeouts defines the HTTP server limits shared by launchdash
// processes.
package timeouts

import "time"

// ReadHeader limits how long the server waits for request headers.
const ReadHeader = 5 * time.Second

// Write bounds a single response, chart rendering included.
const Write = 15 * time.Second

// Idle closes keep-alive connections with no traffic.
const Idle = 60 * time.Second

// Shutdown limits how long in-flight requests may run during graceful
// shutdown.
const Shutdown = 5 * time.Second
