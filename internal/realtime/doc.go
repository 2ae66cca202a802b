// Package realtime delivers alerts to browsers over Server-Sent Events.
//
// A Registry owns the per-user sets of open connections and is mutated only
// through its own goroutine. The Manager moves each connection through
// Connecting -> Open -> Closed, writing the handshake and keepalive frames.
// The Engine resolves an alert's Target against the Registry and fans the
// encoded frame out to every matching connection, giving up on connections that
// do not accept the frame within the write timeout. The Scheduler synthesizes
// automatic alerts on a single replaceable timer.
package realtime
