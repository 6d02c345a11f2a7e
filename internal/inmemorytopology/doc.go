// Package inmemorytopology provides a thread-safe, in-memory implementation
// of the topologystore.Store interface. It is designed for networks that fit
// comfortably in memory and keeps insertion order so that exported graphs are
// stable across runs.
package inmemorytopology
