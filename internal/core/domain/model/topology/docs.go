// Package topology models the fixed island/port network held in the graph store.
//
// Islands own ports through HAS_PORT. A port carries a denormalized locker
// counter that mirrors the number of locker documents referencing it in the
// business store; the counter is repaired asynchronously and may briefly lag.
// One port is designated the warehouse and serves as the default station and
// the last-resort location of a seaplane.
package topology
