// Package ports defines the contracts between the lifecycle managers and the
// two stores.
//
// Repositories over the topology store (islands, ports, seaplanes) and over
// the business store (lockers, orders, boxes, clients, products, deliveries)
// are independent: no repository call spans both stores and none of them
// joins a transaction. Every Get returns an error matching
// errs.ErrObjectNotFound when the entity is absent, and every transport
// failure matches errs.ErrStoreUnavailable.
package ports
