// Package order provides the Order aggregate and its lifecycle.
//
// The package includes:
//   - Order: the aggregate root holding the ordered products, the delivery
//     port and the box counters
//   - Line: a product reference with the ordered quantity
//   - Status: the monotonic order status
//
// Key business rules:
//   - Orders are always created PENDING, dated at creation time
//   - Status only moves forward: PENDING < IN_TRANSIT < PARTIALLY_DELIVERED < DELIVERED
//   - 0 ≤ boxesDelivered ≤ boxCount whenever a value is recorded
//   - The client and the ordered products never change after creation
//
// The status is driven by the deliveries process; the order never infers it
// from the state of its boxes.
package order
