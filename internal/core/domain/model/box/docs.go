// Package box models the parcels an order ships in. A box keeps the
// order/client pair it was created with for its whole life; its status only
// moves forward PENDING -> IN_TRANSIT -> DELIVERED.
package box
