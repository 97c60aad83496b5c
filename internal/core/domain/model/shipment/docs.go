// Package shipment contains the shipment aggregate and its value objects.
//
// The Shipment aggregate root tracks a shipment record from creation on order
// placement through status changes until delivery or cancellation. Supporting
// value objects are Status (the lifecycle enumeration, transmitted by symbolic
// name), Item (an immutable product line), and the EAN-8 style number
// generator for the external shipment identifier.
//
// The aggregate enforces its invariants through factory constructors:
// NewShipment for fresh registrations and RestoreShipment for rehydration
// from persistence. Status transitions are deliberately unrestricted; the
// orderId-per-shipment uniqueness invariant is enforced by the application
// layer together with the storage adapter, not here.
package shipment
