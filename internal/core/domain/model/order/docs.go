// Package order provides domain entities and business logic for purchase order
// management in the procurement system. It implements the PurchaseOrder aggregate
// root with lifecycle management and state transitions.
//
// The package includes:
//   - PurchaseOrder: The aggregate root that manages order identity, items, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - Item: A value object describing one ordered line
//
// Key business rules:
//   - Orders must have a valid PO number and at least one item
//   - Order status follows a defined workflow:
//     PENDING -> ISSUED -> ACKNOWLEDGED -> DELIVERED,
//     with CANCELLED reachable from PENDING, ISSUED and ACKNOWLEDGED
//   - DELIVERED and CANCELLED are terminal
//   - A vendor is associated at issue time and every later transition must
//     name the same vendor
//   - A quality rating (1-5) can be set exactly once, only after delivery
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
