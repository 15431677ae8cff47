// Package order provides domain entities and business logic for order
// management. It implements the Order aggregate root with lifecycle
// management, monetary totals, and domain event buffering.
//
// The package includes:
//   - Order: The aggregate root that owns item lines, status, and pending events
//   - OrderItem: An immutable priced line referencing a product
//   - Status: A state machine that enforces valid lifecycle transitions
//   - DomainEvent: Typed facts (OrderCreated, OrderStatusChanged) buffered
//     until the owning workflow publishes them
//
// Key business rules:
//   - Orders carry 1-50 items, all priced in a single currency
//   - The order total never exceeds 1,000,000 in that currency
//   - Status follows PENDING -> CONFIRMED -> PROCESSING -> PAID -> SHIPPED ->
//     DELIVERED with CANCELLED/REFUNDED as terminal exits
//   - Orders can only be cancelled while PENDING or CONFIRMED
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
