// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the procurement system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - PerformanceCalculator: recomputes a vendor's four rolling performance
//     metrics from the vendor's purchase order population
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design principles.
package services
