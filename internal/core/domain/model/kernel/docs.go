// Package kernel contains shared value objects used across the domain model.
//
// The central type is Code, the short uppercase alphanumeric identifier used
// for vendor codes, purchase order numbers and performance snapshot IDs.
// Codes are immutable value objects: the zero value is invalid and instances
// must be created through NewCode or CodeFromString.
package kernel
