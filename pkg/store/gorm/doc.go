// Package gorm provides GORM-based implementations of the store
// interfaces defined in the parent store package.
//
// Queries scan into row maps and flow through the collect pipeline, so
// every result is shaped, decoded and validated the same way
// regardless of which store produced it.
package gorm
