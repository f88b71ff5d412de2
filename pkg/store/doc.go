// Package store defines the data-access interfaces and domain models
// for the reference service layer.
//
// Interfaces here are implemented by the gorm subpackage. Domain
// models carry `validate` tags, so every value produced by a store has
// passed schema validation on its way out of the collect pipeline.
package store
