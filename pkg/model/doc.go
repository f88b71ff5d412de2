// Package model defines the database models for the reference
// data-access layer.
//
// This package contains GORM models that map to the example service
// schema. Field types come from pkg/modelbase, so secrets stay masked
// in any textual output while round-tripping through the database
// untouched.
//
//   - User: an account with a secret password hash and decimal balance
//   - Session: a login session carrying a secret token
package model
