// Package modelbase provides the shared building blocks for data-access
// models: secret-aware field types, map projection with temporal and
// numeric normalization, schema migration between model types, and
// random instance construction for test fixtures.
//
// # Core Types
//
//   - SecretString, SecretBytes: values masked in every textual output
//   - Date, Clock: calendar date and wall-clock time wrappers
//   - Map: a projected field mapping with checked deletion
//   - Factory: random, schema-conformant instance builder
//
// # Projection
//
// ToMap walks a model's exported fields and produces a plain mapping
// suitable for logging, transport, or comparison. Secrets are masked
// unless WithSecrets is given; timestamps, dates, clocks, UUIDs and
// decimals normalize to strings.
//
// # Migration
//
// Migrate rebuilds one model's field values as another model type,
// with optional field renames, literal overrides, and random fill of
// unmatched target fields.
package modelbase
