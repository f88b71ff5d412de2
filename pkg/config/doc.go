// Package config provides configuration management for the modelbase
// tooling.
//
// Configuration loads from modelbase.yml and MODELBASE_* environment
// variables, with environment taking precedence over file values and
// file values over defaults. The source of every attribute is tracked
// so `modelctl config show` can report where each value came from.
//
// # Attributes
//
//   - database_url: PostgreSQL connection string
//   - log_level: debug, info, warn, error
//   - fixture_seed: deterministic seed for fixture generation
//   - fixture_count: default number of fixtures to generate
//   - migrations_dir: path to SQL migration files
//
// Watch re-loads the configuration when the config file changes.
package config
