// Package main implements modelctl, the administration CLI for
// modelbase-backed services.
//
// # Commands
//
//	# Run database migrations
//	modelctl db migrate
//
//	# Roll back the last migration
//	modelctl db down
//
//	# Show the current migration version
//	modelctl db status
//
//	# Generate seeded test fixtures
//	modelctl fixtures generate user -n 5 -o yaml
//
//	# Show the effective configuration and its sources
//	modelctl config show
//
// # Environment Variables
//
//   - MODELBASE_DATABASE_URL / DATABASE_URL: PostgreSQL connection string
//   - MODELBASE_CONFIG_PATH: Config file directory (default: /etc/modelbase)
//   - MODELBASE_LOG_LEVEL: Log level (debug, info, warn, error)
//   - MODELBASE_FIXTURE_SEED: Seed for deterministic fixture generation
//   - MODELBASE_MIGRATIONS_DIR: Migrations directory for non-embedded builds
package main
