// Package constants collects configuration values shared across layers.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers for alert event publishing.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Storage drivers for the alert store.
const (
	StorageDriverPostgres = "postgres"
	StorageDriverSQLite   = "sqlite"
)
