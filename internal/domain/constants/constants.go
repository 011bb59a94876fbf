// Package constants holds keys shared across delivery layers.
package constants

const (
	// Context keys set by the auth middleware.
	ContextKeyUserID = "userID"
	ContextKeyRoles  = "roles"

	HeaderChecksum = "X-Checksum-Sha256"

	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers selectable through pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Tracing exporters selectable through tracing.exporter.
const (
	TracingExporterStdout = "stdout"
)
