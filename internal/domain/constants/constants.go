package constants

// Deployment environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Default sweep thresholds, in days
const (
	DefaultDeadStockDays     = 180
	DefaultStaleDeliveryDays = 6
)

// Pagination defaults for list endpoints
const (
	DefaultPageLimit = 100
	MaxPageLimit     = 500
)
