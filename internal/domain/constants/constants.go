package constants

// Pub/Sub provider types.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
