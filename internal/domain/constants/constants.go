// Package constants holds shared configuration values and enumerations.
package constants

// Deployment environment names.
const (
	// EnvDevelop marks a local or development deployment.
	EnvDevelop = "develop"
	// EnvProduction marks a production deployment.
	EnvProduction = "production"
)

// Pub/Sub provider names accepted in configuration.
const (
	// PubSubProviderGoogle publishes broadcast events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
	// PubSubProviderLocal posts events to a local HTTP endpoint that mimics
	// a Pub/Sub push subscription, for development.
	PubSubProviderLocal = "local"
)

// Push provider names accepted in configuration.
const (
	// PushProviderOneSignal sends through the OneSignal REST API.
	PushProviderOneSignal = "onesignal"
	// PushProviderFCM sends through Firebase Cloud Messaging.
	PushProviderFCM = "fcm"
)

// Targeting limits.
const (
	// MaxBroadcastRadiusKm caps how wide a single shop announcement may reach.
	MaxBroadcastRadiusKm = 50.0
	// DefaultNotificationPageSize is the page size for notification history reads.
	DefaultNotificationPageSize = 20
	// MaxNotificationPageSize bounds a single history read.
	MaxNotificationPageSize = 100
)
