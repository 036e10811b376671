package model

// Subscription registers a device for push notifications about addresses.
type Subscription struct {
	ID         string
	Device     string
	Endpoint   SubscriptionEndpoint
	Currencies []SubscriptionCurrency
}

// SubscriptionEndpoint is where notifications are delivered.
type SubscriptionEndpoint struct {
	Environment string
	Kind        string
	Value       string
}

// SubscriptionCurrency watches a set of addresses of one currency.
type SubscriptionCurrency struct {
	Addresses []string
	Currency  string
	Events    []SubscriptionEvent
}

// SubscriptionEventName is either submitted or confirmed.
type SubscriptionEventName string

const (
	EventSubmitted SubscriptionEventName = "submitted"
	EventConfirmed SubscriptionEventName = "confirmed"
)

// SubscriptionEvent selects when a notification fires; Confirmations only applies to confirmed events.
type SubscriptionEvent struct {
	Name          SubscriptionEventName
	Confirmations []uint32
}
