package blockset

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/jsonview"
	"github.com/goodnatureofminers/blockinsight7000-sysclient/internal/sysclient/model"
)

func subscriptionEndpoint(o jsonview.Object) (model.SubscriptionEndpoint, bool) {
	environment, okEnv := o.String("environment")
	kind, okKind := o.String("kind")
	value, okValue := o.String("value")
	if !okEnv || !okKind || !okValue {
		return model.SubscriptionEndpoint{}, false
	}
	return model.SubscriptionEndpoint{Environment: environment, Kind: kind, Value: value}, true
}

func subscriptionEvent(o jsonview.Object) (model.SubscriptionEvent, bool) {
	name, ok := o.String("name")
	if !ok {
		return model.SubscriptionEvent{}, false
	}
	event := model.SubscriptionEvent{Name: model.SubscriptionEventName(name), Confirmations: []uint32{}}
	switch event.Name {
	case model.EventSubmitted:
	case model.EventConfirmed:
		if o.Has("confirmations") {
			confirmations, ok := confirmationList(o)
			if !ok {
				return model.SubscriptionEvent{}, false
			}
			event.Confirmations = confirmations
		}
	default:
		return model.SubscriptionEvent{}, false
	}
	return event, true
}

func confirmationList(o jsonview.Object) ([]uint32, bool) {
	values, ok := o.Values("confirmations")
	if !ok {
		return nil, false
	}
	out := make([]uint32, 0, len(values))
	for _, v := range values {
		n, ok := jsonview.Object{"n": v}.Uint32("n")
		if !ok {
			return nil, false
		}
		out = append(out, n)
	}
	return out, true
}

func subscriptionCurrency(o jsonview.Object) (model.SubscriptionCurrency, bool) {
	addresses, okAddresses := o.Strings("addresses")
	currency, okCurrency := o.String("currency_id")
	events, okEvents := jsonview.MapObjects(o, "events", subscriptionEvent)
	if !okAddresses || !okCurrency || !okEvents {
		return model.SubscriptionCurrency{}, false
	}
	return model.SubscriptionCurrency{Addresses: addresses, Currency: currency, Events: events}, true
}

func (m *Mapper) Subscription(_ context.Context, o jsonview.Object) (model.Subscription, bool, error) {
	id, okID := o.String("subscription_id")
	device, okDevice := o.String("device_id")
	endpointObj, okEndpointObj := o.Object("endpoint")
	currencies, okCurrencies := jsonview.MapObjects(o, "currencies", subscriptionCurrency)
	if !okID || !okDevice || !okEndpointObj || !okCurrencies {
		m.reject("subscription", o, "subscription_id")
		return model.Subscription{}, false, nil
	}
	endpoint, ok := subscriptionEndpoint(endpointObj)
	if !ok {
		m.reject("subscription", o, "subscription_id")
		return model.Subscription{}, false, nil
	}
	return model.Subscription{ID: id, Device: device, Endpoint: endpoint, Currencies: currencies}, true, nil
}

type subscriptionEventJSON struct {
	Name          string    `json:"name"`
	Confirmations *[]uint32 `json:"confirmations,omitempty"`
}

type subscriptionCurrencyJSON struct {
	Addresses []string                `json:"addresses"`
	Currency  string                  `json:"currency_id"`
	Events    []subscriptionEventJSON `json:"events"`
}

type subscriptionEndpointJSON struct {
	Environment string `json:"environment"`
	Kind        string `json:"kind"`
	Value       string `json:"value"`
}

// subscriptionJSON is the request body of subscription writes. ID is omitted on create.
type subscriptionJSON struct {
	ID         string                     `json:"subscription_id,omitempty"`
	Device     string                     `json:"device_id"`
	Endpoint   subscriptionEndpointJSON   `json:"endpoint"`
	Currencies []subscriptionCurrencyJSON `json:"currencies"`
}

func encodeSubscription(s model.Subscription, withID bool) subscriptionJSON {
	out := subscriptionJSON{
		Device: s.Device,
		Endpoint: subscriptionEndpointJSON{
			Environment: s.Endpoint.Environment,
			Kind:        s.Endpoint.Kind,
			Value:       s.Endpoint.Value,
		},
		Currencies: make([]subscriptionCurrencyJSON, 0, len(s.Currencies)),
	}
	if withID {
		out.ID = s.ID
	}
	for _, c := range s.Currencies {
		events := make([]subscriptionEventJSON, 0, len(c.Events))
		for _, e := range c.Events {
			ev := subscriptionEventJSON{Name: string(e.Name)}
			if e.Name == model.EventConfirmed {
				confirmations := e.Confirmations
				if confirmations == nil {
					confirmations = []uint32{}
				}
				ev.Confirmations = &confirmations
			}
			events = append(events, ev)
		}
		addresses := c.Addresses
		if addresses == nil {
			addresses = []string{}
		}
		out.Currencies = append(out.Currencies, subscriptionCurrencyJSON{
			Addresses: addresses,
			Currency:  c.Currency,
			Events:    events,
		})
	}
	return out
}
