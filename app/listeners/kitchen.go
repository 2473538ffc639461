// Package listeners wires domain events to their consumers. Today that is
// the kitchen display: order and payment events are pushed to every
// connected WebSocket client.
package listeners

import (
	"github.com/shashiranjanraj/verandah/app/services"
	"github.com/shashiranjanraj/verandah/pkg/event"
	"github.com/shashiranjanraj/verandah/pkg/ws"
)

// KitchenHub is the WebSocket hub behind GET /api/ws/kitchen.
var KitchenHub = ws.NewHub()

// kitchenFrame is the JSON shape sent to kitchen displays.
type kitchenFrame struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// RegisterKitchen starts the hub and subscribes it to order and payment
// events. Call once at boot.
func RegisterKitchen() {
	go KitchenHub.Run()

	forward := func(ev event.Event) {
		KitchenHub.BroadcastJSON(kitchenFrame{Type: ev.Name, Payload: ev.Payload})
	}

	event.Listen(services.EventOrderCreated, forward)
	event.Listen(services.EventOrderStatusChanged, forward)
	event.Listen(services.EventItemStatusChanged, forward)
	event.Listen(services.EventPaymentRecorded, forward)
}
