package pubsub

import (
	"encoding/json"

	"inventory/internal/domain/service"

	"github.com/pkg/errors"
)

// Attribute keys set on every delivery event message.
const (
	attrEventType   = "event_type"
	attrDeliveryID  = "delivery_id"
	attrProductCode = "product_code"
	attrRequestID   = "request_id"
)

var errInvalidEvent = errors.New("delivery event requires event_type and delivery_id")

// deliveryMessage is the transport-neutral encoding of a delivery event.
type deliveryMessage struct {
	data        []byte
	attributes  map[string]string
	orderingKey string
}

// encodeDeliveryEvent serializes the event and derives the attributes subscribers filter on.
// Events are ordered per delivery so created/delivered/cancelled arrive in transition order.
func encodeDeliveryEvent(event *service.DeliveryEvent) (*deliveryMessage, error) {
	if event == nil || event.EventType == "" || event.DeliveryID == "" {
		return nil, errors.WithStack(errInvalidEvent)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode delivery event")
	}

	attributes := map[string]string{
		attrEventType:   event.EventType,
		attrDeliveryID:  event.DeliveryID,
		attrProductCode: event.ProductCode,
	}
	if event.RequestID != "" {
		attributes[attrRequestID] = event.RequestID
	}

	return &deliveryMessage{
		data:        data,
		attributes:  attributes,
		orderingKey: event.DeliveryID,
	}, nil
}
