package out

import "upilinker/internal/application/dto"

// PaymentRequestEventBroker is the live-subscription contract: writes publish
// events, dashboards subscribe per owner and release with the returned cancel
// function.
type PaymentRequestEventBroker interface {
	Publish(event dto.PaymentRequestEvent)
	Subscribe(ownerID string) (<-chan dto.PaymentRequestEvent, func())
}
