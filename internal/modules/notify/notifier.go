package notify

import (
	"context"

	"clubradar/internal/domain"
)

type venueReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
}

// Notifier fans domain events out over the hub. It satisfies the
// notifier interfaces the booking, venue and payout modules declare.
type Notifier struct {
	hub    *Hub
	venues venueReader
}

func NewNotifier(hub *Hub, venues venueReader) *Notifier {
	return &Notifier{hub: hub, venues: venues}
}

func (n *Notifier) NotifyBookingCreated(ctx context.Context, b *domain.Booking) {
	n.hub.SendToUser(b.UserID, &Event{Type: EventBookingCreated, Payload: bookingPayload(b)})
}

func (n *Notifier) NotifyBookingConfirmed(ctx context.Context, b *domain.Booking) {
	n.hub.SendToUser(b.UserID, &Event{Type: EventBookingConfirmed, Payload: bookingPayload(b)})
}

func (n *Notifier) NotifyVenueApproved(ctx context.Context, ownerID, venueID int64) error {
	n.hub.SendToUser(ownerID, &Event{Type: EventVenueApproved, Payload: map[string]int64{"venue_id": venueID}})
	return nil
}

func (n *Notifier) NotifyVenueRejected(ctx context.Context, ownerID, venueID int64, reason string) error {
	n.hub.SendToUser(ownerID, &Event{
		Type:    EventVenueRejected,
		Payload: map[string]interface{}{"venue_id": venueID, "reason": reason},
	})
	return nil
}

func (n *Notifier) NotifyPayoutCreated(ctx context.Context, p *domain.Payout) error {
	return n.fanOutPayout(ctx, EventPayoutCreated, p)
}

func (n *Notifier) NotifyPayoutSettled(ctx context.Context, p *domain.Payout) error {
	return n.fanOutPayout(ctx, EventPayoutSettled, p)
}

// fanOutPayout tells the venue owner and every connected admin. A
// missing owner connection is not an error, delivery is best effort.
func (n *Notifier) fanOutPayout(ctx context.Context, eventType string, p *domain.Payout) error {
	event := &Event{Type: eventType, Payload: payoutPayload(p)}

	if v, err := n.venues.GetByID(ctx, p.VenueID); err == nil {
		n.hub.SendToUser(v.OwnerID, event)
	}
	n.hub.BroadcastToRole(string(domain.RoleAdmin), event)
	return nil
}

func bookingPayload(b *domain.Booking) map[string]interface{} {
	return map[string]interface{}{
		"booking_id":     b.ID,
		"event_id":       b.EventID,
		"amount":         b.Amount.StringFixed(2),
		"payment_status": b.PaymentStatus,
	}
}

func payoutPayload(p *domain.Payout) map[string]interface{} {
	return map[string]interface{}{
		"payout_id":  p.ID,
		"venue_id":   p.VenueID,
		"net_amount": p.NetAmount.StringFixed(2),
		"status":     p.Status,
	}
}
