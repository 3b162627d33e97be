package domain

import "github.com/samber/lo"

// Delivery reports whether a live session was found for UserID and a push
// was attempted. It says nothing about the client acknowledging the bytes.
type Delivery struct {
	UserID    UserID `json:"userId"`
	Delivered bool   `json:"sent"`
}

// DeliveryReport keeps the order of the requested recipients.
type DeliveryReport []Delivery

func (r DeliveryReport) DeliveredCount() int {
	return lo.CountBy(r, func(d Delivery) bool { return d.Delivered })
}

// Undelivered lists the recipients that need a fallback channel.
func (r DeliveryReport) Undelivered() []UserID {
	return lo.FilterMap(r, func(d Delivery, _ int) (UserID, bool) {
		return d.UserID, !d.Delivered
	})
}
