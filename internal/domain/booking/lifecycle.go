package booking

import (
	"fmt"

	"github.com/salonbook/salon-web/internal/domain/user"
)

type edge struct {
	from Status
	to   Status
}

// Lifecycle is the single authoritative table of booking status transitions
// and the roles allowed to trigger each one.
type Lifecycle struct {
	edges map[edge][]user.Role
}

// Option configures a Lifecycle.
type Option func(*Lifecycle)

// WithCancelRoles authorizes roles to cancel non-terminal bookings.
// Without it the cancel edges exist but no role may take them.
func WithCancelRoles(roles ...user.Role) Option {
	return func(l *Lifecycle) {
		for _, from := range []Status{StatusPending, StatusConfirmed} {
			l.edges[edge{from, StatusCancelled}] = append([]user.Role(nil), roles...)
		}
	}
}

// NewLifecycle builds the booking state machine.
func NewLifecycle(opts ...Option) *Lifecycle {
	l := &Lifecycle{
		edges: map[edge][]user.Role{
			{StatusPending, StatusConfirmed}:   {user.RoleStylist},
			{StatusPending, StatusRejected}:    {user.RoleStylist},
			{StatusConfirmed, StatusCompleted}: {user.RoleStylist},
			{StatusPending, StatusCancelled}:   nil,
			{StatusConfirmed, StatusCancelled}: nil,
		},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Check validates a transition for a role. An edge missing from the table is
// ErrInvalidTransition whatever the role; a present edge the role may not take
// is ErrUnauthorized.
func (l *Lifecycle) Check(from, to Status, role user.Role) error {
	roles, ok := l.edges[edge{from, to}]
	if !ok {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	for _, r := range roles {
		if r == role {
			return nil
		}
	}
	return fmt.Errorf("%w: %s may not move a booking from %s to %s", ErrUnauthorized, roleName(role), from, to)
}

// Transition validates moving b to the target status on behalf of actor,
// including that the actor is the booking's own stylist or customer.
func (l *Lifecycle) Transition(b *Booking, to Status, actor Actor) error {
	if err := l.Check(b.Status, to, actor.Role); err != nil {
		return err
	}
	if !owns(b, actor) {
		return fmt.Errorf("%w: booking %d belongs to someone else", ErrUnauthorized, b.ID)
	}
	return nil
}

// Actions lists the statuses actor may move b to, in lifecycle order.
func (l *Lifecycle) Actions(b *Booking, actor Actor) []Status {
	var out []Status
	for _, to := range Statuses() {
		if l.Transition(b, to, actor) == nil {
			out = append(out, to)
		}
	}
	return out
}

// CheckFeedback validates that actor may leave feedback on b given the feedback
// already submitted.
func (l *Lifecycle) CheckFeedback(b *Booking, existing []Feedback, actor Actor) error {
	if actor.Role != user.RoleCustomer || !owns(b, actor) {
		return fmt.Errorf("%w: only the booking's customer can leave feedback", ErrUnauthorized)
	}
	if b.Status != StatusCompleted {
		return fmt.Errorf("%w: booking %d is %s, not %s", ErrNotEligible, b.ID, b.Status, StatusCompleted)
	}
	if hasFeedback(existing, b.ID) {
		return fmt.Errorf("%w: booking %d already has feedback", ErrNotEligible, b.ID)
	}
	return nil
}

// EligibleForFeedback returns completed bookings that have no feedback yet.
func (l *Lifecycle) EligibleForFeedback(bookings []Booking, existing []Feedback) []Booking {
	out := make([]Booking, 0)
	for _, b := range bookings {
		if b.Status == StatusCompleted && !hasFeedback(existing, b.ID) {
			out = append(out, b)
		}
	}
	return out
}

func hasFeedback(existing []Feedback, bookingID int64) bool {
	for _, f := range existing {
		if f.Booking.ID == bookingID {
			return true
		}
	}
	return false
}

// owns reports whether actor is the party of b matching its role. A zero
// nested ID means the backend left it out of a listing already scoped to the
// caller, so it is not held against them.
func owns(b *Booking, actor Actor) bool {
	switch actor.Role {
	case user.RoleStylist:
		return b.Stylist.ID == 0 || b.Stylist.ID == actor.ID
	case user.RoleCustomer:
		return b.Customer.ID == 0 || b.Customer.ID == actor.ID
	case user.RoleAdmin:
		return true
	default:
		return false
	}
}

func roleName(r user.Role) string {
	if r == "" {
		return "anonymous"
	}
	return string(r)
}
