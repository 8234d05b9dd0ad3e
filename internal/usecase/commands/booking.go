package commands

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jinzhu/copier"

	"market-admin/internal/domain/booking"
	"market-admin/internal/domain/session"
	"market-admin/internal/pkg/clock"
	"market-admin/internal/pkg/errs"
	"market-admin/internal/usecase/readmodel"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

const (
	NoticeDeliveryUpdated = "Delivery status updated successfully"
	NoticePaymentUpdated  = "Payment status updated successfully"
)

// ViewIdleTimeout is how long a loaded booking stays registered without being used.
const ViewIdleTimeout = 30 * time.Minute

// BookingView is a point-in-time copy of one loaded booking. Pending holds values that
// were selected but not yet confirmed by the backend, keyed by axis.
type BookingView struct {
	Booking         readmodel.Booking       `json:"booking"`
	Stats           *readmodel.BookingStats `json:"stats,omitempty"`
	Pending         map[booking.Axis]string `json:"pending,omitempty"`
	CanCancel       bool                    `json:"can_cancel"`
	DeliveryOptions []string                `json:"delivery_options"`
	PaymentOptions  []string                `json:"payment_options"`
}

type TransitionResult struct {
	View   *BookingView
	Notice string
	// Discarded is set when the view was forgotten or reloaded while the call was in flight.
	Discarded bool
}

// BookingLifecycle holds the bookings each session has loaded. Views belong to the
// session in ctx; another session's Load, Forget or pending selection never touches them.
type BookingLifecycle interface {
	Load(ctx context.Context, id int64) (*BookingView, error)
	Snapshot(ctx context.Context, id int64) (*BookingView, error)
	Transition(ctx context.Context, id int64, axis booking.Axis, value string) (*TransitionResult, error)
	Cancel(ctx context.Context, id int64) (*TransitionResult, error)
	Forget(ctx context.Context, id int64)
}

type viewKey struct {
	scope string
	id    int64
}

func viewKeyFor(ctx context.Context, id int64) viewKey {
	return viewKey{scope: session.Fingerprint(session.Token(ctx)), id: id}
}

type loadedBooking struct {
	generation uint64
	lastUsed   time.Time
	entity     *booking.Booking
	detail     readmodel.Booking
	stats      *readmodel.BookingStats
	pending    map[booking.Axis]string
}

// lifecycleImpl keeps one view per session and booking id; views idle for
// ViewIdleTimeout are dropped. The lock is never held across a backend call, so
// transitions on the same booking are not serialised and the last one to resolve wins.
type lifecycleImpl struct {
	api    BookingStatusAPI
	clock  clock.Clock
	logger *slog.Logger

	mu         sync.Mutex
	views      map[viewKey]*loadedBooking
	generation uint64
}

func NewBookingLifecycle(api BookingStatusAPI, clk clock.Clock, logger *slog.Logger) BookingLifecycle {
	return &lifecycleImpl{
		api:    api,
		clock:  clk,
		logger: logger,
		views:  make(map[viewKey]*loadedBooking),
	}
}

// lookup returns the live view for key and marks it used. Caller holds mu.
func (l *lifecycleImpl) lookup(key viewKey) (*loadedBooking, bool) {
	loaded, ok := l.views[key]
	if !ok {
		return nil, false
	}
	now := l.clock.Now()
	if now.Sub(loaded.lastUsed) >= ViewIdleTimeout {
		delete(l.views, key)
		return nil, false
	}
	loaded.lastUsed = now
	return loaded, true
}

// sweep drops idle views. Caller holds mu.
func (l *lifecycleImpl) sweep(now time.Time) {
	for key, loaded := range l.views {
		if now.Sub(loaded.lastUsed) >= ViewIdleTimeout {
			delete(l.views, key)
		}
	}
}

func (l *lifecycleImpl) Load(ctx context.Context, id int64) (*BookingView, error) {
	detail, err := l.api.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	rm := detail.Data.Booking
	entity, err := booking.Reconstruct(rm.ID, rm.DeliveryStatus, rm.PaymentStatus)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "booking %d", id), errs.ErrValidation)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.clock.Now()
	l.sweep(now)
	l.generation++
	loaded := &loadedBooking{
		generation: l.generation,
		lastUsed:   now,
		entity:     entity,
		detail:     rm,
		stats:      detail.Data.Stats,
		pending:    make(map[booking.Axis]string),
	}
	l.views[viewKeyFor(ctx, id)] = loaded
	return loaded.snapshot()
}

func (l *lifecycleImpl) Snapshot(ctx context.Context, id int64) (*BookingView, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	loaded, ok := l.lookup(viewKeyFor(ctx, id))
	if !ok {
		return nil, errs.ErrBookingNotLoaded
	}
	return loaded.snapshot()
}

func (l *lifecycleImpl) Forget(ctx context.Context, id int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.views, viewKeyFor(ctx, id))
}

func (l *lifecycleImpl) Cancel(ctx context.Context, id int64) (*TransitionResult, error) {
	l.mu.Lock()
	loaded, ok := l.lookup(viewKeyFor(ctx, id))
	canCancel := ok && loaded.entity.CanCancel()
	l.mu.Unlock()

	if !ok {
		return nil, errs.ErrBookingNotLoaded
	}
	if !canCancel {
		return nil, errs.ErrCancelNotAllowed
	}
	return l.Transition(ctx, id, booking.AxisDelivery, booking.DeliveryCancelled.String())
}

func (l *lifecycleImpl) Transition(ctx context.Context, id int64, axis booking.Axis, value string) (*TransitionResult, error) {
	key := viewKeyFor(ctx, id)
	generation, err := l.stage(key, axis, value)
	if err != nil {
		return nil, err
	}

	var envelope *readmodel.Envelope
	switch axis {
	case booking.AxisDelivery:
		envelope, err = l.api.ChangeStatus(ctx, id, value)
	case booking.AxisPayment:
		envelope, err = l.api.ChangePaymentStatus(ctx, id, value)
	}
	if err == nil && !envelope.Succeeded() {
		err = errs.Mark(errs.Newf("booking %d %s=%s: %s", id, axis, value, envelope.Message), errs.ErrTransitionRejected)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	loaded, ok := l.lookup(key)
	current := ok && loaded.generation == generation

	if err != nil {
		if current && loaded.pending[axis] == value {
			delete(loaded.pending, axis)
		}
		return nil, err
	}

	notice := NoticeDeliveryUpdated
	if axis == booking.AxisPayment {
		notice = NoticePaymentUpdated
	}
	if !current {
		l.logger.Debug("Discarding booking transition for unloaded view", "booking_id", id, "axis", axis)
		return &TransitionResult{Notice: notice, Discarded: true}, nil
	}

	loaded.commit(axis, value)
	view, err := loaded.snapshot()
	if err != nil {
		return nil, err
	}
	return &TransitionResult{View: view, Notice: notice}, nil
}

// stage validates the request and records the pending value before any network call.
func (l *lifecycleImpl) stage(key viewKey, axis booking.Axis, value string) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	loaded, ok := l.lookup(key)
	if !ok {
		return 0, errs.ErrBookingNotLoaded
	}
	if err := loaded.entity.ValidateTransition(axis, value); err != nil {
		return 0, errs.Mark(err, errs.ErrInvalidTransition)
	}
	loaded.pending[axis] = value
	return loaded.generation, nil
}

func (b *loadedBooking) commit(axis booking.Axis, value string) {
	b.entity.Apply(axis, value)
	switch axis {
	case booking.AxisDelivery:
		b.detail.DeliveryStatus = value
	case booking.AxisPayment:
		b.detail.PaymentStatus = value
	}
	// a later selection on the same axis stays pending
	if b.pending[axis] == value {
		delete(b.pending, axis)
	}
}

func (b *loadedBooking) snapshot() (*BookingView, error) {
	view := &BookingView{
		Pending:         make(map[booking.Axis]string, len(b.pending)),
		CanCancel:       b.entity.CanCancel(),
		DeliveryOptions: deliveryOptions(b.entity.DeliveryStatus()),
		PaymentOptions:  paymentOptions(b.entity.PaymentStatus()),
	}
	if err := copier.CopyWithOption(&view.Booking, &b.detail, copier.Option{DeepCopy: true}); err != nil {
		return nil, errs.Wrap(err, "copy booking")
	}
	if b.stats != nil {
		stats := *b.stats
		view.Stats = &stats
	}
	for axis, value := range b.pending {
		view.Pending[axis] = value
	}
	return view, nil
}

// deliveryOptions lists the current value first, then every allowed successor.
func deliveryOptions(current booking.DeliveryStatus) []string {
	opts := []string{current.String()}
	for _, next := range current.Next() {
		opts = append(opts, next.String())
	}
	return opts
}

func paymentOptions(current booking.PaymentStatus) []string {
	opts := []string{current.String()}
	for _, next := range current.Next() {
		opts = append(opts, next.String())
	}
	return opts
}
