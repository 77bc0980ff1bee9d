//go:build unit

package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"slotbooker/internal/domain/booking"
	"slotbooker/internal/domain/schedule"
	"slotbooker/internal/domain/timeslot"
	"slotbooker/internal/infra"
	"slotbooker/internal/pkg/clock"
	"slotbooker/internal/pkg/config"
	"slotbooker/internal/usecase/commands"
	"slotbooker/internal/usecase/queries"
	"slotbooker/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// fakeTx is an in-memory Tx whose repositories can be scripted per test.
type fakeTx struct {
	bookings     *fakeBookingRepo
	workingHours *fakeWorkingHoursRepo
	idempotency  *fakeIdempotencyRepo
}

func (t *fakeTx) Bookings() shared.BookingRepository          { return t.bookings }
func (t *fakeTx) WorkingHours() shared.WorkingHoursRepository { return t.workingHours }
func (t *fakeTx) Idempotency() shared.IdempotencyRepository   { return t.idempotency }

type fakeUow struct {
	tx *fakeTx
	// serializableErr is returned from WithinSerializable after fn runs,
	// standing in for a commit-time failure.
	serializableErr error
}

func (u *fakeUow) WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := fn(ctx, u.tx); err != nil {
		return err
	}
	return u.serializableErr
}

func (u *fakeUow) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

type fakeBookingRepo struct {
	overlap     bool
	overlapErr  error
	createErr   error
	createdID   uuid.UUID
	createCalls int
	stored      *booking.Booking
	updateErr   error
}

func (r *fakeBookingRepo) Create(_ context.Context, _ *booking.Booking) (uuid.UUID, error) {
	r.createCalls++
	if r.createErr != nil {
		return uuid.Nil, r.createErr
	}
	return r.createdID, nil
}

func (r *fakeBookingRepo) HasConfirmedOverlap(_ context.Context, _ uuid.UUID, _ timeslot.TimeSlot) (bool, error) {
	return r.overlap, r.overlapErr
}

func (r *fakeBookingRepo) FindByID(_ context.Context, _ uuid.UUID) (*booking.Booking, error) {
	if r.stored == nil {
		return nil, infra.NewRepositoryError(infra.KindNotFound, "booking", nil)
	}
	return r.stored, nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, _ uuid.UUID, _ booking.Status) error {
	return r.updateErr
}

type fakeWorkingHoursRepo struct {
	replaced []schedule.Rule
	err      error
}

func (r *fakeWorkingHoursRepo) ReplaceForHost(_ context.Context, _ uuid.UUID, rules []schedule.Rule) error {
	r.replaced = rules
	return r.err
}

type fakeIdempotencyRepo struct {
	claimed  bool
	existing *shared.IdempotencyRecord
	marked   []uuid.UUID
	released []uuid.UUID
}

func (r *fakeIdempotencyRepo) TryInsert(_ context.Context, _ uuid.UUID, _ string, _ time.Time) (bool, error) {
	return r.claimed, nil
}

func (r *fakeIdempotencyRepo) Get(_ context.Context, _ uuid.UUID) (*shared.IdempotencyRecord, error) {
	return r.existing, nil
}

func (r *fakeIdempotencyRepo) MarkCompleted(_ context.Context, _, bookingID uuid.UUID) error {
	r.marked = append(r.marked, bookingID)
	return nil
}

func (r *fakeIdempotencyRepo) Release(_ context.Context, key uuid.UUID) error {
	r.released = append(r.released, key)
	return nil
}

type fakeHostReads struct {
	host *commands.HostSnapshot
}

func (r *fakeHostReads) HostByID(_ context.Context, _ uuid.UUID) (*commands.HostSnapshot, error) {
	if r.host == nil {
		return nil, infra.NewRepositoryError(infra.KindNotFound, "host", nil)
	}
	return r.host, nil
}

type fakeBookingQueries struct {
	view *queries.BookingView
}

func (q *fakeBookingQueries) GetByID(_ context.Context, _ uuid.UUID) (*queries.BookingView, error) {
	if q.view == nil {
		return nil, queries.ErrBookingNotFound
	}
	return q.view, nil
}

func (q *fakeBookingQueries) ListByHost(_ context.Context, _ uuid.UUID) ([]*queries.BookingListItem, error) {
	return nil, nil
}

type fakeNotifier struct {
	calls int
	err   error
}

func (n *fakeNotifier) BookingConfirmed(_ context.Context, _ *queries.BookingView) error {
	n.calls++
	return n.err
}

type bookingFixture struct {
	uow       *fakeUow
	hostReads *fakeHostReads
	queries   *fakeBookingQueries
	notifier  *fakeNotifier
	svc       commands.BookingCommands
	hostID    uuid.UUID
	bookingID uuid.UUID
	params    commands.CreateBookingParams
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	hostID := uuid.New()
	bookingID := uuid.New()

	tx := &fakeTx{
		bookings:     &fakeBookingRepo{createdID: bookingID},
		workingHours: &fakeWorkingHoursRepo{},
		idempotency:  &fakeIdempotencyRepo{claimed: true},
	}
	uow := &fakeUow{tx: tx}
	hostReads := &fakeHostReads{host: &commands.HostSnapshot{
		ID: hostID, Name: "Alex Rivera", Email: "alex@example.com", Timezone: "America/New_York",
	}}
	q := &fakeBookingQueries{view: &queries.BookingView{ID: bookingID, HostID: hostID, Status: "confirmed"}}
	notifier := &fakeNotifier{}

	svc := commands.NewBookingCommands(
		uow, hostReads, q, notifier,
		clock.NewFixedClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)),
		config.NewTestConfig(),
		slog.New(slog.NewTextHandler(testWriter{t}, nil)),
	)

	return &bookingFixture{
		uow:       uow,
		hostReads: hostReads,
		queries:   q,
		notifier:  notifier,
		svc:       svc,
		hostID:    hostID,
		bookingID: bookingID,
		params: commands.CreateBookingParams{
			HostID:          hostID,
			StartTime:       time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC),
			DurationMinutes: 30,
			AttendeeName:    "Jordan Lee",
			AttendeeEmail:   "jordan@example.com",
			Timezone:        "America/New_York",
		},
	}
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

func TestCreateBooking_Succeeds(t *testing.T) {
	f := newBookingFixture(t)

	result, err := f.svc.CreateBooking(context.Background(), f.params, nil)

	require.NoError(t, err)
	require.False(t, result.Replayed)
	require.Equal(t, f.bookingID, result.Booking.ID)
	require.Equal(t, 1, f.uow.tx.bookings.createCalls)
	require.Equal(t, 1, f.notifier.calls)
}

func TestCreateBooking_SlotTakenOnOverlap(t *testing.T) {
	f := newBookingFixture(t)
	f.uow.tx.bookings.overlap = true

	_, err := f.svc.CreateBooking(context.Background(), f.params, nil)

	require.ErrorIs(t, err, commands.ErrSlotTaken)
	require.Zero(t, f.uow.tx.bookings.createCalls)
	require.Zero(t, f.notifier.calls)
}

func TestCreateBooking_SerializationFailureMapsToSlotTaken(t *testing.T) {
	f := newBookingFixture(t)
	f.uow.serializableErr = infra.NewRepositoryError(infra.KindSerialization, "booking", nil)

	_, err := f.svc.CreateBooking(context.Background(), f.params, nil)

	require.ErrorIs(t, err, commands.ErrSlotTaken)
	require.Zero(t, f.notifier.calls)
}

func TestCreateBooking_ConflictMapsToSlotTaken(t *testing.T) {
	f := newBookingFixture(t)
	f.uow.tx.bookings.createErr = infra.NewRepositoryError(infra.KindConflict, "booking", nil)

	_, err := f.svc.CreateBooking(context.Background(), f.params, nil)

	require.ErrorIs(t, err, commands.ErrSlotTaken)
}

func TestCreateBooking_TimeoutMapsToStoreTimeout(t *testing.T) {
	f := newBookingFixture(t)
	f.uow.serializableErr = infra.NewRepositoryError(infra.KindTimeout, "booking", nil)

	_, err := f.svc.CreateBooking(context.Background(), f.params, nil)

	require.ErrorIs(t, err, commands.ErrStoreTimeout)
}

func TestCreateBooking_UnknownStoreErrorMapsToStoreFailed(t *testing.T) {
	f := newBookingFixture(t)
	f.uow.serializableErr = infra.NewRepositoryError(infra.KindDBFailure, "booking", nil)

	_, err := f.svc.CreateBooking(context.Background(), f.params, nil)

	require.ErrorIs(t, err, commands.ErrStoreFailed)
}

func TestCreateBooking_HostMissing(t *testing.T) {
	f := newBookingFixture(t)
	f.hostReads.host = nil

	_, err := f.svc.CreateBooking(context.Background(), f.params, nil)

	require.ErrorIs(t, err, commands.ErrHostNotFound)
}

func TestCreateBooking_RejectsInvalidInput(t *testing.T) {
	f := newBookingFixture(t)

	tests := []struct {
		name   string
		mutate func(p *commands.CreateBookingParams)
	}{
		{"zero duration", func(p *commands.CreateBookingParams) { p.DurationMinutes = 0 }},
		{"negative duration", func(p *commands.CreateBookingParams) { p.DurationMinutes = -30 }},
		{"missing attendee name", func(p *commands.CreateBookingParams) { p.AttendeeName = "  " }},
		{"missing attendee email", func(p *commands.CreateBookingParams) { p.AttendeeEmail = "" }},
		{"malformed attendee email", func(p *commands.CreateBookingParams) { p.AttendeeEmail = "not-an-email" }},
		{"malformed guest email", func(p *commands.CreateBookingParams) { p.Guests = []string{"bad@"} }},
		{"unknown timezone", func(p *commands.CreateBookingParams) { p.Timezone = "Mars/Olympus" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := f.params
			tt.mutate(&params)

			_, err := f.svc.CreateBooking(context.Background(), params, nil)

			require.ErrorIs(t, err, commands.ErrInvalidBooking)
			require.Zero(t, f.uow.tx.bookings.createCalls)
		})
	}
}

func TestCreateBooking_NotifierFailureDoesNotFailBooking(t *testing.T) {
	f := newBookingFixture(t)
	f.notifier.err = infra.NewRepositoryError(infra.KindDBFailure, "smtp", nil)

	result, err := f.svc.CreateBooking(context.Background(), f.params, nil)

	require.NoError(t, err)
	require.Equal(t, f.bookingID, result.Booking.ID)
	require.Equal(t, 1, f.notifier.calls)
}

func TestCreateBooking_IdempotencyFreshKeyMarksCompleted(t *testing.T) {
	f := newBookingFixture(t)
	key := uuid.New()

	result, err := f.svc.CreateBooking(context.Background(), f.params, &key)

	require.NoError(t, err)
	require.False(t, result.Replayed)
	require.Equal(t, []uuid.UUID{f.bookingID}, f.uow.tx.idempotency.marked)
	require.Empty(t, f.uow.tx.idempotency.released)
}

func TestCreateBooking_FailedCommitReleasesIdempotencyKey(t *testing.T) {
	f := newBookingFixture(t)
	f.uow.serializableErr = infra.NewRepositoryError(infra.KindSerialization, "booking", nil)
	key := uuid.New()

	_, err := f.svc.CreateBooking(context.Background(), f.params, &key)

	require.ErrorIs(t, err, commands.ErrSlotTaken)
	require.Equal(t, []uuid.UUID{key}, f.uow.tx.idempotency.released)
	require.Zero(t, f.notifier.calls)
}

func TestCreateBooking_IdempotencyReplaysCompletedKey(t *testing.T) {
	f := newBookingFixture(t)
	key := uuid.New()
	priorID := f.bookingID
	f.uow.tx.idempotency.claimed = false
	f.uow.tx.idempotency.existing = &shared.IdempotencyRecord{
		Key:             key,
		Status:          "completed",
		RequestHash:     hashOf(t, f.params),
		ResultBookingID: &priorID,
	}

	result, err := f.svc.CreateBooking(context.Background(), f.params, &key)

	require.NoError(t, err)
	require.True(t, result.Replayed)
	require.Equal(t, priorID, result.Booking.ID)
	require.Zero(t, f.uow.tx.bookings.createCalls)
	require.Zero(t, f.notifier.calls)
}

func TestCreateBooking_IdempotencyRejectsDifferentPayload(t *testing.T) {
	f := newBookingFixture(t)
	key := uuid.New()
	f.uow.tx.idempotency.claimed = false
	f.uow.tx.idempotency.existing = &shared.IdempotencyRecord{
		Key:         key,
		Status:      "completed",
		RequestHash: "different-request",
	}

	_, err := f.svc.CreateBooking(context.Background(), f.params, &key)

	require.ErrorIs(t, err, commands.ErrDuplicateRequest)
	require.Zero(t, f.uow.tx.bookings.createCalls)
}

func TestCreateBooking_IdempotencyPendingKey(t *testing.T) {
	f := newBookingFixture(t)
	key := uuid.New()
	f.uow.tx.idempotency.claimed = false
	f.uow.tx.idempotency.existing = &shared.IdempotencyRecord{
		Key:         key,
		Status:      "processing",
		RequestHash: hashOf(t, f.params),
	}

	_, err := f.svc.CreateBooking(context.Background(), f.params, &key)

	require.ErrorIs(t, err, commands.ErrRequestInProgress)
}

// hashOf mirrors the request fingerprint used by the idempotency claim.
func hashOf(t *testing.T, params commands.CreateBookingParams) string {
	t.Helper()
	return commands.HashParamsForTest(params)
}

func TestCancelBooking_Succeeds(t *testing.T) {
	f := newBookingFixture(t)
	slot, err := timeslot.FromStart(f.params.StartTime, 30*time.Minute)
	require.NoError(t, err)
	attendee, err := booking.NewAttendee("Jordan Lee", "jordan@example.com", "", "")
	require.NoError(t, err)
	stored, err := booking.NewBooking(f.hostID, attendee, booking.GuestList{}, booking.NewMeetingDetails("", "", "", ""), slot, "UTC")
	require.NoError(t, err)
	f.uow.tx.bookings.stored = stored

	require.NoError(t, f.svc.CancelBooking(context.Background(), stored.ID()))
	require.Equal(t, booking.StatusCancelled, stored.Status())
}

func TestCancelBooking_NotFound(t *testing.T) {
	f := newBookingFixture(t)

	err := f.svc.CancelBooking(context.Background(), uuid.New())

	require.ErrorIs(t, err, commands.ErrBookingNotFound)
}

func TestCancelBooking_AlreadyCancelled(t *testing.T) {
	f := newBookingFixture(t)
	slot, err := timeslot.FromStart(f.params.StartTime, 30*time.Minute)
	require.NoError(t, err)
	attendee, err := booking.NewAttendee("Jordan Lee", "jordan@example.com", "", "")
	require.NoError(t, err)
	stored, err := booking.NewBooking(f.hostID, attendee, booking.GuestList{}, booking.NewMeetingDetails("", "", "", ""), slot, "UTC")
	require.NoError(t, err)
	require.NoError(t, stored.Cancel())
	f.uow.tx.bookings.stored = stored

	err = f.svc.CancelBooking(context.Background(), stored.ID())

	require.ErrorIs(t, err, commands.ErrAlreadyCancelled)
}
