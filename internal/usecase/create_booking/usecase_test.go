package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportbook/SB-BookingService/internal/domain"
	catalogRepo "github.com/sportbook/SB-BookingService/internal/infra/catalog"
	"github.com/sportbook/SB-BookingService/pkg/ptr"
	"github.com/sportbook/SB-BookingService/pkg/types"
)

// fakeCatalog каталог с одной площадкой
type fakeCatalog struct {
	facility      *domain.Facility
	markBookedErr error
	markedSlots   []string
}

func (f *fakeCatalog) GetByID(ctx context.Context, id string) (*domain.Facility, error) {
	if f.facility == nil || f.facility.ID != id {
		return nil, catalogRepo.ErrFacilityNotFound
	}
	copied := *f.facility
	copied.Availability = f.facility.Availability.Clone()
	return &copied, nil
}

func (f *fakeCatalog) MarkBooked(ctx context.Context, facilityID, date string, t types.TimeString) error {
	if f.markBookedErr != nil {
		return f.markBookedErr
	}
	f.markedSlots = append(f.markedSlots, facilityID+"/"+date+"/"+t.String())
	return nil
}

// fakeStore записывает сохраненные бронирования
type fakeStore struct {
	putErr   error
	bookings map[string]*domain.Booking
}

func newFakeStore() *fakeStore {
	return &fakeStore{bookings: make(map[string]*domain.Booking)}
}

func (f *fakeStore) Put(ctx context.Context, sessionID string, booking *domain.Booking) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.bookings[sessionID] = booking
	return nil
}

// fakeTimeProvider фиксированное время для тестов
type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func testFacility() *domain.Facility {
	return &domain.Facility{
		ID:           "1",
		Name:         "Elite Basketball Arena",
		Sport:        "Basketball",
		PricePerHour: 1500,
		Availability: domain.Availability{
			"2025-01-10": domain.DaySlots{
				"09:00": domain.SlotAvailable,
				"10:00": domain.SlotBooked,
			},
		},
	}
}

func validRequest() *Request {
	return &Request{
		SessionID:  "session-1",
		FacilityID: "1",
		Date:       time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		StartTime:  "09:00",
		Name:       "Jane",
		Email:      "jane@example.com",
		Phone:      "+254700000000",
	}
}

func newTestUseCase(catalog CatalogRepository, store BookingStore) *UseCase {
	uc := NewUseCase(catalog, store, 0, noopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)}
	return uc
}

func TestUseCase_Execute_Success(t *testing.T) {
	catalog := &fakeCatalog{facility: testFacility()}
	store := newFakeStore()
	uc := newTestUseCase(catalog, store)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "1", resp.FacilityID)
	assert.Equal(t, "Elite Basketball Arena", resp.FacilityName)
	assert.Equal(t, "2025-01-10", resp.Date)
	assert.Equal(t, types.TimeString("09:00"), resp.StartTime)
	assert.Equal(t, 1, resp.DurationHours)
	assert.Equal(t, "Jane", resp.Name)

	// Сумма равна цене часа площадки
	assert.Equal(t, 1500.0, resp.TotalAmount)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)

	// Значения по умолчанию: один игрок, оплата mpesa
	assert.Equal(t, 1, resp.PlayerCount)
	assert.Equal(t, string(domain.PaymentMpesa), resp.PaymentMethod)

	// Слот занят в календаре и запись сохранена в сессии
	assert.Equal(t, []string{"1/2025-01-10/09:00"}, catalog.markedSlots)
	require.Contains(t, store.bookings, "session-1")
	assert.Equal(t, resp.ID, store.bookings["session-1"].ID)
}

func TestUseCase_Execute_BookingIDFormat(t *testing.T) {
	uc := newTestUseCase(&fakeCatalog{facility: testFacility()}, newFakeStore())

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Regexp(t, `^BK\d{6}$`, resp.ID)
}

func TestUseCase_Execute_MissingContactFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"empty name", func(r *Request) { r.Name = "" }},
		{"empty email", func(r *Request) { r.Email = "" }},
		{"empty phone", func(r *Request) { r.Phone = "" }},
		{"whitespace name", func(r *Request) { r.Name = "   " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := &fakeCatalog{facility: testFacility()}
			store := newFakeStore()
			uc := newTestUseCase(catalog, store)

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrMissingInformation)
			// Ни слот, ни запись не затронуты
			assert.Empty(t, catalog.markedSlots)
			assert.Empty(t, store.bookings)
		})
	}
}

func TestUseCase_Execute_PlayerCountValidation(t *testing.T) {
	uc := newTestUseCase(&fakeCatalog{facility: testFacility()}, newFakeStore())

	req := validRequest()
	req.PlayerCount = 51
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.PlayerCount = -1
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.PlayerCount = 50
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 50, resp.PlayerCount)
}

func TestUseCase_Execute_UnknownPaymentMethod(t *testing.T) {
	uc := newTestUseCase(&fakeCatalog{facility: testFacility()}, newFakeStore())

	req := validRequest()
	req.PaymentMethod = "cash"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_SpecialRequestsTooLong(t *testing.T) {
	uc := newTestUseCase(&fakeCatalog{facility: testFacility()}, newFakeStore())

	long := make([]byte, domain.MaxSpecialRequestsLength+1)
	for i := range long {
		long[i] = 'a'
	}

	req := validRequest()
	req.SpecialRequests = ptr.Ptr(string(long))

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_FacilityNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeCatalog{}, newFakeStore())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrFacilityNotFound)
}

func TestUseCase_Execute_PastDate(t *testing.T) {
	uc := newTestUseCase(&fakeCatalog{facility: testFacility()}, newFakeStore())

	req := validRequest()
	req.Date = time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestUseCase_Execute_DateOutsideHorizon(t *testing.T) {
	uc := newTestUseCase(&fakeCatalog{facility: testFacility()}, newFakeStore())

	req := validRequest()
	req.Date = time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateOutsideHorizon)
}

func TestUseCase_Execute_BookedSlot(t *testing.T) {
	catalog := &fakeCatalog{facility: testFacility()}
	store := newFakeStore()
	uc := newTestUseCase(catalog, store)

	req := validRequest()
	req.StartTime = "10:00"

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Empty(t, store.bookings)
}

func TestUseCase_Execute_SlotTakenDuringProcessing(t *testing.T) {
	// Гонка: слот был свободен при проверке, но занят к моменту MarkBooked
	catalog := &fakeCatalog{
		facility:      testFacility(),
		markBookedErr: catalogRepo.ErrSlotAlreadyBooked,
	}
	store := newFakeStore()
	uc := newTestUseCase(catalog, store)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Empty(t, store.bookings)
}

func TestUseCase_Execute_StoreFailure(t *testing.T) {
	store := newFakeStore()
	store.putErr = errors.New("store is down")
	uc := newTestUseCase(&fakeCatalog{facility: testFacility()}, store)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
}

func TestUseCase_Execute_OverwritesPreviousBooking(t *testing.T) {
	facility := testFacility()
	facility.Availability["2025-01-10"]["11:00"] = domain.SlotAvailable
	store := newFakeStore()
	uc := newTestUseCase(&fakeCatalog{facility: facility}, store)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.StartTime = "11:00"
	_, err = uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Сессия хранит только последнее бронирование
	require.Len(t, store.bookings, 1)
	assert.Equal(t, types.TimeString("11:00"), store.bookings["session-1"].StartTime)
}

func TestUseCase_Execute_CancelledDuringProcessing(t *testing.T) {
	catalog := &fakeCatalog{facility: testFacility()}
	store := newFakeStore()
	uc := NewUseCase(catalog, store, time.Second, noopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Execute(ctx, validRequest())

	// Отмена во время задержки не оставляет побочных эффектов
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, catalog.markedSlots)
	assert.Empty(t, store.bookings)
}

func TestUseCase_Execute_BookingInProgress(t *testing.T) {
	uc := newTestUseCase(&fakeCatalog{facility: testFacility()}, newFakeStore())

	// Имитируем уже идущую обработку этой сессии
	require.True(t, uc.beginInFlight("session-1"))
	defer uc.endInFlight("session-1")

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBookingInProgress)
}
