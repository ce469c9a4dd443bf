package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sportbook/SB-BookingService/internal/domain"
	"github.com/sportbook/SB-BookingService/pkg/types"
)

// lastBookingKey единственный ключ сессии с последним бронированием
func lastBookingKey(sessionID string) string {
	return fmt.Sprintf("booking:last:%s", sessionID)
}

// storedBooking сериализованная запись бронирования.
// Схема не версионируется: запись живет не дольше сессии.
type storedBooking struct {
	ID            string  `json:"id"`
	FacilityID    string  `json:"facilityId"`
	FacilityName  string  `json:"facilityName"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	Duration      int     `json:"duration"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	PlayerCount   int     `json:"playerCount"`
	SpecialReq    *string `json:"specialRequests,omitempty"`
	TotalAmount   float64 `json:"totalAmount"`
	Status        string  `json:"status"`
	PaymentMethod string  `json:"paymentMethod"`
	CreatedAt     string  `json:"createdAt"`
}

// RedisStore хранилище последнего бронирования сессии поверх Redis.
// TTL ключа играет роль времени жизни сессии.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore создает Redis-хранилище
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

// NewRedisClient подключается к Redis и проверяет соединение коротким ping
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%w: ping %s: %v", ErrStore, addr, err)
	}

	return client, nil
}

// Put сохраняет бронирование как единственную запись сессии, перезаписывая предыдущую
func (s *RedisStore) Put(ctx context.Context, sessionID string, booking *domain.Booking) error {
	data, err := json.Marshal(toStored(booking))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	if err := s.client.Set(ctx, lastBookingKey(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set: %v", ErrStore, err)
	}
	return nil
}

// Get возвращает последнее бронирование сессии
func (s *RedisStore) Get(ctx context.Context, sessionID string) (*domain.Booking, error) {
	data, err := s.client.Get(ctx, lastBookingKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get: %v", ErrStore, err)
	}

	var stored storedBooking
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}

	return fromStored(&stored)
}

func toStored(b *domain.Booking) *storedBooking {
	return &storedBooking{
		ID:            b.ID,
		FacilityID:    b.FacilityID,
		FacilityName:  b.FacilityName,
		Date:          b.Date,
		Time:          b.StartTime.String(),
		Duration:      b.DurationHours,
		Name:          b.Customer.Name,
		Email:         b.Customer.Email,
		Phone:         b.Customer.Phone,
		PlayerCount:   b.Customer.PlayerCount,
		SpecialReq:    b.Customer.SpecialRequests,
		TotalAmount:   b.TotalAmount,
		Status:        string(b.Status),
		PaymentMethod: string(b.PaymentMethod),
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
}

func fromStored(s *storedBooking) (*domain.Booking, error) {
	createdAt, err := time.Parse(time.RFC3339, s.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: parse createdAt: %v", ErrEncode, err)
	}

	return &domain.Booking{
		ID:            s.ID,
		FacilityID:    s.FacilityID,
		FacilityName:  s.FacilityName,
		Date:          s.Date,
		StartTime:     types.TimeString(s.Time),
		DurationHours: s.Duration,
		Customer: domain.CustomerInfo{
			Name:            s.Name,
			Email:           s.Email,
			Phone:           s.Phone,
			PlayerCount:     s.PlayerCount,
			SpecialRequests: s.SpecialReq,
		},
		TotalAmount:   s.TotalAmount,
		Status:        domain.BookingStatus(s.Status),
		PaymentMethod: domain.PaymentMethod(s.PaymentMethod),
		CreatedAt:     createdAt,
	}, nil
}
