package bookings

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"nanny_booking/internal/domain/entities"
	"nanny_booking/internal/domain/pricing"
	"nanny_booking/internal/infrastructure/logging"
	"nanny_booking/internal/usecase/interfaces"
)

const (
	createBookingPath = "/rpc/create_booking"
	idempotencyHeader = "Idempotency-Key"
)

const maxErrorBody = 4 << 10

var ErrBookingServiceNotConfigured = errors.New("booking service not configured")
var ErrMissingBookingID = errors.New("booking service response has no booking_id")

// RemoteError is a non-2xx answer from the booking service.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("booking service returned %d: %s", e.StatusCode, e.Message)
}

type createBookingResponse struct {
	BookingID string          `json:"booking_id"`
	Booking   json.RawMessage `json:"booking"`
}

type Options struct {
	BaseURL  string
	Token    string
	MockMode bool
	Timeout  time.Duration
}

// BookingRPCGateway creates bookings through the booking service's RPC endpoint.
// The service owns the financial calculation; the amounts it returns are final.
type BookingRPCGateway struct {
	baseURL  string
	token    string
	client   *http.Client
	mockMode bool
	now      func() time.Time
	logger   *zap.Logger
}

var _ interfaces.IBookingGateway = (*BookingRPCGateway)(nil)

func NewBookingRPCGateway(opts Options, logger *zap.Logger) (*BookingRPCGateway, error) {
	logger = logging.OrNop(logger).Named("booking_gateway")
	if opts.MockMode {
		logger.Info("mock mode enabled")
		return &BookingRPCGateway{mockMode: true, now: time.Now, logger: logger}, nil
	}

	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		return nil, ErrBookingServiceNotConfigured
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &BookingRPCGateway{
		baseURL: baseURL,
		token:   opts.Token,
		client:  &http.Client{Timeout: timeout},
		now:     time.Now,
		logger:  logger,
	}, nil
}

func (g *BookingRPCGateway) CreateBooking(ctx context.Context, req entities.BookingRequest) (entities.Booking, error) {
	if g == nil {
		return entities.Booking{}, ErrBookingServiceNotConfigured
	}
	if g.mockMode {
		return g.mockBooking(req)
	}
	if g.client == nil {
		return entities.Booking{}, ErrBookingServiceNotConfigured
	}

	body, err := json.Marshal(req)
	if err != nil {
		return entities.Booking{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+createBookingPath, bytes.NewReader(body))
	if err != nil {
		return entities.Booking{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(idempotencyHeader, ensureIdempotencyKey(req.IdempotencyKey))
	if g.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+g.token)
	}

	g.logger.Debug("create booking start", zap.String("client_id", req.ClientID), zap.String("provider_id", req.ProviderID))
	resp, err := g.client.Do(httpReq)
	if err != nil {
		g.logger.Warn("create booking transport failure", zap.Error(err))
		return entities.Booking{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		rerr := &RemoteError{StatusCode: resp.StatusCode, Message: remoteMessage(msg, resp.Status)}
		g.logger.Warn("create booking rejected", zap.Int("status", resp.StatusCode), zap.String("message", rerr.Message))
		return entities.Booking{}, rerr
	}

	var out createBookingResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return entities.Booking{}, fmt.Errorf("decode booking response: %w", err)
	}
	if out.BookingID == "" {
		return entities.Booking{}, ErrMissingBookingID
	}

	booking := entities.Booking{}
	if len(out.Booking) > 0 && string(out.Booking) != "null" {
		if err := json.Unmarshal(out.Booking, &booking); err != nil {
			return entities.Booking{}, fmt.Errorf("decode booking record: %w", err)
		}
		booking.Raw = out.Booking
	}
	booking.ID = out.BookingID

	g.logger.Info("create booking success", zap.String("booking_id", booking.ID), zap.String("status", booking.Status))
	return booking, nil
}

// mockBooking answers like the booking service would for a new pending booking.
// The amount is the preview estimate since no financial service is involved.
func (g *BookingRPCGateway) mockBooking(req entities.BookingRequest) (entities.Booking, error) {
	booking := entities.Booking{
		ID:             uuid.NewString(),
		ClientID:       req.ClientID,
		ProviderID:     req.ProviderID,
		Status:         "pending",
		DurationType:   req.Preferences.DurationType,
		BookingSubType: req.Preferences.BookingSubType,
		TotalAmount:    pricing.Calculate(req.Preferences).Total,
		CreatedAt:      g.now().UTC(),
	}
	raw, err := json.Marshal(booking)
	if err != nil {
		return entities.Booking{}, err
	}
	booking.Raw = raw

	g.logger.Info("mock create booking", zap.String("booking_id", booking.ID))
	return booking, nil
}

func ensureIdempotencyKey(key string) string {
	if key = strings.TrimSpace(key); key != "" {
		return key
	}
	return uuid.NewString()
}

// remoteMessage extracts {"message": "..."} or {"error": "..."} from an error body,
// falling back to the raw text and then the HTTP status line.
func remoteMessage(body []byte, status string) string {
	var parsed struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(body, &parsed) == nil {
		if parsed.Message != "" {
			return parsed.Message
		}
		if parsed.Error != "" {
			return parsed.Error
		}
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	return status
}
