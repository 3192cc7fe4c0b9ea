package payment

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"clubradar/internal/domain"
)

// Config carries the gateway credentials. Secret1 signs outbound
// requests, Secret2 verifies inbound callbacks, so a leaked payment
// URL never lets anyone forge a confirmation.
type Config struct {
	MerchantID string
	Secret1    string
	Secret2    string
	BaseURL    string
	CallbackURL string
}

func ConfigFromEnv() Config {
	return Config{
		MerchantID:  os.Getenv("GATEWAY_MERCHANT_ID"),
		Secret1:     os.Getenv("GATEWAY_SECRET1"),
		Secret2:     os.Getenv("GATEWAY_SECRET2"),
		BaseURL:     envOrDefault("GATEWAY_BASE_URL", "https://pay.example.com/checkout"),
		CallbackURL: os.Getenv("GATEWAY_CALLBACK_URL"),
	}
}

func envOrDefault(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

type Service struct {
	orders   OrderRepository
	bookings BookingReader
	confirm  BookingConfirmer
	loggerf  func(format string, args ...interface{})
	cfg      Config
}

func NewService(orders OrderRepository, bookings BookingReader, confirm BookingConfirmer, cfg Config, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{orders: orders, bookings: bookings, confirm: confirm, loggerf: loggerf, cfg: cfg}
}

func (s *Service) InitPayment(ctx context.Context, userID int64, req InitPaymentRequest) (*InitPaymentResponse, error) {
	if s.cfg.MerchantID == "" || s.cfg.Secret1 == "" || s.cfg.Secret2 == "" {
		return nil, fmt.Errorf("gateway credentials are not configured")
	}

	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("booking check failed: %w", err)
	}
	if b.UserID != userID || b.PaymentStatus != domain.PaymentPending {
		return nil, ErrNotPayable
	}

	reference := uuid.NewString()
	amount := b.Amount.StringFixed(2)
	signature := s.signInit(amount, reference)

	u := url.Values{}
	u.Set("merchant", s.cfg.MerchantID)
	u.Set("amount", amount)
	u.Set("reference", reference)
	u.Set("signature", signature)
	if s.cfg.CallbackURL != "" {
		u.Set("callback_url", s.cfg.CallbackURL)
	}
	paymentURL := s.cfg.BaseURL + "?" + u.Encode()

	o := &domain.PaymentOrder{
		BookingID: b.ID,
		Reference: reference,
		Amount:    b.Amount,
		Status:    domain.OrderCreated,
	}
	if err := s.orders.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("save payment order failed: %w", err)
	}

	return &InitPaymentResponse{
		Reference:  reference,
		PaymentURL: paymentURL,
		Amount:     amount,
		Signature:  signature,
		Status:     string(domain.OrderCreated),
	}, nil
}

// HandleCallback verifies the gateway's signature and amount before
// trusting the reported status. Replayed callbacks for an already
// settled order are acknowledged without side effects.
func (s *Service) HandleCallback(ctx context.Context, req CallbackRequest) (string, error) {
	if !strings.EqualFold(req.Signature, s.signCallback(req.Amount, req.Reference)) {
		s.loggerf("level=warn msg=gateway callback rejected reference=%s reason=invalid_signature", req.Reference)
		return "", ErrInvalidSignature
	}

	o, err := s.orders.GetByReference(ctx, req.Reference)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrOrderNotFound
		}
		return "", err
	}

	callbackAmount, err := decimal.NewFromString(strings.TrimSpace(req.Amount))
	if err != nil || !callbackAmount.Equal(o.Amount) {
		s.loggerf("level=error msg=amount mismatch reference=%s callback=%s expected=%s", req.Reference, req.Amount, o.Amount.StringFixed(2))
		_ = s.orders.UpdateStatus(ctx, o.ID, domain.OrderDeclined)
		return "", ErrAmountMismatch
	}

	if o.Status == domain.OrderPaid {
		s.loggerf("level=info msg=idempotent callback already paid reference=%s", req.Reference)
		return "OK" + req.Reference, nil
	}

	switch req.Status {
	case "paid":
		if err := s.orders.UpdateStatus(ctx, o.ID, domain.OrderPaid); err != nil {
			return "", err
		}
		if _, err := s.confirm.ConfirmPaid(ctx, o.BookingID); err != nil {
			s.loggerf("level=error msg=failed to confirm booking booking_id=%d err=%v", o.BookingID, err)
		}
	default:
		if err := s.orders.UpdateStatus(ctx, o.ID, domain.OrderFailed); err != nil {
			return "", err
		}
		if err := s.confirm.MarkFailed(ctx, o.BookingID); err != nil {
			s.loggerf("level=error msg=failed to mark booking failed booking_id=%d err=%v", o.BookingID, err)
		}
	}

	return "OK" + req.Reference, nil
}

func (s *Service) signInit(amount, reference string) string {
	return md5Hex(strings.Join([]string{s.cfg.MerchantID, amount, reference, s.cfg.Secret1}, ":"))
}

func (s *Service) signCallback(amount, reference string) string {
	return md5Hex(strings.Join([]string{amount, reference, s.cfg.Secret2}, ":"))
}

func md5Hex(s string) string {
	h := md5.Sum([]byte(s))
	return strings.ToUpper(hex.EncodeToString(h[:]))
}
