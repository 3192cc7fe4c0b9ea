package pass

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/phpdave11/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"

	"clubradar/internal/domain"
)

type Service struct {
	bookings BookingReader
	events   EventReader
	venues   VenueReader
}

func NewService(bookings BookingReader, events EventReader, venues VenueReader) *Service {
	return &Service{bookings: bookings, events: events, venues: venues}
}

type passData struct {
	Booking *domain.Booking
	Event   *domain.Event
	Venue   *domain.Venue
}

func (s *Service) load(ctx context.Context, userID, bookingID int64) (*passData, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrForbidden
	}
	if b.PaymentStatus != domain.PaymentCompleted || b.PassCode == "" {
		return nil, ErrNotIssued
	}

	e, err := s.events.GetByID(ctx, b.EventID)
	if err != nil {
		return nil, err
	}
	v, err := s.venues.GetByID(ctx, e.VenueID)
	if err != nil {
		return nil, err
	}
	return &passData{Booking: b, Event: e, Venue: v}, nil
}

// QRCode renders the pass code as a PNG for door scanners.
func (s *Service) QRCode(ctx context.Context, userID, bookingID int64) ([]byte, error) {
	d, err := s.load(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}
	return qrcode.Encode(d.Booking.PassCode, qrcode.Medium, 256)
}

// PDF renders a printable entry pass with the same QR embedded.
func (s *Service) PDF(ctx context.Context, userID, bookingID int64) ([]byte, string, error) {
	d, err := s.load(ctx, userID, bookingID)
	if err != nil {
		return nil, "", err
	}

	qrPNG, err := qrcode.Encode(d.Booking.PassCode, qrcode.Medium, 256)
	if err != nil {
		return nil, "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Entry Pass", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "CLUBRADAR ENTRY PASS")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Event   : %s", d.Event.Title),
		fmt.Sprintf("Venue   : %s, %s", d.Venue.Name, d.Venue.City),
		fmt.Sprintf("Starts  : %s", d.Event.StartsAt.Format("02 Jan 2006 15:04")),
		fmt.Sprintf("Amount  : %s", d.Booking.Amount.StringFixed(2)),
		fmt.Sprintf("Booking : #%d", d.Booking.ID),
	}
	for _, line := range lines {
		pdf.Cell(0, 8, line)
		pdf.Ln(8)
	}

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("pass-qr", opts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("pass-qr", 15, pdf.GetY()+6, 60, 60, false, opts, 0, "")

	pdf.SetY(pdf.GetY() + 72)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Pass code: %s", d.Booking.PassCode))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("pass-%d.pdf", d.Booking.ID)
	return buf.Bytes(), filename, nil
}
