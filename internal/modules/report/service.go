package report

import (
	"bytes"
	"context"

	"github.com/xuri/excelize/v2"

	"clubradar/internal/domain"
	"clubradar/internal/modules/payout"
)

// PayoutSource is satisfied by the payout service. The report reads
// through it so both surfaces apply the same filters.
type PayoutSource interface {
	ListPayouts(ctx context.Context, f payout.ListFilter) (*payout.PayoutPage, error)
}

type Service struct {
	payouts PayoutSource
}

func NewService(payouts PayoutSource) *Service {
	return &Service{payouts: payouts}
}

// exportPageSize keeps each fetch bounded while the export walks every page.
const exportPageSize = 100

// PayoutsXLSX renders all payouts matching the filter into a workbook.
func (s *Service) PayoutsXLSX(ctx context.Context, status string, venueID *int64) ([]byte, string, error) {
	f := excelize.NewFile()
	sheetName := "Payouts"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", err
	}
	_ = f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headers := []string{
		"ID", "Venue ID", "Period Start", "Period End",
		"Total Revenue", "Bookings", "Commission Rate %", "Commission", "Net Amount",
		"Status", "Transaction ID", "Processed By", "Processed At",
		"Account Number", "IFSC", "Account Holder",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, "", err
		}
	}

	rowIndex := 2
	page := 1
	for {
		result, err := s.payouts.ListPayouts(ctx, payout.ListFilter{
			Status:  status,
			VenueID: venueID,
			Page:    page,
			Limit:   exportPageSize,
		})
		if err != nil {
			return nil, "", err
		}

		for i := range result.Payouts {
			writePayoutRow(f, sheetName, rowIndex, &result.Payouts[i])
			rowIndex++
		}

		if page >= result.TotalPages || len(result.Payouts) == 0 {
			break
		}
		page++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), "payouts.xlsx", nil
}

func writePayoutRow(f *excelize.File, sheet string, row int, p *domain.Payout) {
	set := func(col int, value interface{}) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, value)
	}

	set(1, p.ID)
	set(2, p.VenueID)
	set(3, p.PeriodStartDate.Format("2006-01-02"))
	set(4, p.PeriodEndDate.Format("2006-01-02"))
	set(5, p.TotalRevenue.StringFixed(2))
	set(6, p.BookingCount)
	set(7, p.CommissionRate.StringFixed(2))
	set(8, p.CommissionAmount.StringFixed(2))
	set(9, p.NetAmount.StringFixed(2))
	set(10, string(p.Status))
	if p.TransactionID != nil {
		set(11, *p.TransactionID)
	}
	if p.ProcessedBy != nil {
		set(12, *p.ProcessedBy)
	}
	if p.ProcessedAt != nil {
		set(13, p.ProcessedAt.Format("2006-01-02 15:04:05"))
	}
	set(14, p.BankAccountNumber)
	set(15, p.IFSCCode)
	set(16, p.AccountHolderName)
}
