package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"salon-agenda/internal/repository"
)

var ErrExportNoRows = errors.New("nothing to export for the requested period")

// ExportService renders admin reports as Excel (.xlsx) files.
//
// Files are returned as a bytes.Buffer; the handler sets the HTTP headers
// and streams the content.
type ExportService interface {
	ExportAppointments(ctx context.Context, professionalID, date string) (*bytes.Buffer, string, error)
	ExportTransactions(ctx context.Context, from, to string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates an ExportService instance.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) ExportAppointments(ctx context.Context, professionalID, date string) (*bytes.Buffer, string, error) {
	prof, err := s.repo.Professional.GetByID(ctx, professionalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrProfessionalNotFound
		}
		s.logger.Error("load professional failed", zap.Error(err))
		return nil, "", err
	}

	day, err := parseDay(date)
	if err != nil {
		return nil, "", err
	}

	appts, err := s.repo.Appointment.ListUpcomingByProfessional(ctx, professionalID, day)
	if err != nil {
		s.logger.Error("load appointments failed", zap.Error(err))
		return nil, "", err
	}
	if len(appts) == 0 {
		return nil, "", ErrExportNoRows
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Appointments"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheet, "A", "A", 12)
	f.SetColWidth(sheet, "B", "C", 8)
	f.SetColWidth(sheet, "D", "E", 24)
	f.SetColWidth(sheet, "F", "F", 12)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	f.SetCellValue(sheet, "A1", fmt.Sprintf("%s - agenda from %s", prof.Name, date))
	f.MergeCell(sheet, "A1", "F1")
	f.SetCellStyle(sheet, "A1", "A1", headerStyle)

	headers := []string{"Date", "Start", "End", "Client", "Service", "Status"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheet, fmt.Sprintf("%s2", col), h)
		f.SetCellStyle(sheet, fmt.Sprintf("%s2", col), fmt.Sprintf("%s2", col), headerStyle)
	}

	for i := range appts {
		a := &appts[i]
		row := i + 3
		clientName := a.UserID
		if a.User != nil {
			clientName = a.User.Name
		}
		serviceName := a.ServiceID
		if a.Service != nil {
			serviceName = a.Service.Name
		}
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), a.Date.Format("2006-01-02"))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), clockHHMM(a.StartTime))
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), clockHHMM(a.EndTime))
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), clientName)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), serviceName)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), a.Status)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("write excel failed", zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("appointments_%s_%s.xlsx", professionalID, date)
	return buf, filename, nil
}

func (s *exportService) ExportTransactions(ctx context.Context, from, to string) (*bytes.Buffer, string, error) {
	fromDay, toDay, err := parsePeriod(from, to)
	if err != nil {
		return nil, "", err
	}

	trs, _, err := s.repo.Transaction.List(ctx, repository.TransactionFilter{
		From:  fromDay,
		To:    toDay,
		Limit: 10000,
	})
	if err != nil {
		s.logger.Error("load transactions failed", zap.Error(err))
		return nil, "", err
	}
	if len(trs) == 0 {
		return nil, "", ErrExportNoRows
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Transactions"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheet, "A", "A", 12)
	f.SetColWidth(sheet, "B", "B", 10)
	f.SetColWidth(sheet, "C", "C", 12)
	f.SetColWidth(sheet, "D", "D", 40)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	headers := []string{"Date", "Type", "Amount", "Description"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheet, fmt.Sprintf("%s1", col), h)
		f.SetCellStyle(sheet, fmt.Sprintf("%s1", col), fmt.Sprintf("%s1", col), headerStyle)
	}

	var income, expense float64
	for i := range trs {
		t := &trs[i]
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), t.Date.Format("2006-01-02"))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), t.Type)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), t.Amount)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), t.Description)
		switch t.Type {
		case "income":
			income += t.Amount
		case "expense":
			expense += t.Amount
		}
	}

	totalRow := len(trs) + 3
	f.SetCellValue(sheet, fmt.Sprintf("A%d", totalRow), "Income")
	f.SetCellValue(sheet, fmt.Sprintf("C%d", totalRow), income)
	f.SetCellValue(sheet, fmt.Sprintf("A%d", totalRow+1), "Expense")
	f.SetCellValue(sheet, fmt.Sprintf("C%d", totalRow+1), expense)
	f.SetCellValue(sheet, fmt.Sprintf("A%d", totalRow+2), "Balance")
	f.SetCellValue(sheet, fmt.Sprintf("C%d", totalRow+2), income-expense)

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("write excel failed", zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("transactions_%s_%s.xlsx", from, to)
	return buf, filename, nil
}
