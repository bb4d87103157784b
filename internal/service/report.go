package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"rentaldesk-backend/internal/domain"
	"rentaldesk-backend/internal/navotar"
	"rentaldesk-backend/internal/schema"
)

type reportService struct {
	api *navotar.Client
}

func NewReportService(api *navotar.Client) ReportService {
	return &reportService{api: api}
}

func (s *reportService) ListFolders(ctx context.Context) ([]domain.ReportFolder, error) {
	return s.api.ListReportFolders(ctx)
}

func (s *reportService) ListReports(ctx context.Context, folderID int32) ([]domain.Report, error) {
	return s.api.ListReports(ctx, folderID)
}

// ExportAgreements renders the filtered agreement list to an xlsx workbook
func (s *reportService) ExportAgreements(ctx context.Context, params schema.SearchParams) ([]byte, error) {
	agreements, _, err := s.api.ListAgreements(ctx, params.Page, params.Size, params.Filters)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Agreements"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{
		"AgreementNo", "Status", "Customer", "VehicleNo",
		"CheckoutDate", "CheckinDate", "CheckoutLocation", "CheckinLocation",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for i, a := range agreements {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), a.AgreementNumber)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), string(a.Status))
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), a.CustomerName)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), a.VehicleNo)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), a.CheckoutDate.Format("2006-01-02 15:04"))
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), a.CheckinDate.Format("2006-01-02 15:04"))
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), a.CheckoutLocation)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), a.CheckinLocation)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
