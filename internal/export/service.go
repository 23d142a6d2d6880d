// Package export renders a persisted extraction session as a spreadsheet.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/hsuanlin/overtime-tracker/internal/entity"
	"github.com/hsuanlin/overtime-tracker/internal/store"
)

var headers = []string{
	"Employee Name",
	"Date",
	"Start Time",
	"End Time",
	"Reason",
	"Type",
	"Hours",
}

// Service produces XLSX or CSV bytes from a SessionRecord.
type Service struct {
	log *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{log: logger}
}

// ExportXLSX returns an XLSX workbook with one row per recognized entry.
func (s *Service) ExportXLSX(rec *store.SessionRecord) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Overtime"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	for row, e := range rec.RecognitionResults {
		values := []any{e.EmployeeName, e.Date, e.StartTime, e.EndTime, e.Reason, e.Type, e.Hours}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("write row %d: %w", row+1, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}

	s.log.Info("export.xlsx.ok", "entries", len(rec.RecognitionResults), "bytes", buf.Len())
	return buf.Bytes(), nil
}

// ExportCSV returns UTF-8 CSV with the same columns as the XLSX export.
func (s *Service) ExportCSV(rec *store.SessionRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(headers); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for _, e := range rec.RecognitionResults {
		row := csvRow(e)
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	s.log.Info("export.csv.ok", "entries", len(rec.RecognitionResults), "bytes", buf.Len())
	return buf.Bytes(), nil
}

func csvRow(e entity.OvertimeEntry) []string {
	return []string{
		e.EmployeeName,
		e.Date,
		e.StartTime,
		e.EndTime,
		e.Reason,
		e.Type,
		strconv.FormatFloat(e.Hours, 'f', -1, 64),
	}
}
