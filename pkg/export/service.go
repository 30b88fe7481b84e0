package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/vivwell/api/ent"
	entlead "github.com/vivwell/api/ent/lead"
)

const maxExportRows = 10000

var exportHeaders = []string{
	"ID", "First Name", "Last Name", "Email", "Phone", "Company",
	"Service Type", "Event Date", "Appointments", "Platform", "Status",
	"UTM Source", "UTM Medium", "UTM Campaign", "Referrer",
	"Lead Score", "Est. Value", "Created At",
}

// Service writes lead exports for the sales team.
type Service struct {
	db *ent.Client
}

// NewService creates a new export service
func NewService(db *ent.Client) *Service {
	return &Service{db: db}
}

// Filters narrows which leads end up in the export.
type Filters struct {
	Status   string
	Source   string
	MinScore int
}

func (s *Service) queryLeads(ctx context.Context, f Filters) ([]*ent.Lead, error) {
	query := s.db.Lead.Query()
	if f.Status != "" {
		query = query.Where(entlead.StatusEQ(entlead.Status(f.Status)))
	}
	if f.Source != "" {
		query = query.Where(entlead.UtmSourceEQ(f.Source))
	}
	if f.MinScore > 0 {
		query = query.Where(entlead.LeadScoreGTE(f.MinScore))
	}

	leads, err := query.
		Order(ent.Desc(entlead.FieldCreatedAt)).
		Limit(maxExportRows).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query leads: %w", err)
	}
	return leads, nil
}

// WriteCSV streams the filtered leads as CSV.
func (s *Service) WriteCSV(ctx context.Context, w io.Writer, f Filters) error {
	leads, err := s.queryLeads(ctx, f)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(exportHeaders); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, l := range leads {
		row := leadRow(l)
		cells := make([]string, len(row))
		for i, v := range row {
			switch val := v.(type) {
			case string:
				cells[i] = val
			case int:
				cells[i] = strconv.Itoa(val)
			case float64:
				cells[i] = fmt.Sprintf("%.2f", val)
			}
		}
		if err := writer.Write(cells); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	return nil
}

// WriteExcel streams the filtered leads as an XLSX workbook.
func (s *Service) WriteExcel(ctx context.Context, w io.Writer, f Filters) error {
	leads, err := s.queryLeads(ctx, f)
	if err != nil {
		return err
	}

	file := excelize.NewFile()
	defer file.Close()

	sheetName := "Leads"
	index, err := file.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	file.DeleteSheet("Sheet1")

	headerStyle, err := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		file.SetCellValue(sheetName, cell, header)
		file.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, l := range leads {
		for colIdx, v := range leadRow(l) {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			file.SetCellValue(sheetName, cell, v)
		}
	}

	for i := range exportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		file.SetColWidth(sheetName, col, col, 15)
	}

	file.SetActiveSheet(index)

	if err := file.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	return nil
}

func leadRow(l *ent.Lead) []interface{} {
	eventDate := ""
	if l.EventDate != nil {
		eventDate = l.EventDate.Format("2006-01-02")
	}
	return []interface{}{
		l.ID,
		l.FirstName,
		l.LastName,
		l.Email,
		l.Phone,
		l.Company,
		l.ServiceType,
		eventDate,
		l.AppointmentCount,
		string(l.Platform),
		string(l.Status),
		l.UtmSource,
		l.UtmMedium,
		l.UtmCampaign,
		l.Referrer,
		l.LeadScore,
		l.ConversionValue,
		l.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// ContentType returns the MIME type for a format.
func ContentType(format string) string {
	if format == "excel" {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv"
}

// Filename builds a download filename for a format.
func Filename(format, ts string) string {
	ext := "csv"
	if format == "excel" {
		ext = "xlsx"
	}
	return fmt.Sprintf("vivwell-leads-%s.%s", ts, ext)
}
