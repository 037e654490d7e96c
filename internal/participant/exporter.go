package participant

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/sharath018/event-registration-backend/internal/apperror"
)

// Roster export formats.
const (
	FormatCSV   = "csv"
	FormatExcel = "xlsx"
	FormatPDF   = "pdf"
)

const rosterTimeLayout = "2006-01-02 15:04:05"

var rosterHeaders = []string{"ID", "Name", "Email", "Phone", "Registration Date"}

// Export is a rendered roster file.
type Export struct {
	Data        []byte
	Filename    string
	ContentType string
}

// ExportRoster renders the participants of eventID in the requested format.
// An empty format means CSV.
func ExportRoster(eventID uint, format string, participants []Participant) (*Export, error) {
	timestamp := time.Now().Format("20060102_150405")
	base := fmt.Sprintf("event_%d_participants_%s", eventID, timestamp)

	switch normalizeFormat(format) {
	case FormatCSV:
		data, err := rosterCSV(participants)
		if err != nil {
			return nil, err
		}
		return &Export{Data: data, Filename: base + ".csv", ContentType: "text/csv"}, nil

	case FormatExcel:
		data, err := rosterExcel(participants)
		if err != nil {
			return nil, err
		}
		return &Export{
			Data:        data,
			Filename:    base + ".xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		}, nil

	case FormatPDF:
		data, err := rosterPDF(eventID, participants)
		if err != nil {
			return nil, err
		}
		return &Export{Data: data, Filename: base + ".pdf", ContentType: "application/pdf"}, nil

	default:
		return nil, apperror.NewValidation("format", "Must be one of: csv, xlsx, pdf.")
	}
}

func normalizeFormat(format string) string {
	switch f := strings.ToLower(strings.TrimSpace(format)); f {
	case "":
		return FormatCSV
	case "excel":
		return FormatExcel
	default:
		return f
	}
}

func rosterRow(p Participant) []string {
	phone := ""
	if p.Phone != nil {
		phone = *p.Phone
	}
	return []string{
		strconv.FormatUint(uint64(p.ID), 10),
		p.Name,
		p.Email,
		phone,
		p.RegistrationDate.UTC().Format(rosterTimeLayout),
	}
}

func rosterCSV(participants []Participant) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(rosterHeaders); err != nil {
		return nil, err
	}
	for _, p := range participants {
		if err := writer.Write(rosterRow(p)); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func rosterExcel(participants []Participant) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Participants"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(participants)+1)
	rows = append(rows, rosterHeaders)
	for _, p := range participants {
		rows = append(rows, rosterRow(p))
	}

	for r, values := range rows {
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func rosterPDF(eventID uint, participants []Participant) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Participants of event %d", eventID))
	pdf.Ln(20)

	widths := []float64{15, 60, 80, 40, 50}

	pdf.SetFont("Arial", "B", 10)
	for i, h := range rosterHeaders {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, p := range participants {
		for i, v := range rosterRow(p) {
			pdf.CellFormat(widths[i], 6, v, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
