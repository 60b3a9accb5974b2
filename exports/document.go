package exports

import (
	"bytes"
	"fmt"
	"strings"

	"next24/models"
	"next24/utils"

	"github.com/phpdave11/gofpdf"
)

// GenerateDocument renders the plain-text itinerary: a heading per day,
// then one numbered block per activity.
func GenerateDocument(it *models.Itinerary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", it.Title)
	fmt.Fprintf(&b, "Destination: %s\n", it.Destination)
	fmt.Fprintf(&b, "Dates: %s to %s\n\n", it.StartDate, it.EndDate)

	for i, day := range it.Days {
		fmt.Fprintf(&b, "Day %d - %s\n", i+1, day.Date)
		b.WriteString(strings.Repeat("=", 30) + "\n")

		if len(day.Activities) == 0 {
			b.WriteString("No activities planned\n\n")
		} else {
			for j, a := range day.Activities {
				fmt.Fprintf(&b, "%d. %s\n", j+1, a.Name)
				fmt.Fprintf(&b, "   %s\n", a.Description)
				fmt.Fprintf(&b, "   Location: %s\n", a.Location.Address)
				fmt.Fprintf(&b, "   Duration: %s\n", utils.FormatDuration(a.Duration))
				if a.Price != "" {
					fmt.Fprintf(&b, "   Price: %s\n", a.Price)
				}
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

// GeneratePDF renders the same document as a printable PDF.
func GeneratePDF(it *models.Itinerary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, it.Title)
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Destination: %s", it.Destination))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Dates: %s to %s", it.StartDate, it.EndDate))
	pdf.Ln(12)

	for i, day := range it.Days {
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 8, fmt.Sprintf("Day %d - %s", i+1, day.Date))
		pdf.Ln(9)

		pdf.SetFont("Arial", "", 11)
		if len(day.Activities) == 0 {
			pdf.Cell(0, 6, "No activities planned")
			pdf.Ln(8)
			continue
		}

		for j, a := range day.Activities {
			pdf.SetFont("Arial", "B", 11)
			pdf.Cell(0, 6, fmt.Sprintf("%d. %s", j+1, a.Name))
			pdf.Ln(6)

			pdf.SetFont("Arial", "", 10)
			pdf.MultiCell(0, 5, a.Description, "", "", false)
			pdf.Cell(0, 5, fmt.Sprintf("Location: %s", a.Location.Address))
			pdf.Ln(5)
			line := fmt.Sprintf("Duration: %s", utils.FormatDuration(a.Duration))
			if a.Price != "" {
				line += fmt.Sprintf("  Price: %s", a.Price)
			}
			pdf.Cell(0, 5, line)
			pdf.Ln(8)
		}
		pdf.Ln(2)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf generation failed: %w", err)
	}
	return buf.Bytes(), nil
}

// EmailSummary pairs the document body with a subject line.
type EmailSummary struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func GenerateEmail(it *models.Itinerary, to string) (EmailSummary, error) {
	if strings.TrimSpace(to) == "" {
		return EmailSummary{}, fmt.Errorf("email address is required")
	}
	if !utils.ValidateEmail(to) {
		return EmailSummary{}, fmt.Errorf("invalid email address")
	}
	return EmailSummary{
		To:      to,
		Subject: fmt.Sprintf("Your %s Itinerary", it.Title),
		Body:    GenerateDocument(it),
	}, nil
}
