package services

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"advocates/internal/domain"

	"github.com/phpdave11/gofpdf"
)

// ProfileDocService renders a printable profile sheet for one advocate.
type ProfileDocService struct {
	Advocates AdvocateService
}

// ProfileSheet generates the PDF and a download filename for an advocate.
func (s ProfileDocService) ProfileSheet(ctx context.Context, id int64) ([]byte, string, error) {
	a, err := s.Advocates.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	return buildProfilePDF(a)
}

func buildProfilePDF(a domain.Advocate) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Advocate Profile", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "ADVOCATE PROFILE")
	pdf.Ln(12)

	created := "-"
	if a.CreatedAt != nil {
		created = a.CreatedAt.Format("2006-01-02")
	}

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Name        : %s %s", a.FirstName, a.LastName),
		fmt.Sprintf("City        : %s", safe(a.City, "-")),
		fmt.Sprintf("Degree      : %s", safe(a.Degree, "-")),
		fmt.Sprintf("Experience  : %d years", a.YearsOfExperience),
		fmt.Sprintf("Phone       : %d", a.PhoneNumber),
		fmt.Sprintf("Member since: %s", created),
		fmt.Sprintf("Record ID   : #%d", a.ID),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Specialties:")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)
	if len(a.Specialties) == 0 {
		pdf.Cell(0, 7, "-")
		pdf.Ln(7)
	}
	for _, sp := range a.Specialties {
		pdf.Cell(0, 7, "- "+sp)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Generated "+time.Now().Format("2006-01-02 15:04")+". Directory data only; not a credential document.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ADVOCATE_%d_%s.pdf", a.ID, safeFilenamePart(a.FirstName+"_"+a.LastName))
	return buf.Bytes(), filename, nil
}

var filenameUnsafe = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

func safeFilenamePart(s string) string {
	s = filenameUnsafe.ReplaceAllString(strings.TrimSpace(s), "_")
	return strings.Trim(s, "_")
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
