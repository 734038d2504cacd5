package formatter

import (
	"fmt"
	"strings"

	"github.com/kintai-dev/kintai/internal/domain"
	"github.com/kintai-dev/kintai/internal/faceid"
)

// EmployeeTable renders the employee roster.
func EmployeeTable(employees []*domain.Employee) string {
	if len(employees) == 0 {
		return StyleDim.Render("no employees registered") + "\n"
	}

	headers := []string{"Code", "Name", "NFC", "Enrolled"}
	rows := make([][]string, 0, len(employees))
	for _, e := range employees {
		enrolled := StyleDim.Render("-")
		if e.Enrolled() {
			enrolled = StyleGreen.Render("yes")
		}
		rows = append(rows, []string{e.Code, e.Name, e.NfcID, enrolled})
	}
	return RenderTable(headers, rows)
}

// EmployeeDetail renders one employee's master record.
func EmployeeDetail(e *domain.Employee) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render(fmt.Sprintf("%s (%s)", e.Name, e.Code)))
	b.WriteString("\n")
	if e.Gender != "" {
		b.WriteString(fmt.Sprintf("Gender:   %s\n", e.Gender))
	}
	if e.Address != "" {
		b.WriteString(fmt.Sprintf("Address:  %s\n", e.Address))
	}
	if e.NfcID != "" {
		b.WriteString(fmt.Sprintf("NFC:      %s\n", e.NfcID))
	}
	if e.Enrolled() {
		dims := len(faceid.DecodeVector(e.FaceFeature))
		b.WriteString(StyleGreen.Render(fmt.Sprintf("Enrolled: %d-dimension feature vector", dims)))
	} else {
		b.WriteString(StyleDim.Render("Enrolled: no"))
	}
	b.WriteString("\n")
	if len(e.Photo) > 0 {
		b.WriteString(StyleDim.Render(fmt.Sprintf("Photo:    %d bytes", len(e.Photo))))
		b.WriteString("\n")
	}
	return b.String()
}
