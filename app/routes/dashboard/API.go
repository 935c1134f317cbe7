package dashboard

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"student-risk-dashboard/app/data"
	"student-risk-dashboard/app/models"
	"student-risk-dashboard/app/risk"
)

// StudentRow is a ClassifiedRecord formatted for the table, carrying the
// per-cell color hints the page renders. Colors stay independent per field;
// a yellow fee cell can sit next to a red attendance cell.
type StudentRow struct {
	models.ClassifiedRecord
	AttendanceColor string `json:"attendance_color"`
	ScoreColor      string `json:"score_color"`
	FeeColor        string `json:"fee_color"`
}

func toRow(rec models.ClassifiedRecord) StudentRow {
	return StudentRow{
		ClassifiedRecord: rec,
		AttendanceColor:  models.CellColor(rec.AttendanceLevel),
		ScoreColor:       models.CellColor(rec.ScoreLevel),
		FeeColor:         models.FeeColor(rec.FeeFlag),
	}
}

// parseFilterSpec builds a FilterSpec from the request's query parameters.
// Absent parameters fall back to the identity spec, so a bare request
// returns the full row set.
func parseFilterSpec(c *fiber.Ctx) risk.FilterSpec {
	spec := risk.DefaultFilterSpec()
	spec.SearchText = c.Query("search")
	spec.AttendanceRange = risk.Range{
		Min: c.QueryFloat("attendance_min", 0),
		Max: c.QueryFloat("attendance_max", 100),
	}
	spec.ScoreRange = risk.Range{
		Min: c.QueryFloat("score_min", 0),
		Max: c.QueryFloat("score_max", 100),
	}
	spec.FeeRange = risk.Range{
		Min: c.QueryFloat("fees_min", 0),
		Max: c.QueryFloat("fees_max", math.Inf(1)),
	}
	if status := c.Query("status"); status != "" {
		spec.StatusFilter = models.StatusFilter(status)
	}
	if classes := c.Query("classes"); classes != "" {
		for _, cl := range strings.Split(classes, ",") {
			if cl = strings.TrimSpace(cl); cl != "" {
				spec.Classes = append(spec.Classes, cl)
			}
		}
	}
	return spec
}

// GetDashboardPage renders the dashboard page shell; the table and charts
// load through the JSON APIs below.
func GetDashboardPage(c *fiber.Ctx, store *data.Store) error {
	stats := risk.Summarize(store.Rows())
	return c.Render("dashboard/index", fiber.Map{
		"Title":       "Student Risk Dashboard",
		"CurrentPage": "dashboard",
		"Stats":       stats,
		"Classes":     store.Classes(),
	})
}

// GetTableAPI returns the filtered classified rows for the table.
func GetTableAPI(c *fiber.Ctx, store *data.Store) error {
	all := store.Rows()
	filtered := risk.Apply(all, parseFilterSpec(c))

	rows := make([]StudentRow, 0, len(filtered))
	for _, rec := range filtered {
		rows = append(rows, toRow(rec))
	}

	return c.JSON(fiber.Map{
		"students":    rows,
		"count":       len(rows),
		"total_count": len(all),
	})
}

// GetStatsAPI returns the header statistics over the full row set.
func GetStatsAPI(c *fiber.Ctx, store *data.Store) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    risk.Summarize(store.Rows()),
	})
}

// GetHistogramsAPI returns the attendance and score distributions of the
// currently filtered (not full) row set, plus the status breakdown.
func GetHistogramsAPI(c *fiber.Ctx, store *data.Store) error {
	filtered := risk.Apply(store.Rows(), parseFilterSpec(c))

	return c.JSON(fiber.Map{
		"attendance": risk.BuildHistogram("attendance_pct", risk.AttendanceSeries(filtered)),
		"scores":     risk.BuildHistogram("test_score", risk.ScoreSeries(filtered)),
		"status":     risk.CountStatus(filtered),
		"count":      len(filtered),
	})
}

// GetClassesAPI returns the distinct class labels for the filter dropdown.
func GetClassesAPI(c *fiber.Ctx, store *data.Store) error {
	classes := store.Classes()
	return c.JSON(fiber.Map{
		"classes": classes,
		"count":   len(classes),
	})
}

// GetStudentAPI returns a single classified record by student id.
func GetStudentAPI(c *fiber.Ctx, store *data.Store) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Student ID is required"})
	}

	rec, ok := store.Find(id)
	if !ok {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}
	return c.JSON(fiber.Map{"student": toRow(rec)})
}

// ExportAPI writes the currently filtered table as an xlsx workbook. The
// export is a read-only report; nothing about the records changes.
func ExportAPI(c *fiber.Ctx, store *data.Store) error {
	filtered := risk.Apply(store.Rows(), parseFilterSpec(c))

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Students"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build export", "details": err.Error()})
	}

	header := []interface{}{"Student ID", "Name", "Class", "Attendance %", "Avg Score", "Pending Fees", "Status"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build export", "details": err.Error()})
	}

	for i, rec := range filtered {
		cell := fmt.Sprintf("A%d", i+2)
		row := []interface{}{rec.ID, rec.Name, rec.Class, rec.AttendancePct, rec.TestScore, rec.PendingFees, statusLabel(rec.Status)}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to build export", "details": err.Error()})
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to write export", "details": err.Error()})
	}

	filename := fmt.Sprintf("students-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

func statusLabel(s models.Status) string {
	if s == models.StatusAtRisk {
		return "At Risk"
	}
	return "Safe"
}
