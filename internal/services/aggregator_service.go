package services

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/phpdave11/gofpdf"
	"github.com/pkg/errors"

	"tripway/internal/models/response_models"
)

type AggregatorServiceInterface interface {
	BudgetTotals(plan *response_models.TripPlan) *response_models.Budget
	WeatherFor(plan *response_models.TripPlan, date string) *response_models.WeatherEntry
	ExportText(plan *response_models.TripPlan) string
	ExportPDF(plan *response_models.TripPlan) ([]byte, error)
	ExportFileName(plan *response_models.TripPlan, format string) string
}

var mealTypeLabels = map[string]string{
	"breakfast": "早餐",
	"lunch":     "午餐",
	"dinner":    "晚餐",
	"snack":     "小吃",
}

type AggregatorService struct {
	// pdfFontPath points at a TTF with CJK coverage; without one the PDF
	// falls back to Helvetica and non-latin text degrades.
	pdfFontPath string
}

func NewAggregatorService(pdfFontPath string) AggregatorServiceInterface {
	return &AggregatorService{pdfFontPath: pdfFontPath}
}

// BudgetTotals hands back the planner-supplied budget unchanged. Totals are
// never recomputed from line items here; the planner is the source of truth
// for its own arithmetic.
func (a *AggregatorService) BudgetTotals(plan *response_models.TripPlan) *response_models.Budget {
	if plan == nil {
		return nil
	}
	return plan.Budget
}

// WeatherFor finds the weather entry whose date matches exactly. No
// interpolation; a missing date yields nil.
func (a *AggregatorService) WeatherFor(plan *response_models.TripPlan, date string) *response_models.WeatherEntry {
	if plan == nil {
		return nil
	}
	for i := range plan.WeatherInfo {
		if plan.WeatherInfo[i].Date == date {
			return &plan.WeatherInfo[i]
		}
	}
	return nil
}

// ExportText renders the plan as the plain-text document users download.
// The layout matches the file format the legacy exporter produced: optional
// fields absent from the plan are skipped outright, never placeholdered.
func (a *AggregatorService) ExportText(plan *response_models.TripPlan) string {
	rule := strings.Repeat("=", 50)
	var b strings.Builder

	fmt.Fprintf(&b, "%s旅行计划\n", plan.City)
	fmt.Fprintf(&b, "%s\n\n", rule)
	fmt.Fprintf(&b, "日期：%s 至 %s\n", plan.StartDate, plan.EndDate)
	fmt.Fprintf(&b, "天数：%d天\n\n", len(plan.Days))

	if plan.Budget != nil {
		fmt.Fprintf(&b, "预算总计：%s元\n", formatAmount(plan.Budget.Total))
		fmt.Fprintf(&b, "- 景点门票：%s元\n", formatAmount(plan.Budget.TotalAttractions))
		fmt.Fprintf(&b, "- 酒店住宿：%s元\n", formatAmount(plan.Budget.TotalHotels))
		fmt.Fprintf(&b, "- 餐饮费用：%s元\n", formatAmount(plan.Budget.TotalMeals))
		fmt.Fprintf(&b, "- 交通费用：%s元\n\n", formatAmount(plan.Budget.TotalTransportation))
	}

	for i, day := range plan.Days {
		fmt.Fprintf(&b, "\n%s\n", rule)
		fmt.Fprintf(&b, "第%d天 - %s\n", i+1, day.Date)
		fmt.Fprintf(&b, "%s\n\n", rule)
		fmt.Fprintf(&b, "%s\n\n", day.Description)

		if day.Hotel != nil {
			fmt.Fprintf(&b, "住宿：%s\n", day.Hotel.Name)
			fmt.Fprintf(&b, "地址：%s\n\n", day.Hotel.Address)
		}

		if len(day.Attractions) > 0 {
			b.WriteString("景点游览：\n")
			for j, attraction := range day.Attractions {
				fmt.Fprintf(&b, "%d. %s\n", j+1, attraction.Name)
				fmt.Fprintf(&b, "   地址：%s\n", attraction.Address)
				fmt.Fprintf(&b, "   游览时长：%d分钟\n", attraction.VisitDuration)
				if attraction.TicketPrice != nil {
					fmt.Fprintf(&b, "   门票：%s元\n", formatAmount(*attraction.TicketPrice))
				}
				fmt.Fprintf(&b, "   %s\n\n", attraction.Description)
			}
		}

		if len(day.Meals) > 0 {
			b.WriteString("餐饮推荐：\n")
			for _, meal := range day.Meals {
				label, ok := mealTypeLabels[meal.Type]
				if !ok {
					label = meal.Type
				}
				fmt.Fprintf(&b, "- %s：%s", label, meal.Name)
				if meal.EstimatedCost != nil {
					fmt.Fprintf(&b, " (约%s元)", formatAmount(*meal.EstimatedCost))
				}
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}
	}

	if plan.OverallSuggestions != "" {
		fmt.Fprintf(&b, "\n%s\n", rule)
		b.WriteString("旅行建议\n")
		fmt.Fprintf(&b, "%s\n\n", rule)
		fmt.Fprintf(&b, "%s\n", plan.OverallSuggestions)
	}

	return b.String()
}

// ExportPDF renders the same document with gofpdf.
func (a *AggregatorService) ExportPDF(plan *response_models.TripPlan) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(plan.City+"旅行计划", true)
	pdf.AddPage()

	family := "Helvetica"
	if a.pdfFontPath != "" {
		family = "plan"
		pdf.AddUTF8Font(family, "", a.pdfFontPath)
	}
	pdf.SetFont(family, "", 11)

	for _, line := range strings.Split(a.ExportText(plan), "\n") {
		pdf.MultiCell(0, 6, line, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "render plan pdf")
	}
	return buf.Bytes(), nil
}

// ExportFileName builds the download name the legacy exporter used:
// {city}旅行计划_{start_date}.{ext}.
func (a *AggregatorService) ExportFileName(plan *response_models.TripPlan, format string) string {
	ext := "txt"
	if format == "pdf" {
		ext = "pdf"
	}
	return fmt.Sprintf("%s旅行计划_%s.%s", plan.City, plan.StartDate, ext)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
