package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripway/internal/models/response_models"
)

func floatPtr(v float64) *float64 { return &v }

func exportablePlan() *response_models.TripPlan {
	return &response_models.TripPlan{
		City:      "北京",
		StartDate: "2026-05-01",
		EndDate:   "2026-05-02",
		Budget: &response_models.Budget{
			TotalAttractions:    200,
			TotalHotels:         600,
			TotalMeals:          300,
			TotalTransportation: 400,
			Total:               1500,
		},
		Days: []response_models.DayPlan{
			{
				DayIndex:    1,
				Date:        "2026-05-01",
				Description: "故宫与景山",
				Hotel: &response_models.Hotel{
					Name:    "如家快捷酒店",
					Address: "东城区某街1号",
				},
				Attractions: []response_models.Attraction{
					{
						Name:          "故宫博物院",
						Address:       "景山前街4号",
						Description:   "明清两代皇宫",
						VisitDuration: 180,
						TicketPrice:   floatPtr(60),
					},
					{
						Name:          "景山公园",
						Address:       "景山西街44号",
						Description:   "俯瞰紫禁城全景",
						VisitDuration: 90,
					},
				},
				Meals: []response_models.Meal{
					{Type: "breakfast", Name: "护国寺小吃", EstimatedCost: floatPtr(30)},
					{Type: "dinner", Name: "四季民福烤鸭"},
					{Type: "brunch", Name: "某咖啡馆"},
				},
			},
			{
				DayIndex:    2,
				Date:        "2026-05-02",
				Description: "颐和园",
			},
		},
		WeatherInfo: []response_models.WeatherEntry{
			{Date: "2026-05-01", DayWeather: "晴", NightWeather: "多云", DayTemp: "24", NightTemp: "13"},
			{Date: "2026-05-02", DayWeather: "小雨", NightWeather: "阴", DayTemp: "19", NightTemp: "12"},
		},
		OverallSuggestions: "五一期间景点人流大，请提前预约门票。",
	}
}

func TestBudgetTotalsPassThrough(t *testing.T) {
	svc := NewAggregatorService("")
	plan := exportablePlan()

	assert.Same(t, plan.Budget, svc.BudgetTotals(plan))
	assert.Nil(t, svc.BudgetTotals(nil))
	assert.Nil(t, svc.BudgetTotals(&response_models.TripPlan{}))
}

func TestWeatherForExactDateOnly(t *testing.T) {
	svc := NewAggregatorService("")
	plan := exportablePlan()

	entry := svc.WeatherFor(plan, "2026-05-02")
	require.NotNil(t, entry)
	assert.Equal(t, "小雨", entry.DayWeather)

	assert.Nil(t, svc.WeatherFor(plan, "2026-05-03"))
	assert.Nil(t, svc.WeatherFor(nil, "2026-05-01"))
}

func TestExportTextIsDeterministic(t *testing.T) {
	svc := NewAggregatorService("")
	plan := exportablePlan()

	first := svc.ExportText(plan)
	second := svc.ExportText(plan)

	assert.Equal(t, first, second)
}

func TestExportTextLayout(t *testing.T) {
	svc := NewAggregatorService("")
	text := svc.ExportText(exportablePlan())

	rule := strings.Repeat("=", 50)
	assert.True(t, strings.HasPrefix(text, "北京旅行计划\n"+rule+"\n"))

	assert.Contains(t, text, "日期：2026-05-01 至 2026-05-02\n")
	assert.Contains(t, text, "天数：2天\n")

	assert.Contains(t, text, "预算总计：1500元\n")
	assert.Contains(t, text, "- 景点门票：200元\n")
	assert.Contains(t, text, "- 酒店住宿：600元\n")
	assert.Contains(t, text, "- 餐饮费用：300元\n")
	assert.Contains(t, text, "- 交通费用：400元\n")

	assert.Contains(t, text, "第1天 - 2026-05-01\n")
	assert.Contains(t, text, "第2天 - 2026-05-02\n")
	assert.Contains(t, text, "住宿：如家快捷酒店\n")
	assert.Contains(t, text, "1. 故宫博物院\n")
	assert.Contains(t, text, "   游览时长：180分钟\n")
	assert.Contains(t, text, "   门票：60元\n")

	assert.Contains(t, text, "- 早餐：护国寺小吃 (约30元)\n")
	assert.Contains(t, text, "- 晚餐：四季民福烤鸭\n")
	// unrecognized meal types keep their wire value
	assert.Contains(t, text, "- brunch：某咖啡馆\n")

	assert.Contains(t, text, "旅行建议\n")
	assert.Contains(t, text, "五一期间景点人流大，请提前预约门票。\n")
}

func TestExportTextSkipsAbsentOptionalFields(t *testing.T) {
	svc := NewAggregatorService("")
	plan := exportablePlan()
	plan.Budget = nil
	plan.OverallSuggestions = ""

	text := svc.ExportText(plan)

	assert.NotContains(t, text, "预算总计")
	assert.NotContains(t, text, "旅行建议")
	// the unpriced attraction renders without a ticket line
	assert.Equal(t, 1, strings.Count(text, "门票："))
	// the day without hotel or attractions renders only its header and description
	assert.Equal(t, 1, strings.Count(text, "住宿："))
}

func TestExportFileName(t *testing.T) {
	svc := NewAggregatorService("")
	plan := exportablePlan()

	assert.Equal(t, "北京旅行计划_2026-05-01.txt", svc.ExportFileName(plan, "text"))
	assert.Equal(t, "北京旅行计划_2026-05-01.pdf", svc.ExportFileName(plan, "pdf"))
	assert.Equal(t, "北京旅行计划_2026-05-01.txt", svc.ExportFileName(plan, ""))
}

func TestExportPDFProducesDocument(t *testing.T) {
	svc := NewAggregatorService("")

	data, err := svc.ExportPDF(exportablePlan())

	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}
