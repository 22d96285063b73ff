package request_models

import (
	"strings"
	"time"

	"github.com/samber/lo"
)

const (
	TransportPublicTransit = "公共交通"
	TransportSelfDrive     = "自驾"
	TransportCharter       = "包车"
	TransportWalking       = "步行"

	AccommodationBudget   = "经济型酒店"
	AccommodationComfort  = "舒适型酒店"
	AccommodationLuxury   = "高档型酒店"
	AccommodationHomestay = "民宿"
	AccommodationHostel   = "青旅"
)

const (
	DateLayout = "2006-01-02"

	MinTravelDays = 1
	MaxTravelDays = 30
)

var (
	TransportationOptions = []string{TransportPublicTransit, TransportSelfDrive, TransportCharter, TransportWalking}
	AccommodationOptions  = []string{AccommodationBudget, AccommodationComfort, AccommodationLuxury, AccommodationHomestay, AccommodationHostel}
)

// TripRequest is the structured trip request the planner service consumes.
// Field names mirror the planner wire format.
type TripRequest struct {
	City           string   `json:"city"`
	StartDate      string   `json:"start_date"`
	EndDate        string   `json:"end_date"`
	TravelDays     int      `json:"travel_days"`
	Transportation string   `json:"transportation"`
	Accommodation  string   `json:"accommodation"`
	Preferences    []string `json:"preferences"`
	FreeTextInput  string   `json:"free_text_input,omitempty"`
}

// NewDraft returns an empty request carrying the form defaults.
func NewDraft() TripRequest {
	return TripRequest{
		TravelDays:     1,
		Transportation: TransportPublicTransit,
		Accommodation:  AccommodationBudget,
		Preferences:    []string{},
	}
}

// Violation names one violated constraint of a draft.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult is the set of violated constraints. Empty set = valid.
type ValidationResult []Violation

func (v ValidationResult) Valid() bool { return len(v) == 0 }

// Fields lists the violated field names in report order.
func (v ValidationResult) Fields() []string {
	return lo.Map(v, func(item Violation, _ int) string { return item.Field })
}

// Validate checks the draft against the client-side constraints: required
// fields, date order, day range and duplicate preferences. Whether the date
// span matches travel_days is left to the planner service.
func Validate(req TripRequest) ValidationResult {
	var result ValidationResult

	if strings.TrimSpace(req.City) == "" {
		result = append(result, Violation{Field: "city", Message: "目的地城市不能为空"})
	}

	start, startErr := time.Parse(DateLayout, req.StartDate)
	if req.StartDate == "" {
		result = append(result, Violation{Field: "start_date", Message: "请填写开始日期"})
	} else if startErr != nil {
		result = append(result, Violation{Field: "start_date", Message: "开始日期格式应为YYYY-MM-DD"})
	}

	end, endErr := time.Parse(DateLayout, req.EndDate)
	if req.EndDate == "" {
		result = append(result, Violation{Field: "end_date", Message: "请填写结束日期"})
	} else if endErr != nil {
		result = append(result, Violation{Field: "end_date", Message: "结束日期格式应为YYYY-MM-DD"})
	}

	if startErr == nil && endErr == nil && req.StartDate != "" && req.EndDate != "" && end.Before(start) {
		result = append(result, Violation{Field: "end_date", Message: "结束日期不能早于开始日期"})
	}

	if req.TravelDays < MinTravelDays || req.TravelDays > MaxTravelDays {
		result = append(result, Violation{Field: "travel_days", Message: "旅行天数应在1到30之间"})
	}

	if req.Transportation != "" && !lo.Contains(TransportationOptions, req.Transportation) {
		result = append(result, Violation{Field: "transportation", Message: "未知的交通方式"})
	}

	if req.Accommodation != "" && !lo.Contains(AccommodationOptions, req.Accommodation) {
		result = append(result, Violation{Field: "accommodation", Message: "未知的住宿类型"})
	}

	seen := make(map[string]bool, len(req.Preferences))
	for _, pref := range req.Preferences {
		if seen[pref] {
			result = append(result, Violation{Field: "preferences", Message: "偏好标签重复: " + pref})
			continue
		}
		seen[pref] = true
	}

	return result
}

// Complete reports whether the draft can be submitted as-is.
func Complete(req TripRequest) bool {
	return Validate(req).Valid()
}

// AddPreference trims text and appends it to the draft's preference list.
// Empty input and exact duplicates are no-ops; insertion order is preserved.
func AddPreference(req *TripRequest, text string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || lo.Contains(req.Preferences, trimmed) {
		return
	}
	req.Preferences = append(req.Preferences, trimmed)
}

// RemovePreference removes the first exact match from the preference list.
func RemovePreference(req *TripRequest, text string) {
	idx := lo.IndexOf(req.Preferences, text)
	if idx < 0 {
		return
	}
	req.Preferences = append(req.Preferences[:idx], req.Preferences[idx+1:]...)
}
