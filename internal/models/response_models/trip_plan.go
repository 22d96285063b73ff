package response_models

// Attraction, Meal, Hotel, WeatherEntry and DayPlan mirror the planner wire
// format one-to-one. A TripPlan is read-only once received; nothing in this
// service mutates it after decoding.

type Attraction struct {
	Name          string   `json:"name"`
	Address       string   `json:"address"`
	Category      string   `json:"category,omitempty"`
	Description   string   `json:"description"`
	VisitDuration int      `json:"visit_duration"` // minutes
	TicketPrice   *float64 `json:"ticket_price,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
	ImageURL      string   `json:"image_url,omitempty"`
	Photos        []string `json:"photos,omitempty"`
}

type Meal struct {
	Type          string   `json:"type"` // breakfast / lunch / dinner / snack
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	Address       string   `json:"address,omitempty"`
	EstimatedCost *float64 `json:"estimated_cost,omitempty"`
	Photos        []string `json:"photos,omitempty"`
}

type Hotel struct {
	Name          string   `json:"name"`
	Address       string   `json:"address"`
	Type          string   `json:"type,omitempty"`
	PriceRange    string   `json:"price_range,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
	EstimatedCost *float64 `json:"estimated_cost,omitempty"`
	Distance      string   `json:"distance,omitempty"`
}

type WeatherEntry struct {
	Date          string `json:"date"`
	DayWeather    string `json:"day_weather"`
	NightWeather  string `json:"night_weather"`
	DayTemp       string `json:"day_temp"`
	NightTemp     string `json:"night_temp"`
	WindDirection string `json:"wind_direction,omitempty"`
	WindPower     string `json:"wind_power,omitempty"`
}

type DayPlan struct {
	DayIndex       int          `json:"day_index"`
	Date           string       `json:"date"`
	Description    string       `json:"description"`
	Attractions    []Attraction `json:"attractions"`
	Meals          []Meal       `json:"meals"`
	Hotel          *Hotel       `json:"hotel,omitempty"`
	Transportation string       `json:"transportation,omitempty"`
}

// Budget carries the planner's own totals. They are presented as-is, never
// recomputed from line items; the planner stays the source of truth.
type Budget struct {
	TotalAttractions     float64 `json:"total_attractions"`
	TotalHotels          float64 `json:"total_hotels"`
	TotalMeals           float64 `json:"total_meals"`
	TotalTransportation  float64 `json:"total_transportation"`
	Total                float64 `json:"total"`
}

type TripPlan struct {
	City               string         `json:"city"`
	StartDate          string         `json:"start_date"`
	EndDate            string         `json:"end_date"`
	Days               []DayPlan      `json:"days"`
	Budget             *Budget        `json:"budget,omitempty"`
	WeatherInfo        []WeatherEntry `json:"weather_info"`
	OverallSuggestions string         `json:"overall_suggestions,omitempty"`
}
