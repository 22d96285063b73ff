package request_models

// PartialTripRequest carries the fields the parser managed to extract from a
// free-text turn. Pointer fields distinguish "absent" from zero values; the
// parser never invents values for fields it could not resolve.
type PartialTripRequest struct {
	City           *string  `json:"city,omitempty"`
	StartDate      *string  `json:"start_date,omitempty"`
	EndDate        *string  `json:"end_date,omitempty"`
	TravelDays     *int     `json:"travel_days,omitempty"`
	Transportation *string  `json:"transportation,omitempty"`
	Accommodation  *string  `json:"accommodation,omitempty"`
	Preferences    []string `json:"preferences,omitempty"`
	FreeTextInput  *string  `json:"free_text_input,omitempty"`
}

func (p *PartialTripRequest) HasCity() bool           { return p != nil && p.City != nil }
func (p *PartialTripRequest) HasStartDate() bool      { return p != nil && p.StartDate != nil }
func (p *PartialTripRequest) HasEndDate() bool        { return p != nil && p.EndDate != nil }
func (p *PartialTripRequest) HasTravelDays() bool     { return p != nil && p.TravelDays != nil }
func (p *PartialTripRequest) HasTransportation() bool { return p != nil && p.Transportation != nil }
func (p *PartialTripRequest) HasAccommodation() bool  { return p != nil && p.Accommodation != nil }
func (p *PartialTripRequest) HasPreferences() bool    { return p != nil && len(p.Preferences) > 0 }

// Empty reports whether nothing at all was extracted.
func (p *PartialTripRequest) Empty() bool {
	if p == nil {
		return true
	}
	return !p.HasCity() && !p.HasStartDate() && !p.HasEndDate() && !p.HasTravelDays() &&
		!p.HasTransportation() && !p.HasAccommodation() && !p.HasPreferences() &&
		p.FreeTextInput == nil
}

// ApplyTo copies every present field onto the draft. Used to pre-fill the
// form view with whatever the parser already understood.
func (p *PartialTripRequest) ApplyTo(draft *TripRequest) {
	if p == nil || draft == nil {
		return
	}
	if p.City != nil {
		draft.City = *p.City
	}
	if p.StartDate != nil {
		draft.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		draft.EndDate = *p.EndDate
	}
	if p.TravelDays != nil {
		draft.TravelDays = *p.TravelDays
	}
	if p.Transportation != nil {
		draft.Transportation = *p.Transportation
	}
	if p.Accommodation != nil {
		draft.Accommodation = *p.Accommodation
	}
	if len(p.Preferences) > 0 {
		for _, pref := range p.Preferences {
			AddPreference(draft, pref)
		}
	}
	if p.FreeTextInput != nil {
		draft.FreeTextInput = *p.FreeTextInput
	}
}
