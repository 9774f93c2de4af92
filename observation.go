package worldbank

import "encoding/json"

// CountryIndicator is one observation in a time series: the value of one
// indicator for one country in one year. Value is nil when the observation
// is missing, which is not the same as zero.
type CountryIndicator struct {
	Indicator       *Indicator
	Country         *Country
	CountryISO3Code string
	Year            string
	Value           *float64
	Decimal         int
	Unit            string
	ObsStatus       string
}

type observationWire struct {
	Indicator       ref             `json:"indicator"`
	Country         ref             `json:"country"`
	CountryISO3Code string          `json:"countryiso3code"`
	Date            string          `json:"date"`
	Value           json.RawMessage `json:"value"`
	Unit            string          `json:"unit"`
	ObsStatus       string          `json:"obs_status"`
	Decimal         flexInt         `json:"decimal"`
}

// mapCountryIndicator maps one observation. The payload only embeds an
// {id, value} indicator reference; resolve, when non-nil, turns that id into
// a full record (at the cost of an extra request unless memoized). With a
// nil resolve the reference maps to a sparse Indicator.
func mapCountryIndicator(raw json.RawMessage, resolve func(id string) (*Indicator, error)) (*CountryIndicator, error) {
	var w observationWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, &DecodeError{Err: err}
	}

	indicatorID, err := requireID("observation indicator", w.Indicator.ID)
	if err != nil {
		return nil, err
	}

	obs := &CountryIndicator{
		CountryISO3Code: w.CountryISO3Code,
		Year:            w.Date,
		Unit:            w.Unit,
		ObsStatus:       w.ObsStatus,
		Decimal:         int(w.Decimal),
	}

	if resolve != nil {
		if obs.Indicator, err = resolve(indicatorID); err != nil {
			return nil, err
		}
	} else {
		obs.Indicator = &Indicator{ID: indicatorID, Name: w.Indicator.Value}
	}

	// The raw country reference maps to a sparse record; callers holding
	// the originating Country overwrite it after construction.
	if w.Country.ID != nil {
		obs.Country = &Country{ID: *w.Country.ID, Name: w.Country.Value}
	}

	if obs.Value, err = optFloat("value", w.Value); err != nil {
		return nil, err
	}
	return obs, nil
}

func getObservations(indicatorID string, country *Country, opts Options,
	resolve func(id string) (*Indicator, error)) (Page, []CountryIndicator, error) {

	isoCode := "all"
	if country != nil {
		isoCode = country.ISOCode
		if isoCode == "" {
			isoCode = country.ID
		}
	}

	path := "/countries/" + isoCode + "/indicators/" + indicatorID
	page, items, err := fetchPaged(path, opts, baseOptionSet)
	if err != nil {
		return Page{}, nil, err
	}

	observations := make([]CountryIndicator, 0, len(items))
	for _, item := range items {
		obs, err := mapCountryIndicator(item, resolve)
		if err != nil {
			return Page{}, nil, err
		}
		if country != nil {
			obs.Country = country
		}
		observations = append(observations, *obs)
	}
	return page, observations, nil
}

// GetCountryIndicators fetches the time series of one indicator for one
// country (nil country means "all"). Each observation's indicator reference
// is resolved through the memoized [GetIndicator], so the whole call costs
// at most one extra request.
func GetCountryIndicators(indicatorID string, country *Country, opts Options) (Page, []CountryIndicator, error) {
	resolve := func(id string) (*Indicator, error) {
		return GetIndicator(id, nil)
	}
	return getObservations(indicatorID, country, opts, resolve)
}

// Observations fetches the same series for a caller that already holds the
// Indicator record; no resolution request is made.
func (ind *Indicator) Observations(country *Country, opts Options) (Page, []CountryIndicator, error) {
	page, observations, err := getObservations(ind.ID, country, opts, nil)
	if err != nil {
		return Page{}, nil, err
	}
	for i := range observations {
		observations[i].Indicator = ind
	}
	return page, observations, nil
}
