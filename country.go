package worldbank

import (
	"encoding/json"
	"fmt"
)

// ========================= REGIONS =========================

// Region is a geographic grouping of countries.
type Region struct {
	ID   string
	Code string
	Name string
}

// AdminRegion shares Region's shape but is a distinct classification (the
// administrative regions the Bank operates in). The two are never
// substituted for one another, so no embedding.
type AdminRegion struct {
	ID   string
	Code string
	Name string
}

type regionWire struct {
	ID       *string `json:"id"`
	ISO2Code string  `json:"iso2code"`
	Value    string  `json:"value"`
}

func mapRegion(raw json.RawMessage) (*Region, error) {
	var w regionWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, &DecodeError{Err: err}
	}
	id, err := requireID("region", w.ID)
	if err != nil {
		return nil, err
	}
	return &Region{ID: id, Code: w.ISO2Code, Name: w.Value}, nil
}

func mapAdminRegion(raw json.RawMessage) (*AdminRegion, error) {
	var w regionWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, &DecodeError{Err: err}
	}
	id, err := requireID("admin region", w.ID)
	if err != nil {
		return nil, err
	}
	return &AdminRegion{ID: id, Code: w.ISO2Code, Name: w.Value}, nil
}

// ========================= COUNTRY =========================

// City is a capital city. Coordinates are nil when the API has none (common
// for aggregates).
type City struct {
	Name      string
	Latitude  *float64
	Longitude *float64
}

// Country is one country or aggregate. Every nested classification is
// independently optional: nil means the API omitted or nulled it, which is
// distinct from a present-but-empty record.
type Country struct {
	ID          string
	Name        string
	ISOCode     string
	Region      *Region
	AdminRegion *AdminRegion
	IncomeLevel *IncomeLevel
	LendingType *LendingType
	Capital     *City
}

type countryWire struct {
	ID          *string         `json:"id"`
	ISO2Code    string          `json:"iso2Code"`
	Name        string          `json:"name"`
	Region      json.RawMessage `json:"region"`
	AdminRegion json.RawMessage `json:"adminregion"`
	IncomeLevel json.RawMessage `json:"incomeLevel"`
	LendingType json.RawMessage `json:"lendingType"`
	CapitalCity string          `json:"capitalCity"`
	Latitude    json.RawMessage `json:"latitude"`
	Longitude   json.RawMessage `json:"longitude"`
}

func mapCountry(raw json.RawMessage) (*Country, error) {
	var w countryWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, &DecodeError{Err: err}
	}
	id, err := requireID("country", w.ID)
	if err != nil {
		return nil, err
	}

	c := &Country{ID: id, Name: w.Name, ISOCode: w.ISO2Code}

	if !absent(w.Region) {
		if c.Region, err = mapRegion(w.Region); err != nil {
			return nil, err
		}
	}
	if !absent(w.AdminRegion) {
		if c.AdminRegion, err = mapAdminRegion(w.AdminRegion); err != nil {
			return nil, err
		}
	}
	if !absent(w.IncomeLevel) {
		if c.IncomeLevel, err = mapIncomeLevel(w.IncomeLevel); err != nil {
			return nil, err
		}
	}
	if !absent(w.LendingType) {
		if c.LendingType, err = mapLendingType(w.LendingType); err != nil {
			return nil, err
		}
	}

	if w.CapitalCity != "" {
		capital := &City{Name: w.CapitalCity}
		if capital.Latitude, err = optFloat("latitude", w.Latitude); err != nil {
			return nil, err
		}
		if capital.Longitude, err = optFloat("longitude", w.Longitude); err != nil {
			return nil, err
		}
		c.Capital = capital
	}
	return c, nil
}

func getCountries(path string, opts Options) (Page, []Country, error) {
	page, items, err := fetchPaged(path, opts, countryOptionSet)
	if err != nil {
		return Page{}, nil, err
	}
	countries := make([]Country, 0, len(items))
	for _, item := range items {
		c, err := mapCountry(item)
		if err != nil {
			return Page{}, nil, err
		}
		countries = append(countries, *c)
	}
	return page, countries, nil
}

// GetCountries lists every country and aggregate.
func GetCountries(opts Options) (Page, []Country, error) {
	return getCountries("/countries", opts)
}

// GetCountry fetches one country by ISO code (2- or 3-letter).
func GetCountry(isoCode string, opts Options) (*Country, error) {
	_, countries, err := getCountries("/countries/"+isoCode, opts)
	if err != nil {
		return nil, err
	}
	if len(countries) == 0 {
		return nil, fmt.Errorf("no country for iso code %q", isoCode)
	}
	return &countries[0], nil
}

// CountriesByIncomeLevel lists the countries in one income classification.
// An explicit "incomeLevel" option wins over the passed record.
func CountriesByIncomeLevel(level *IncomeLevel, opts Options) (Page, []Country, error) {
	return getCountries("/countries", withDefault(opts, "incomeLevel", level.ID))
}

// CountriesByLendingType lists the countries in one lending classification.
// An explicit "lendingType" option wins over the passed record.
func CountriesByLendingType(lendingType *LendingType, opts Options) (Page, []Country, error) {
	return getCountries("/countries", withDefault(opts, "lendingType", lendingType.ID))
}
