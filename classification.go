package worldbank

import "encoding/json"

// ========================= INCOME LEVEL =========================

// IncomeLevel is a World Bank income classification (HIC, LIC, ...).
type IncomeLevel struct {
	ID       string
	ISO2Code string
	Name     string
}

type classificationWire struct {
	ID       *string `json:"id"`
	ISO2Code string  `json:"iso2code"`
	Value    string  `json:"value"`
}

func mapIncomeLevel(raw json.RawMessage) (*IncomeLevel, error) {
	var w classificationWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, &DecodeError{Err: err}
	}
	id, err := requireID("income level", w.ID)
	if err != nil {
		return nil, err
	}
	return &IncomeLevel{ID: id, ISO2Code: w.ISO2Code, Name: w.Value}, nil
}

// GetIncomeLevels lists every income classification.
func GetIncomeLevels(opts Options) (Page, []IncomeLevel, error) {
	page, items, err := fetchPaged("/incomeLevels", opts, baseOptionSet)
	if err != nil {
		return Page{}, nil, err
	}
	levels := make([]IncomeLevel, 0, len(items))
	for _, item := range items {
		l, err := mapIncomeLevel(item)
		if err != nil {
			return Page{}, nil, err
		}
		levels = append(levels, *l)
	}
	return page, levels, nil
}

// ========================= LENDING TYPE =========================

// LendingType is a World Bank lending classification (IBRD, IDA, ...).
type LendingType struct {
	ID       string
	ISO2Code string
	Name     string
}

func mapLendingType(raw json.RawMessage) (*LendingType, error) {
	var w classificationWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, &DecodeError{Err: err}
	}
	id, err := requireID("lending type", w.ID)
	if err != nil {
		return nil, err
	}
	return &LendingType{ID: id, ISO2Code: w.ISO2Code, Name: w.Value}, nil
}

// GetLendingTypes lists every lending classification.
func GetLendingTypes(opts Options) (Page, []LendingType, error) {
	page, items, err := fetchPaged("/lendingTypes", opts, baseOptionSet)
	if err != nil {
		return Page{}, nil, err
	}
	types := make([]LendingType, 0, len(items))
	for _, item := range items {
		t, err := mapLendingType(item)
		if err != nil {
			return Page{}, nil, err
		}
		types = append(types, *t)
	}
	return page, types, nil
}
