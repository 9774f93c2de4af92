package worldbank

import "encoding/json"

// Source is one of the databases the World Bank publishes indicators from
// (WDI, Doing Business, ...).
type Source struct {
	ID                   string
	Code                 string
	Name                 string
	Description          string
	URL                  string
	Concepts             string
	DataAvailability     string
	MetadataAvailability string
}

type sourceWire struct {
	ID                   *string `json:"id"`
	Code                 string  `json:"code"`
	Name                 string  `json:"name"`
	Value                string  `json:"value"`
	Description          string  `json:"description"`
	URL                  string  `json:"url"`
	Concepts             string  `json:"concepts"`
	DataAvailability     string  `json:"dataavailability"`
	MetadataAvailability string  `json:"metadataavailability"`
}

// mapSource handles both the full /sources record and the {id, value}
// reference embedded in indicators, which carries the name under "value".
func mapSource(raw json.RawMessage) (*Source, error) {
	var w sourceWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, &DecodeError{Err: err}
	}
	id, err := requireID("source", w.ID)
	if err != nil {
		return nil, err
	}
	name := w.Value
	if name == "" {
		name = w.Name
	}
	return &Source{
		ID:                   id,
		Code:                 w.Code,
		Name:                 name,
		Description:          w.Description,
		URL:                  w.URL,
		Concepts:             w.Concepts,
		DataAvailability:     w.DataAvailability,
		MetadataAvailability: w.MetadataAvailability,
	}, nil
}

// GetSources lists every data source.
func GetSources(opts Options) (Page, []Source, error) {
	page, items, err := fetchPaged("/sources", opts, baseOptionSet)
	if err != nil {
		return Page{}, nil, err
	}
	sources := make([]Source, 0, len(items))
	for _, item := range items {
		s, err := mapSource(item)
		if err != nil {
			return Page{}, nil, err
		}
		sources = append(sources, *s)
	}
	return page, sources, nil
}
