package worldbank

import (
	"encoding/json"
	"fmt"

	gocache "github.com/patrickmn/go-cache"
)

// Indicator is a named statistical measure published by one source.
type Indicator struct {
	ID                 string
	Name               string
	Unit               string
	Source             *Source
	Topics             []Topic
	SourceNote         string
	SourceOrganization string
}

type indicatorWire struct {
	ID                 *string           `json:"id"`
	Name               string            `json:"name"`
	Unit               string            `json:"unit"`
	Source             json.RawMessage   `json:"source"`
	SourceNote         string            `json:"sourceNote"`
	SourceOrganization string            `json:"sourceOrganization"`
	Topics             []json.RawMessage `json:"topics"`
}

func mapIndicator(raw json.RawMessage) (*Indicator, error) {
	var w indicatorWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, &DecodeError{Err: err}
	}
	id, err := requireID("indicator", w.ID)
	if err != nil {
		return nil, err
	}

	ind := &Indicator{
		ID:                 id,
		Name:               w.Name,
		Unit:               w.Unit,
		SourceNote:         w.SourceNote,
		SourceOrganization: w.SourceOrganization,
	}
	if !absent(w.Source) {
		if ind.Source, err = mapSource(w.Source); err != nil {
			return nil, err
		}
	}

	// The API occasionally pads the topic list with empty placeholder
	// objects. Entries without an id key are skipped, everything else maps.
	for _, rawTopic := range w.Topics {
		var probe struct {
			ID *string `json:"id"`
		}
		if err := json.Unmarshal(rawTopic, &probe); err != nil {
			return nil, &DecodeError{Err: err}
		}
		if probe.ID == nil {
			continue
		}
		t, err := mapTopic(rawTopic)
		if err != nil {
			return nil, err
		}
		ind.Topics = append(ind.Topics, *t)
	}
	return ind, nil
}

func getIndicators(path string, opts Options, allowed allowedOptions) (Page, []Indicator, error) {
	page, items, err := fetchPaged(path, opts, allowed)
	if err != nil {
		return Page{}, nil, err
	}
	indicators := make([]Indicator, 0, len(items))
	for _, item := range items {
		ind, err := mapIndicator(item)
		if err != nil {
			return Page{}, nil, err
		}
		indicators = append(indicators, *ind)
	}
	return page, indicators, nil
}

type memoizedIndicators struct {
	page Page
	list []Indicator
}

// GetIndicators lists the full indicator catalog. Results are memoized per
// argument tuple for the lifetime of the process (see [SetIndicatorCache]).
func GetIndicators(opts Options) (Page, []Indicator, error) {
	key := cacheKey("/indicators", opts)
	store := getIndicatorCache()
	if store != nil {
		if hit, ok := store.Get(key); ok {
			memo := hit.(memoizedIndicators)
			return memo.page, memo.list, nil
		}
	}

	page, indicators, err := getIndicators("/indicators", opts, baseOptionSet)
	if err != nil {
		return Page{}, nil, err
	}
	if store != nil {
		store.Set(key, memoizedIndicators{page: page, list: indicators}, gocache.NoExpiration)
	}
	return page, indicators, nil
}

// GetIndicator fetches one indicator by id, e.g. "NY.GDP.MKTP.CD". Results
// are memoized per argument tuple for the lifetime of the process.
func GetIndicator(indicatorID string, opts Options) (*Indicator, error) {
	key := cacheKey("/indicators/"+indicatorID, opts)
	store := getIndicatorCache()
	if store != nil {
		if hit, ok := store.Get(key); ok {
			ind := hit.(Indicator)
			return &ind, nil
		}
	}

	_, indicators, err := getIndicators("/indicators/"+indicatorID, opts, baseOptionSet)
	if err != nil {
		return nil, err
	}
	if len(indicators) == 0 {
		return nil, fmt.Errorf("no indicator %q", indicatorID)
	}
	if store != nil {
		store.Set(key, indicators[0], gocache.NoExpiration)
	}
	return &indicators[0], nil
}

// IndicatorsBySource lists the indicators published by one source.
func IndicatorsBySource(source *Source, opts Options) (Page, []Indicator, error) {
	return getIndicators("/source/"+source.ID+"/indicator", opts, baseOptionSet)
}

// IndicatorsByTopic lists the indicators under one topic.
func IndicatorsByTopic(topic *Topic, opts Options) (Page, []Indicator, error) {
	return getIndicators("/topic/"+topic.ID+"/indicator", opts, baseOptionSet)
}
