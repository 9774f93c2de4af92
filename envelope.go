package worldbank

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ========================= ENVELOPES =========================

// Page is the summary object the API prepends to every paged result.
type Page struct {
	Page    int
	Pages   int
	PerPage int
	Total   int
}

// Some endpoints emit summary counts as numbers, some as quoted strings
// ("per_page":"50"). flexInt accepts both.
type flexInt int

func (n *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		*n = 0
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*n = flexInt(v)
	return nil
}

type pageWire struct {
	Page    flexInt `json:"page"`
	Pages   flexInt `json:"pages"`
	PerPage flexInt `json:"per_page"`
	Total   flexInt `json:"total"`
}

type apiMessage struct {
	Message []struct {
		ID    string `json:"id"`
		Key   string `json:"key"`
		Value string `json:"value"`
	} `json:"message"`
}

// fetchPaged handles the [summary, data] envelope shape. A one-element array
// is the API's own error shape and comes back as a TransportError.
func fetchPaged(path string, opts Options, allowed allowedOptions) (Page, []json.RawMessage, error) {
	body, url, err := fetchJSON(path, opts, allowed)
	if err != nil {
		return Page{}, nil, err
	}

	var envelope []json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return Page{}, nil, &DecodeError{URL: url, Err: err}
	}

	if len(envelope) == 1 {
		var msg apiMessage
		if json.Unmarshal(envelope[0], &msg) == nil && len(msg.Message) > 0 {
			m := msg.Message[0]
			return Page{}, nil, &TransportError{
				URL: url,
				Err: fmt.Errorf("api message %s: %s: %s", m.ID, m.Key, m.Value),
			}
		}
	}
	if len(envelope) != 2 {
		return Page{}, nil, &DecodeError{
			URL: url,
			Err: fmt.Errorf("expected [summary, data] envelope, got %d elements", len(envelope)),
		}
	}

	var summary pageWire
	if err := json.Unmarshal(envelope[0], &summary); err != nil {
		return Page{}, nil, &DecodeError{URL: url, Err: err}
	}

	var items []json.RawMessage
	if !absent(envelope[1]) {
		if err := json.Unmarshal(envelope[1], &items); err != nil {
			return Page{}, nil, &DecodeError{URL: url, Err: err}
		}
	}

	page := Page{
		Page:    int(summary.Page),
		Pages:   int(summary.Pages),
		PerPage: int(summary.PerPage),
		Total:   int(summary.Total),
	}
	return page, items, nil
}

// fetchCatalog handles the {"datacatalog": [...]} envelope shape, which has
// no summary object.
func fetchCatalog(path string, opts Options) ([]json.RawMessage, error) {
	body, url, err := fetchJSON(path, opts, baseOptionSet)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Datacatalog []json.RawMessage `json:"datacatalog"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &DecodeError{URL: url, Err: err}
	}
	return envelope.Datacatalog, nil
}

// ========================= MAPPING HELPERS =========================

// ref is the {id, value} shape the API uses for embedded references.
type ref struct {
	ID    *string `json:"id"`
	Value string  `json:"value"`
}

func absent(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

// requireID enforces the identity invariant: the id key must be present and
// non-null. An empty string is a validly-empty record, not a missing one.
func requireID(entity string, id *string) (string, error) {
	if id == nil {
		return "", &IdentityMissingError{Entity: entity}
	}
	return *id, nil
}

// optFloat maps a numeric field that the API serves as a number, a numeric
// string, or null. Null and absent stay nil; a non-numeric string is a data
// error, never silently zero.
func optFloat(field string, raw json.RawMessage) (*float64, error) {
	if absent(raw) {
		return nil, nil
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return &n, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, &ValueFormatError{Field: field, Raw: string(raw)}
	}
	if s == "" {
		return nil, nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, &ValueFormatError{Field: field, Raw: s}
	}
	return &n, nil
}
