package worldbank

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
	"k8s.io/apimachinery/pkg/util/sets"
)

// Options holds query parameters for one call, e.g.
//
//	worldbank.Options{"page": "2", "per_page": "100"}
//
// Option names are validated against the options the endpoint recognizes
// before any request is made.
type Options map[string]string

type allowedOptions = sets.Set[string]

var (
	baseOptionSet = sets.New("page", "per_page", "date", "start", "end", "language", "format")
	// /countries accepts classification filters on top of the base options.
	countryOptionSet = baseOptionSet.Union(sets.New("incomeLevel", "lendingType", "region"))
)

// withDefault clones opts with key set, unless the caller already set it.
func withDefault(opts Options, key, value string) Options {
	merged := make(Options, len(opts)+1)
	for k, v := range opts {
		merged[k] = v
	}
	if _, ok := merged[key]; !ok {
		merged[key] = value
	}
	return merged
}

// buildURL serializes opts onto base+path. `format=json` is always appended
// last and supersedes any caller-supplied "format". A `start`+`end` pair with
// no explicit `date` collapses into the API's range idiom: a parameter whose
// *key* is "<start>:<end>" with no value at all.
func buildURL(base, path string, opts Options, allowed allowedOptions) (string, error) {
	merged := make(map[string]string, len(opts))
	for key, value := range opts {
		if !allowed.Has(key) {
			return "", fmt.Errorf("unrecognized option %q for %s", key, path)
		}
		merged[key] = value
	}
	delete(merged, "format")

	start, end := merged["start"], merged["end"]
	delete(merged, "start")
	delete(merged, "end")
	if start != "" && end != "" {
		if _, ok := merged["date"]; !ok {
			merged[start+":"+end] = ""
		}
	}

	keys := maps.Keys(merged)
	slices.Sort(keys)

	var pairs []string
	for _, key := range keys {
		if value := merged[key]; value == "" {
			pairs = append(pairs, escapeQuery(key))
		} else {
			pairs = append(pairs, escapeQuery(key)+"="+escapeQuery(value))
		}
	}
	pairs = append(pairs, "format=json")

	return base + path + "?" + strings.Join(pairs, "&"), nil
}

// escapeQuery percent-encodes one key or value. ':' stays literal, the
// range-key idiom depends on it and it is legal in a query component.
func escapeQuery(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "%3A", ":")
}
