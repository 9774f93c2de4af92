package worldbank

import (
	"encoding/json"
	"net/url"
	"strings"
)

// MetaField is one metatype entry of a catalog record.
type MetaField struct {
	ID    string
	Value string
}

// Catalog describes one downloadable dataset in the data catalog. The
// catalog has no fixed schema; each record is its id plus an ordered list of
// metatype fields.
type Catalog struct {
	ID     string
	Fields []MetaField
}

// Meta looks up a metatype value by id ("name", "url", ...).
func (c *Catalog) Meta(id string) (string, bool) {
	for _, f := range c.Fields {
		if f.ID == id {
			return f.Value, true
		}
	}
	return "", false
}

type catalogWire struct {
	ID       *string `json:"id"`
	Metatype []ref   `json:"metatype"`
}

func mapCatalog(raw json.RawMessage) (*Catalog, error) {
	var w catalogWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, &DecodeError{Err: err}
	}
	id, err := requireID("catalog", w.ID)
	if err != nil {
		return nil, err
	}

	c := &Catalog{ID: id, Fields: make([]MetaField, 0, len(w.Metatype))}
	for _, m := range w.Metatype {
		fieldID, err := requireID("catalog metatype", m.ID)
		if err != nil {
			return nil, err
		}
		c.Fields = append(c.Fields, MetaField{ID: fieldID, Value: m.Value})
	}
	return c, nil
}

func getCatalogs(path string, opts Options) ([]Catalog, error) {
	items, err := fetchCatalog(path, opts)
	if err != nil {
		return nil, err
	}
	catalogs := make([]Catalog, 0, len(items))
	for _, item := range items {
		c, err := mapCatalog(item)
		if err != nil {
			return nil, err
		}
		catalogs = append(catalogs, *c)
	}
	return catalogs, nil
}

// GetCatalogs lists data catalog records. A non-empty catalogID narrows to
// one record; a non-empty fields list narrows the metatypes returned
// (joined with ';' per the API's path idiom).
func GetCatalogs(catalogID string, fields []string, opts Options) ([]Catalog, error) {
	path := "/datacatalog"
	if catalogID != "" {
		path += "/" + catalogID
	}
	if len(fields) > 0 {
		path += "/metatypes/" + strings.Join(fields, ";")
	}
	return getCatalogs(path, opts)
}

// SearchCatalogs runs a full-text search over the data catalog.
func SearchCatalogs(query string, opts Options) ([]Catalog, error) {
	return getCatalogs("/datacatalog/search/"+url.PathEscape(query), opts)
}
