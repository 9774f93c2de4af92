package worldbank

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapSource(t *testing.T) {
	t.Run("id round-trip", func(t *testing.T) {
		s, err := mapSource(json.RawMessage(`{
			"id": "2", "code": "WDI", "name": "World Development Indicators",
			"url": "", "dataavailability": "Y", "metadataavailability": "Y",
			"concepts": "3"
		}`))
		require.NoError(t, err)
		assert.Equal(t, "2", s.ID)
		assert.Equal(t, "WDI", s.Code)
		assert.Equal(t, "World Development Indicators", s.Name)
		assert.Equal(t, "Y", s.DataAvailability)
	})

	t.Run("embedded reference carries name under value", func(t *testing.T) {
		s, err := mapSource(json.RawMessage(`{"id": "2", "value": "World Development Indicators"}`))
		require.NoError(t, err)
		assert.Equal(t, "World Development Indicators", s.Name)
	})

	t.Run("missing id fails", func(t *testing.T) {
		_, err := mapSource(json.RawMessage(`{"name": "orphan"}`))
		var identityErr *IdentityMissingError
		require.ErrorAs(t, err, &identityErr)
	})
}

func TestMapCountry(t *testing.T) {
	t.Run("full record", func(t *testing.T) {
		c, err := mapCountry(json.RawMessage(`{
			"id": "USA", "iso2Code": "US", "name": "United States",
			"region": {"id": "NAC", "iso2code": "XU", "value": "North America"},
			"adminregion": {"id": "", "iso2code": "", "value": ""},
			"incomeLevel": {"id": "HIC", "iso2code": "XD", "value": "High income"},
			"lendingType": {"id": "LNX", "iso2code": "XX", "value": "Not classified"},
			"capitalCity": "Washington D.C.",
			"latitude": "38.8895", "longitude": "-77.032"
		}`))
		require.NoError(t, err)
		assert.Equal(t, "USA", c.ID)
		assert.Equal(t, "US", c.ISOCode)
		require.NotNil(t, c.Region)
		assert.Equal(t, "North America", c.Region.Name)
		require.NotNil(t, c.IncomeLevel)
		assert.Equal(t, "HIC", c.IncomeLevel.ID)
		require.NotNil(t, c.Capital)
		assert.Equal(t, "Washington D.C.", c.Capital.Name)
		require.NotNil(t, c.Capital.Latitude)
		assert.InDelta(t, 38.8895, *c.Capital.Latitude, 1e-9)

		// Present-but-empty is a valid record, not absence.
		require.NotNil(t, c.AdminRegion)
		assert.Equal(t, "", c.AdminRegion.ID)
	})

	t.Run("null incomeLevel maps to nil without failing", func(t *testing.T) {
		c, err := mapCountry(json.RawMessage(`{
			"id": "WLD", "iso2Code": "1W", "name": "World",
			"incomeLevel": null
		}`))
		require.NoError(t, err)
		assert.Nil(t, c.IncomeLevel)
		assert.Nil(t, c.Region)
		assert.Nil(t, c.LendingType)
		assert.Nil(t, c.Capital)
	})

	t.Run("nested object without id key fails", func(t *testing.T) {
		_, err := mapCountry(json.RawMessage(`{
			"id": "USA", "name": "United States",
			"region": {"value": "North America"}
		}`))
		var identityErr *IdentityMissingError
		require.ErrorAs(t, err, &identityErr)
	})

	t.Run("non-numeric coordinate is a data error", func(t *testing.T) {
		_, err := mapCountry(json.RawMessage(`{
			"id": "USA", "name": "United States",
			"capitalCity": "Washington D.C.", "latitude": "north-ish"
		}`))
		var formatErr *ValueFormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, "latitude", formatErr.Field)
	})

	t.Run("empty coordinate strings stay nil", func(t *testing.T) {
		c, err := mapCountry(json.RawMessage(`{
			"id": "EAS", "name": "East Asia & Pacific",
			"capitalCity": "", "latitude": "", "longitude": ""
		}`))
		require.NoError(t, err)
		assert.Nil(t, c.Capital)
	})
}

func TestMapIndicator(t *testing.T) {
	t.Run("placeholder topics skipped", func(t *testing.T) {
		ind, err := mapIndicator(json.RawMessage(`{
			"id": "SH.XPD.TOTL.ZS", "name": "Health expenditure",
			"source": {"id": "2", "value": "World Development Indicators"},
			"topics": [{}, {"id": "3", "value": "Health"}]
		}`))
		require.NoError(t, err)
		require.Len(t, ind.Topics, 1)
		assert.Equal(t, "3", ind.Topics[0].ID)
		assert.Equal(t, "Health", ind.Topics[0].Name)
	})

	t.Run("absent source stays nil", func(t *testing.T) {
		ind, err := mapIndicator(json.RawMessage(`{"id": "X", "name": "x"}`))
		require.NoError(t, err)
		assert.Nil(t, ind.Source)
		assert.Empty(t, ind.Topics)
	})

	t.Run("source without id fails", func(t *testing.T) {
		_, err := mapIndicator(json.RawMessage(`{
			"id": "X", "name": "x", "source": {"value": "nameless"}
		}`))
		var identityErr *IdentityMissingError
		require.ErrorAs(t, err, &identityErr)
	})
}

func TestMapCountryIndicator(t *testing.T) {
	raw := json.RawMessage(`{
		"indicator": {"id": "NY.GDP.MKTP.CD", "value": "GDP (current US$)"},
		"country": {"id": "US", "value": "United States"},
		"countryiso3code": "USA",
		"date": "2015",
		"value": 18036648000000,
		"unit": "",
		"obs_status": "",
		"decimal": 0
	}`)

	t.Run("without resolver the reference maps sparse", func(t *testing.T) {
		obs, err := mapCountryIndicator(raw, nil)
		require.NoError(t, err)
		assert.Equal(t, "NY.GDP.MKTP.CD", obs.Indicator.ID)
		assert.Equal(t, "GDP (current US$)", obs.Indicator.Name)
		assert.Equal(t, "USA", obs.CountryISO3Code)
		assert.Equal(t, "2015", obs.Year)
		require.NotNil(t, obs.Value)
		assert.InDelta(t, 1.8036648e13, *obs.Value, 1)
		require.NotNil(t, obs.Country)
		assert.Equal(t, "US", obs.Country.ID)
	})

	t.Run("resolver output is used", func(t *testing.T) {
		full := &Indicator{ID: "NY.GDP.MKTP.CD", Name: "GDP (current US$)", SourceNote: "note"}
		obs, err := mapCountryIndicator(raw, func(id string) (*Indicator, error) {
			assert.Equal(t, "NY.GDP.MKTP.CD", id)
			return full, nil
		})
		require.NoError(t, err)
		assert.Same(t, full, obs.Indicator)
	})

	t.Run("null value stays nil, not zero", func(t *testing.T) {
		obs, err := mapCountryIndicator(json.RawMessage(`{
			"indicator": {"id": "X"}, "country": {"id": "US"},
			"countryiso3code": "USA", "date": "2020", "value": null, "decimal": 0
		}`), nil)
		require.NoError(t, err)
		assert.Nil(t, obs.Value)
	})

	t.Run("missing indicator id fails", func(t *testing.T) {
		_, err := mapCountryIndicator(json.RawMessage(`{
			"indicator": {"value": "nameless"}, "date": "2020"
		}`), nil)
		var identityErr *IdentityMissingError
		require.ErrorAs(t, err, &identityErr)
	})

	t.Run("resolver errors propagate", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := mapCountryIndicator(raw, func(string) (*Indicator, error) {
			return nil, boom
		})
		assert.ErrorIs(t, err, boom)
	})
}

func TestMapCatalog(t *testing.T) {
	t.Run("ordered metatype fields with lookup", func(t *testing.T) {
		c, err := mapCatalog(json.RawMessage(`{
			"id": "3",
			"metatype": [
				{"id": "name", "value": "World Development Indicators"},
				{"id": "url", "value": "http://data.worldbank.org"},
				{"id": "type", "value": "Time series"}
			]
		}`))
		require.NoError(t, err)
		assert.Equal(t, "3", c.ID)
		require.Len(t, c.Fields, 3)
		assert.Equal(t, "name", c.Fields[0].ID)

		url, ok := c.Meta("url")
		require.True(t, ok)
		assert.Equal(t, "http://data.worldbank.org", url)

		_, ok = c.Meta("nope")
		assert.False(t, ok)
	})

	t.Run("metatype entry without id fails", func(t *testing.T) {
		_, err := mapCatalog(json.RawMessage(`{
			"id": "3", "metatype": [{"value": "orphan"}]
		}`))
		var identityErr *IdentityMissingError
		require.ErrorAs(t, err, &identityErr)
	})
}

func TestFlexInt(t *testing.T) {
	var w pageWire
	require.NoError(t, json.Unmarshal([]byte(`{"page":1,"pages":"7","per_page":"50","total":304}`), &w))
	assert.Equal(t, flexInt(1), w.Page)
	assert.Equal(t, flexInt(7), w.Pages)
	assert.Equal(t, flexInt(50), w.PerPage)
	assert.Equal(t, flexInt(304), w.Total)
}

func TestOptFloat(t *testing.T) {
	t.Run("number", func(t *testing.T) {
		v, err := optFloat("value", json.RawMessage(`1.5`))
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, 1.5, *v)
	})
	t.Run("numeric string", func(t *testing.T) {
		v, err := optFloat("value", json.RawMessage(`"-77.032"`))
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, -77.032, *v)
	})
	t.Run("null and absent", func(t *testing.T) {
		v, err := optFloat("value", json.RawMessage(`null`))
		require.NoError(t, err)
		assert.Nil(t, v)

		v, err = optFloat("value", nil)
		require.NoError(t, err)
		assert.Nil(t, v)
	})
	t.Run("non-numeric string", func(t *testing.T) {
		_, err := optFloat("value", json.RawMessage(`"a lot"`))
		var formatErr *ValueFormatError
		require.ErrorAs(t, err, &formatErr)
	})
}
