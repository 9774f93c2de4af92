// wbsmoke exercises every resource type of the World Bank API once against
// the live service (or WORLDBANK_BASE_URL) and reports what came back.
// Intended as a wire-compatibility check, not a test suite.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	worldbank "github.com/wbdata/worldbank-go"
)

var (
	pass = color.New(color.FgGreen).SprintFunc()
	fail = color.New(color.FgRed, color.Bold).SprintFunc()
)

func report(resource string, count int, err error) {
	if err != nil {
		fmt.Printf("%s %-28s %v\n", fail("FAIL"), resource, err)
		os.Exit(1)
	}
	fmt.Printf("%s %-28s %d records\n", pass("ok"), resource, count)
}

func main() {
	_ = godotenv.Load()
	if base := os.Getenv("WORLDBANK_BASE_URL"); base != "" {
		worldbank.SetBaseURL(base)
	}

	small := worldbank.Options{"per_page": "5"}

	_, countries, err := worldbank.GetCountries(small)
	report("countries", len(countries), err)

	_, lendingTypes, err := worldbank.GetLendingTypes(nil)
	report("lendingTypes", len(lendingTypes), err)

	_, topics, err := worldbank.GetTopics(nil)
	report("topics", len(topics), err)

	_, sources, err := worldbank.GetSources(nil)
	report("sources", len(sources), err)

	_, incomeLevels, err := worldbank.GetIncomeLevels(nil)
	report("incomeLevels", len(incomeLevels), err)

	_, indicators, err := worldbank.GetIndicators(small)
	report("indicators", len(indicators), err)

	if len(incomeLevels) > 0 {
		_, byIncome, err := worldbank.CountriesByIncomeLevel(&incomeLevels[0], small)
		report("countries by incomeLevel", len(byIncome), err)
	}
	if len(lendingTypes) > 0 {
		_, byLending, err := worldbank.CountriesByLendingType(&lendingTypes[0], small)
		report("countries by lendingType", len(byLending), err)
	}
	if len(sources) > 0 {
		_, bySource, err := worldbank.IndicatorsBySource(&sources[0], small)
		report("indicators by source", len(bySource), err)
	}
	if len(topics) > 0 {
		_, byTopic, err := worldbank.IndicatorsByTopic(&topics[0], small)
		report("indicators by topic", len(byTopic), err)
	}
	if len(indicators) > 0 {
		_, series, err := indicators[0].Observations(nil, small)
		report("country indicators", len(series), err)
	}

	catalogs, err := worldbank.GetCatalogs("", nil, nil)
	report("datacatalog", len(catalogs), err)
}
