// worldbank: a client for the [World Bank Open Data API].
//
// Every resource type of the v2 API has a query function returning typed
// records:
//   - Reference data: [GetSources], [GetIncomeLevels], [GetLendingTypes], [GetTopics]
//   - Indicators: [GetIndicators], [GetIndicator], [IndicatorsBySource], [IndicatorsByTopic]
//   - Countries: [GetCountries], [GetCountry], [CountriesByIncomeLevel], [CountriesByLendingType]
//   - Time series: [GetCountryIndicators], [Indicator.Observations]
//   - Data catalog: [GetCatalogs], [SearchCatalogs]
//
// Instructions:
//
//  1. [optional] Point the client at a different host with [SetBaseURL]
//     (defaults to https://api.worldbank.org/v2).
//
//  2. [optional] Attach headers to every request with [SetHeaders].
//
//  3. Build an [Options] map for paging and filters ("page", "per_page",
//     "date", "start"/"end", ...). Option names are validated before the
//     request goes out, reducing bad API calls.
//
//  4. Call the query function. Paged endpoints also return a [Page] summary.
//
// All calls are synchronous and blocking; the only cached lookups are the
// indicator ones (see [SetIndicatorCache]).
//
// [World Bank Open Data API]: https://datahelpdesk.worldbank.org/knowledgebase/topics/125589
package worldbank
