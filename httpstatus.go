package worldbank

var httpStatusMap = map[int]string{
	400: "Bad Request.\n" +
		"Malformed resource path or query parameter " +
		"(unknown indicator id, bad ISO code, bad date range).",
	404: "Invalid URL. The resource path does not exist on this API version",
	405: "Invalid HTTP method. All endpoints are GET only",
	415: "Unsupported media type. The API serves json/xml only",
	429: "Rate limit exceeded. The public API throttles per source IP",
	500: "Internal Server Error",
	502: "Bad Gateway",
	503: "Service Unavailable",
}
