package feed

// Response matches the JSON shape of one country's forecast feed payload.
//
// Example:
//
//	{
//	  "country_code": "SE",
//	  "regions": [ ... ]
//	}
type Response struct {
	CountryCode string   `json:"country_code"`
	Regions     []Region `json:"regions"`
}

// Region is one pricing zone's raw day list.
type Region struct {
	Name     string `json:"name"`
	Currency string `json:"currency"` // ISO 4217 code or symbol, passed through verbatim
	Days     []Day  `json:"days"`
}

// Day is one raw day of hour/price pairs.
//
// Date uses the feed's compact numeric format (yyyyMMdd). LeadingOffset, when
// set, is the number of leading hours missing from a partial first day. Both
// are strings on the wire; the normalizer parses and validates them.
type Day struct {
	Date          string `json:"date"`
	Hours         []Hour `json:"hours"`
	LeadingOffset string `json:"leading_offset,omitempty"`
}

// Hour is one raw hourly point. Price may use either "," or "." as the
// decimal separator depending on the feed variant.
type Hour struct {
	Hour  string `json:"local_hour"`
	Price string `json:"local_price"`
}
