package domain

// Airport is a candidate airport returned by a location lookup.
type Airport struct {
	IATACode    string `json:"iata_code"`
	Name        string `json:"name"`
	CityName    string `json:"city_name,omitempty"`
	CityCode    string `json:"city_code,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
	TimeZone    string `json:"time_zone,omitempty"`
}
