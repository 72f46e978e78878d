package domain

type Airport struct {
	IATACode    string `json:"iata"`
	Name        string `json:"name"`
	City        string `json:"city"`
	Country     string `json:"country"`
	CountryCode string `json:"countryCode"`
}
