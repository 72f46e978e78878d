package airports

import "github.com/dzair-travel/skyflow/internal/domain"

// Directory returns the static airport corpus: Algerian airports plus the
// destinations the service sells. Order matters; it is the tie-break for
// search results and the "popular destinations" order for empty queries.
func Directory() []domain.Airport {
	return []domain.Airport{
		{IATACode: "ALG", Name: "Houari Boumediene Airport", City: "Algiers", Country: "Algeria", CountryCode: "DZ"},
		{IATACode: "ORN", Name: "Ahmed Ben Bella Airport", City: "Oran", Country: "Algeria", CountryCode: "DZ"},
		{IATACode: "CZL", Name: "Mohamed Boudiaf International Airport", City: "Constantine", Country: "Algeria", CountryCode: "DZ"},
		{IATACode: "AAE", Name: "Rabah Bitat Airport", City: "Annaba", Country: "Algeria", CountryCode: "DZ"},
		{IATACode: "TLM", Name: "Zenata Airport", City: "Tlemcen", Country: "Algeria", CountryCode: "DZ"},
		{IATACode: "BJA", Name: "Soummam Airport", City: "Bejaia", Country: "Algeria", CountryCode: "DZ"},
		{IATACode: "QSF", Name: "Ain Arnat Airport", City: "Setif", Country: "Algeria", CountryCode: "DZ"},
		{IATACode: "AZR", Name: "Touat-Cheikh Sidi Mohamed Belkebir Airport", City: "Adrar", Country: "Algeria", CountryCode: "DZ"},
		{IATACode: "TMR", Name: "Aguenar - Hadj Bey Akhamok Airport", City: "Tamanrasset", Country: "Algeria", CountryCode: "DZ"},
		{IATACode: "BMW", Name: "Bordj Badji Mokhtar Airport", City: "Bordj Badji Mokhtar", Country: "Algeria", CountryCode: "DZ"},
		{IATACode: "BSK", Name: "Biskra Airport", City: "Biskra", Country: "Algeria", CountryCode: "DZ"},
		{IATACode: "GJL", Name: "Jijel Ferhat Abbas Airport", City: "Jijel", Country: "Algeria", CountryCode: "DZ"},
		{IATACode: "VVZ", Name: "Illizi Takhamalt Airport", City: "Illizi", Country: "Algeria", CountryCode: "DZ"},
		{IATACode: "HRM", Name: "Hassi R'Mel Airport", City: "Hassi R'Mel", Country: "Algeria", CountryCode: "DZ"},
		{IATACode: "MZW", Name: "Mecheria Airport", City: "Mecheria", Country: "Algeria", CountryCode: "DZ"},
		{IATACode: "ELG", Name: "El Golea Airport", City: "El Golea", Country: "Algeria", CountryCode: "DZ"},
		{IATACode: "INZ", Name: "In Salah Airport", City: "In Salah", Country: "Algeria", CountryCode: "DZ"},
		{IATACode: "TID", Name: "Bou Chekif Airport", City: "Tiaret", Country: "Algeria", CountryCode: "DZ"},
		{IATACode: "GHA", Name: "Noumerate Airport", City: "Ghardaia", Country: "Algeria", CountryCode: "DZ"},
		{IATACode: "OGX", Name: "Ain el Beida Airport", City: "Ouargla", Country: "Algeria", CountryCode: "DZ"},
		{IATACode: "CDG", Name: "Charles de Gaulle Airport", City: "Paris", Country: "France", CountryCode: "FR"},
		{IATACode: "ORY", Name: "Orly Airport", City: "Paris", Country: "France", CountryCode: "FR"},
		{IATACode: "MRS", Name: "Marseille Provence Airport", City: "Marseille", Country: "France", CountryCode: "FR"},
		{IATACode: "LYS", Name: "Lyon-Saint Exupery Airport", City: "Lyon", Country: "France", CountryCode: "FR"},
		{IATACode: "NCE", Name: "Nice Cote d'Azur Airport", City: "Nice", Country: "France", CountryCode: "FR"},
		{IATACode: "DXB", Name: "Dubai International Airport", City: "Dubai", Country: "United Arab Emirates", CountryCode: "AE"},
		{IATACode: "AUH", Name: "Abu Dhabi International Airport", City: "Abu Dhabi", Country: "United Arab Emirates", CountryCode: "AE"},
		{IATACode: "IST", Name: "Istanbul Airport", City: "Istanbul", Country: "Turkey", CountryCode: "TR"},
		{IATACode: "SAW", Name: "Sabiha Gokcen International Airport", City: "Istanbul", Country: "Turkey", CountryCode: "TR"},
		{IATACode: "MAD", Name: "Adolfo Suarez Madrid-Barajas Airport", City: "Madrid", Country: "Spain", CountryCode: "ES"},
		{IATACode: "BCN", Name: "Barcelona-El Prat Airport", City: "Barcelona", Country: "Spain", CountryCode: "ES"},
		{IATACode: "LHR", Name: "Heathrow Airport", City: "London", Country: "United Kingdom", CountryCode: "GB"},
		{IATACode: "LGW", Name: "Gatwick Airport", City: "London", Country: "United Kingdom", CountryCode: "GB"},
		{IATACode: "FRA", Name: "Frankfurt Airport", City: "Frankfurt", Country: "Germany", CountryCode: "DE"},
		{IATACode: "MUC", Name: "Munich Airport", City: "Munich", Country: "Germany", CountryCode: "DE"},
		{IATACode: "FCO", Name: "Leonardo da Vinci-Fiumicino Airport", City: "Rome", Country: "Italy", CountryCode: "IT"},
		{IATACode: "MXP", Name: "Milan Malpensa Airport", City: "Milan", Country: "Italy", CountryCode: "IT"},
		{IATACode: "JFK", Name: "John F. Kennedy International Airport", City: "New York", Country: "United States", CountryCode: "US"},
		{IATACode: "LAX", Name: "Los Angeles International Airport", City: "Los Angeles", Country: "United States", CountryCode: "US"},
		{IATACode: "ORD", Name: "O'Hare International Airport", City: "Chicago", Country: "United States", CountryCode: "US"},
		{IATACode: "JED", Name: "King Abdulaziz International Airport", City: "Jeddah", Country: "Saudi Arabia", CountryCode: "SA"},
		{IATACode: "RUH", Name: "King Khalid International Airport", City: "Riyadh", Country: "Saudi Arabia", CountryCode: "SA"},
		{IATACode: "CAI", Name: "Cairo International Airport", City: "Cairo", Country: "Egypt", CountryCode: "EG"},
		{IATACode: "CMN", Name: "Mohammed V International Airport", City: "Casablanca", Country: "Morocco", CountryCode: "MA"},
		{IATACode: "RAK", Name: "Marrakesh Menara Airport", City: "Marrakesh", Country: "Morocco", CountryCode: "MA"},
		{IATACode: "TUN", Name: "Tunis-Carthage International Airport", City: "Tunis", Country: "Tunisia", CountryCode: "TN"},
	}
}
