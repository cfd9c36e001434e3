package graphhopper

// apiResponse is the GraphHopper geocoding response. Reverse lookups
// return at most `limit` hits, closest first.
type apiResponse struct {
	Hits []apiHit `json:"hits"`
}

type apiHit struct {
	Name        string `json:"name"`
	Street      string `json:"street"`
	HouseNumber string `json:"housenumber"`
	City        string `json:"city"`
	State       string `json:"state"`
	Country     string `json:"country"`
	Postcode    string `json:"postcode"`
}

type apiError struct {
	Message string `json:"message"`
}
