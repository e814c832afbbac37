package dataset

// Location is one data-center site. Records are identified by their index
// in the loaded slice; nothing enforces uniqueness.
type Location struct {
	Company   string  `json:"company"`
	Site      string  `json:"site"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Tooltips holds the three narrative fields for a city.
type Tooltips struct {
	Environmental string `json:"environmental"`
	Policy        string `json:"policy"`
	Community     string `json:"community"`
}

// Commentary is the per-city narrative record.
type Commentary struct {
	City     string   `json:"city"`
	Tooltips Tooltips `json:"tooltips"`
}

// Dataset is the resident data after a successful load. It is written once
// and only read afterwards.
type Dataset struct {
	Locations  []Location
	Commentary []Commentary
	Lookup     Lookup
	Companies  []string
}
