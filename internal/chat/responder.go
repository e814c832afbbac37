package chat

import "strings"

// Fallback is returned when the query names none of the known places.
const Fallback = "I can provide specific information about data center impacts in Virginia, Phoenix, or Chicago. Please ask about one of these locations."

// Place is one of the regions the responder has canned material for.
type Place string

const (
	PlaceVirginia Place = "virginia"
	PlacePhoenix  Place = "phoenix"
	PlaceChicago  Place = "chicago"
)

// places is scanned in order and every hit overwrites the previous one, so
// with several places in one query the last entry here wins.
var places = []Place{PlaceVirginia, PlacePhoenix, PlaceChicago}

var (
	environmentalKeywords = []string{"environment", "ecological", "climate"}
	socialKeywords        = []string{"social", "community", "justice"}
)

type impact struct {
	environmental string
	social        string
}

var impacts = map[Place]impact{
	PlaceVirginia: {environmental: virginiaEnvironmental, social: virginiaSocial},
	PlacePhoenix:  {environmental: phoenixEnvironmental, social: phoenixSocial},
	PlaceChicago:  {environmental: chicagoEnvironmental, social: chicagoSocial},
}

// Places returns the known places in scan order.
func Places() []Place {
	return append([]Place(nil), places...)
}

// Classification is the responder's reading of a query.
type Classification struct {
	Place         Place `json:"place,omitempty"`
	Environmental bool  `json:"environmental"`
	Social        bool  `json:"social"`
	Matched       bool  `json:"matched"`
}

// Classify lowercases query and detects the place and topic keywords by
// substring match.
func Classify(query string) Classification {
	q := strings.ToLower(query)

	var c Classification
	for _, p := range places {
		if strings.Contains(q, string(p)) {
			c.Place = p
			c.Matched = true
		}
	}
	c.Environmental = containsAny(q, environmentalKeywords)
	c.Social = containsAny(q, socialKeywords)
	return c
}

// GenerateResponse maps a query to canned impact text. It never fails: a
// query without a known place gets Fallback, and a query with a place but
// no topic keyword gets both blocks.
func GenerateResponse(query string) string {
	return respond(Classify(query))
}

func respond(c Classification) string {
	if !c.Matched {
		return Fallback
	}
	imp := impacts[c.Place]
	switch {
	case c.Environmental && !c.Social:
		return imp.environmental
	case c.Social && !c.Environmental:
		return imp.social
	default:
		return imp.environmental + "\n\n" + imp.social
	}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
