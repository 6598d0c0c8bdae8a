package chemicals

import (
	"fmt"
	"math"

	"github.com/roach88/chemref/internal/resolve"
)

// Listing codes as stored in the bundled data.
var listingLabels = map[string]map[int]string{
	IARC: {
		1:  "Carcinogenic to humans (1)",
		11: "Probably carcinogenic to humans (2A)",
		12: "Possibly carcinogenic to humans (2B)",
		3:  "Not classifiable as to its carcinogenicity to humans (3)",
		4:  "Probably not carcinogenic to humans (4)",
	},
	NTP: {
		1: "Known",
		2: "Reasonably Anticipated",
	},
}

// Carcinogen returns the carcinogen status of casrn by listing.
//
// With an empty method every listing is consulted and each appears in the
// result; a chemical a listing does not mention is reported as Unlisted.
// With a method, the result holds only that listing.
func Carcinogen(casrn, method string) (map[string]string, error) {
	p, err := property(propCarcinogen)
	if err != nil {
		return nil, err
	}

	listings := p.Registry().Names()
	if method != "" {
		if !p.Registry().Has(method) {
			return nil, &resolve.InvalidMethodError{Property: propCarcinogen, Method: method, Valid: listings}
		}
		listings = []string{method}
	}

	out := make(map[string]string, len(listings))
	for _, listing := range listings {
		res, err := p.Value(casrn, nil, listing)
		if err != nil {
			return nil, err
		}
		out[listing] = listingStatus(listing, res)
	}
	return out, nil
}

func listingStatus(listing string, res resolve.Resolution) string {
	if !res.Found() {
		return Unlisted
	}
	if code, ok := res.Float(); ok {
		return CarcinogenStatus(listing, code)
	}
	if s, ok := res.Text(); ok {
		return s
	}
	return fmt.Sprintf("Unrecognised listing (%v)", res.Value)
}

// CarcinogenStatus returns the status a listing code stands for. Codes the
// listing does not define are reported as unrecognised.
func CarcinogenStatus(listing string, code float64) string {
	if code == math.Trunc(code) {
		if label, ok := listingLabels[listing][int(code)]; ok {
			return label
		}
	}
	return fmt.Sprintf("Unrecognised listing (%g)", code)
}

// CarcinogenMethods returns every listing. Each listing can always answer,
// if only with Unlisted, so the result does not depend on casrn.
func CarcinogenMethods(casrn string) ([]string, error) {
	p, err := property(propCarcinogen)
	if err != nil {
		return nil, err
	}
	return p.AllMethods(), nil
}
