package model

import "strings"

const unknown = "Unknown"

type spiritOrigin struct {
	marker  string
	region  string
	country string
}

var spiritOrigins = []spiritOrigin{
	{marker: "Bourbon", region: "Kentucky", country: "USA"},
	{marker: "Scotch", region: "Scotland", country: "Scotland"},
	{marker: "Irish", region: "Ireland", country: "Ireland"},
	{marker: "Japanese", region: "Japan", country: "Japan"},
}

// RegionFromSpirit guesses a region from a catalog spirit label such as
// "Scotch Whisky". Unrecognised labels map to "Unknown".
func RegionFromSpirit(spirit string) string {
	for _, origin := range spiritOrigins {
		if strings.Contains(spirit, origin.marker) {
			return origin.region
		}
	}

	return unknown
}

func CountryFromSpirit(spirit string) string {
	for _, origin := range spiritOrigins {
		if strings.Contains(spirit, origin.marker) {
			return origin.country
		}
	}

	return unknown
}
