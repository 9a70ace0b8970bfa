package regions

import "strings"

// Platform routing values to the continental routing used by account/match endpoints.
var routingByPlatform = map[string]string{
	"br1":  "americas",
	"la1":  "americas",
	"la2":  "americas",
	"na1":  "americas",
	"euw1": "europe",
	"eun1": "europe",
	"tr1":  "europe",
	"ru":   "europe",
	"jp1":  "asia",
	"kr":   "asia",
	"oc1":  "sea",
	"ph2":  "sea",
	"sg2":  "sea",
	"th2":  "sea",
	"tw2":  "sea",
	"vn2":  "sea",
}

// Routing returns the continental routing value for a given platform.
// Unknown platforms default to americas so the request still resolves somewhere.
func Routing(platform string) string {
	if routing, exists := routingByPlatform[strings.ToLower(platform)]; exists {
		return routing
	}
	return "americas"
}

// Valid reports whether the platform is a known Riot platform id.
func Valid(platform string) bool {
	_, exists := routingByPlatform[strings.ToLower(platform)]
	return exists
}
