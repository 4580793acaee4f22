// Package code holds detailing-code policy tables. Curtailment fractions,
// lap and bend factors are data here, not branches in the rule engine, so
// an alternate code family can be substituted per invocation.
package code

// Policy is the set of detailing parameters for one code family.
// Lengths are in meters; factors multiply the relevant bar diameter.
type Policy struct {
	Name        string
	Description string

	// Beam top bars at supports: this fraction runs the full span,
	// the remainder is curtailed to CurtailSpanFraction x span from
	// each support.
	TopContinuousFraction float64
	CurtailSpanFraction   float64

	// Beam bottom bars at internal supports: this fraction receives a
	// lap of LapFactor x bar diameter.
	BottomSpliceFraction float64
	LapFactor            float64

	// Hanger bars carrying links in the compression zone.
	HangerMinCount int
	HangerMinDia   float64 // m
	EdgeSetback    float64 // m, clear distance from member end

	// Cantilever top (tension) bars: LongFraction of the bars extend
	// min(ExtendFactor x L, backspan) into the backspan; the remainder
	// extend MinExtendFactor x L. No bar may terminate closer than
	// MinExtendFactor x L from the support.
	CantileverLongFraction    float64
	CantileverExtendFactor    float64
	CantileverMinExtendFactor float64

	// Wall vertical bars: L-bar anchorage into the base uses
	// DevelopmentFactor x bar diameter of straight development and a
	// large bend of BendRadiusFactor x bar diameter.
	DevelopmentFactor float64
	BendRadiusFactor  float64
}

// Policies lists the supported code families. BS 8110 is the default;
// the EC2 entry carries its own lap factor per the anchorage tables.
var Policies = []Policy{
	{
		Name:                      "BS8110",
		Description:               "BS 8110 / traditional UK detailing practice",
		TopContinuousFraction:     0.6,
		CurtailSpanFraction:       0.25,
		BottomSpliceFraction:      0.3,
		LapFactor:                 42,
		HangerMinCount:            2,
		HangerMinDia:              0.016,
		EdgeSetback:               0.025,
		CantileverLongFraction:    0.5,
		CantileverExtendFactor:    1.5,
		CantileverMinExtendFactor: 0.75,
		DevelopmentFactor:         40,
		BendRadiusFactor:          4,
	},
	{
		Name:                      "EC2",
		Description:               "Eurocode 2 detailing, good bond conditions",
		TopContinuousFraction:     0.6,
		CurtailSpanFraction:       0.25,
		BottomSpliceFraction:      0.3,
		LapFactor:                 46,
		HangerMinCount:            2,
		HangerMinDia:              0.016,
		EdgeSetback:               0.025,
		CantileverLongFraction:    0.5,
		CantileverExtendFactor:    1.5,
		CantileverMinExtendFactor: 0.75,
		DevelopmentFactor:         44,
		BendRadiusFactor:          4,
	},
}

// ByName looks up a policy by its code-family name.
func ByName(name string) (Policy, bool) {
	for _, p := range Policies {
		if p.Name == name {
			return p, true
		}
	}
	return Policy{}, false
}

// Default returns the default code family (BS 8110).
func Default() Policy {
	return Policies[0]
}
