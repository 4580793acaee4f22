// Package detailing is the table-driven curtailment rule engine. It decides,
// per bar and zone, the placements a bar receives along the member run:
// continuous, curtailed into support segments, or splice-lapped. All rule
// values come from a code.Policy so code families can be swapped.
package detailing

import (
	"math"

	"github.com/alexiusacademia/gorcd/internal/code"
	"github.com/alexiusacademia/gorcd/internal/element"
)

// Zone identifies the reinforcement zone a bar belongs to.
type Zone int

const (
	ZoneBottom Zone = iota
	ZoneTop
	ZoneHanger
	ZoneVertical
	ZoneHorizontal
)

func (z Zone) String() string {
	switch z {
	case ZoneBottom:
		return "bottom"
	case ZoneTop:
		return "top"
	case ZoneHanger:
		return "hanger"
	case ZoneVertical:
		return "vertical"
	case ZoneHorizontal:
		return "horizontal"
	}
	return "unknown"
}

// Placement is one straight run a bar occupies along the member axis.
// StartOffset is measured along the run axis; for cantilevers the support
// is at zero and the free end at -CantileverLength.
type Placement struct {
	StartOffset float64 // m
	Length      float64 // m
}

// Classification is the outcome for a single bar: one placement for a
// continuous bar, two for a bar curtailed at both supports.
type Classification struct {
	Placements      []Placement
	SpliceCandidate bool    // receives a lap at internal supports
	LapLength       float64 // m, when SpliceCandidate
	ActiveLength    float64 // m, sum of placement lengths
}

// Request carries the inputs for classifying one bar.
type Request struct {
	Policy code.Policy
	Kind   element.Kind
	Zone   Zone

	BarIndex int // 0-based index within the zone
	Total    int // total bars in the zone

	Span       float64 // beam span, wall height (vertical) or panel length (horizontal)
	Cantilever float64 // cantilever projection, cantilever kind only
	Backspan   float64 // anchoring span, cantilever kind only
	Dia        float64 // bar diameter
}

// Classify applies the policy table to one bar.
func Classify(req Request) (Classification, error) {
	switch req.Zone {
	case ZoneHanger:
		return classifyHanger(req)
	case ZoneTop:
		if req.Kind == element.Cantilever {
			return classifyCantileverTop(req)
		}
		return classifyBeamTop(req)
	case ZoneBottom:
		if req.Kind == element.Cantilever {
			return continuous(-req.Cantilever+req.Policy.EdgeSetback,
				req.Cantilever+req.Backspan-2*req.Policy.EdgeSetback), nil
		}
		return classifyBeamBottom(req)
	case ZoneVertical:
		return classifyWallVertical(req)
	case ZoneHorizontal:
		return continuous(req.Policy.EdgeSetback, req.Span-2*req.Policy.EdgeSetback), nil
	}
	return Classification{}, element.PolicyViolation("unknown reinforcement zone %d", req.Zone)
}

func continuous(start, length float64) Classification {
	return Classification{
		Placements:   []Placement{{StartOffset: start, Length: length}},
		ActiveLength: length,
	}
}

// classifyBeamTop curtails support steel: TopContinuousFraction of the bars
// run the full span, the rest become two short segments of
// CurtailSpanFraction x span, one at each support.
func classifyBeamTop(req Request) (Classification, error) {
	nContinuous := int(math.Ceil(req.Policy.TopContinuousFraction * float64(req.Total)))
	if req.BarIndex < nContinuous {
		return continuous(0, req.Span), nil
	}

	seg := req.Policy.CurtailSpanFraction * req.Span
	return Classification{
		Placements: []Placement{
			{StartOffset: 0, Length: seg},
			{StartOffset: req.Span - seg, Length: seg},
		},
		ActiveLength: 2 * seg,
	}, nil
}

// classifyBeamBottom runs bottom steel the full span and flags the splice
// fraction, which receives a lap of LapFactor x diameter at internal
// supports when spans are chained into an assembly.
func classifyBeamBottom(req Request) (Classification, error) {
	c := continuous(0, req.Span)

	nSplice := int(math.Ceil(req.Policy.BottomSpliceFraction * float64(req.Total)))
	if req.BarIndex < nSplice {
		c.SpliceCandidate = true
		c.LapLength = req.Policy.LapFactor * req.Dia
	}
	return c, nil
}

func classifyHanger(req Request) (Classification, error) {
	if req.Total < req.Policy.HangerMinCount {
		return Classification{}, element.PolicyViolation(
			"%d hanger bars requested, code minimum is %d", req.Total, req.Policy.HangerMinCount)
	}
	if req.Dia < req.Policy.HangerMinDia {
		return Classification{}, element.PolicyViolation(
			"hanger bar diameter %.0f mm below code minimum %.0f mm",
			req.Dia*1000, req.Policy.HangerMinDia*1000)
	}
	return continuous(req.Policy.EdgeSetback, req.Span-2*req.Policy.EdgeSetback), nil
}

// classifyCantileverTop extends tension steel into the backspan. The long
// fraction gets min(ExtendFactor x L, backspan); the remainder gets
// MinExtendFactor x L. Every extension is checked against the
// MinExtendFactor x L floor - a short backspan is a policy violation, not
// a silent truncation.
func classifyCantileverTop(req Request) (Classification, error) {
	pol := req.Policy
	floor := pol.CantileverMinExtendFactor * req.Cantilever

	nLong := int(math.Ceil(pol.CantileverLongFraction * float64(req.Total)))

	var extension float64
	if req.BarIndex < nLong {
		extension = math.Min(pol.CantileverExtendFactor*req.Cantilever, req.Backspan)
	} else {
		extension = floor
	}

	if extension < floor {
		return Classification{}, element.PolicyViolation(
			"cantilever top bar terminates %.3f m into the backspan, code floor is %.3f m",
			extension, floor)
	}

	return continuous(-req.Cantilever, req.Cantilever+extension), nil
}

// classifyWallVertical runs vertical steel continuous through the stem
// height plus a straight development of DevelopmentFactor x diameter
// anchored into the base. The L-bend itself is built by the path builder
// with the policy's large bend radius.
func classifyWallVertical(req Request) (Classification, error) {
	development := req.Policy.DevelopmentFactor * req.Dia
	return Classification{
		Placements:   []Placement{{StartOffset: 0, Length: req.Span + development}},
		ActiveLength: req.Span + development,
	}, nil
}

// SpliceCount returns how many bottom bars of a group are splice
// candidates under the policy.
func SpliceCount(pol code.Policy, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Ceil(pol.BottomSpliceFraction * float64(total)))
}
