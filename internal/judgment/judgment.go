// Package judgment turns a finished run into one of a fixed set of endings.
//
// Judge walks an ordered rule list and returns the first ending whose
// predicate matches. Ranges overlap on purpose, so order is part of each
// rule set's meaning.
package judgment

import "fmt"

// Ending is a narrative outcome.
type Ending string

// Endings of the sin-and-virtue judgment.
const (
	Purgatory    Ending = "purgatory"
	GrayRealm    Ending = "gray_realm"
	LowerCircles Ending = "lower_circles"
	Abyss        Ending = "abyss"
)

// Endings of the asylum, where only sins are carried.
const (
	Hell           Ending = "hell"
	EternalSilence Ending = "eternal_silence"
)

// Flag is a categorical fact about the carried items, such as which sin
// types were taken together.
type Flag string

// Input is everything the scorer looks at.
type Input struct {
	PlayerSteps  int
	OptimalSteps int
	// NetValue is virtue value minus sin value in the judgment rules and total
	// consequence value of the sins in the asylum rules.
	NetValue  int
	ItemCount int
	Flags     map[Flag]bool
}

// Has reports whether flag f is set.
func (in Input) Has(f Flag) bool { return in.Flags[f] }

// Efficiency is the player's step count divided by the optimal step count.
// An optimal count of zero yields 1.0.
func Efficiency(playerSteps, optimalSteps int) float64 {
	if optimalSteps <= 0 {
		return 1.0
	}
	return float64(playerSteps) / float64(optimalSteps)
}

// Efficiency computes the input's path efficiency.
func (in Input) Efficiency() float64 { return Efficiency(in.PlayerSteps, in.OptimalSteps) }

// Rule maps a predicate to an ending.
type Rule struct {
	Ending Ending
	Match  func(in Input) bool
}

// Verdict is the scorer's output.
type Verdict struct {
	Ending     Ending
	Efficiency float64
	// Score is the figure the winning rule compared against its thresholds.
	Score float64
}

func (v Verdict) String() string {
	return fmt.Sprintf("%s (efficiency %.2f, score %.1f)", v.Ending, v.Efficiency, v.Score)
}

// Ruleset is an ordered list of rules plus the score it reports.
type Ruleset struct {
	Name  string
	Rules []Rule
	Score func(in Input) float64
	// Fallback is returned when no rule matches.
	Fallback Ending
	// Epitaphs overrides the shared text for endings this rule set words
	// differently.
	Epitaphs map[Ending]Epitaph
}

// Epitaph returns the text rs shows for e.
func (rs Ruleset) Epitaph(e Ending) Epitaph {
	if ep, ok := rs.Epitaphs[e]; ok {
		return ep
	}
	return EpitaphFor(e)
}

// Judge evaluates rs against in.
func Judge(rs Ruleset, in Input) Verdict {
	v := Verdict{
		Ending:     rs.Fallback,
		Efficiency: in.Efficiency(),
	}
	if rs.Score != nil {
		v.Score = rs.Score(in)
	}
	for _, r := range rs.Rules {
		if r.Match(in) {
			v.Ending = r.Ending
			break
		}
	}
	return v
}
