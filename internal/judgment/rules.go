package judgment

// Sin flags consulted by the asylum rules.
const (
	FlagWrath   Flag = "wrath"
	FlagGreed   Flag = "greed"
	FlagDespair Flag = "despair"
)

// MoralScore is the net moral balance less ten points for every whole
// optimal-path length the player wandered beyond the optimum.
func MoralScore(in Input) float64 {
	return float64(in.NetValue) - (in.Efficiency()-1.0)*10
}

// MoralRules judge a soul that carried both sins and virtues.
var MoralRules = Ruleset{
	Name:  "judgment",
	Score: MoralScore,
	Rules: []Rule{
		{Purgatory, func(in Input) bool { return MoralScore(in) >= 10 && in.Efficiency() < 1.5 }},
		{GrayRealm, func(in Input) bool { return MoralScore(in) >= 0 && in.Efficiency() < 2.0 }},
		{LowerCircles, func(in Input) bool { return MoralScore(in) >= -10 }},
	},
	Fallback: Abyss,
}

// AsylumRules judge a soul that carried only sins. NetValue is the summed
// consequence of those sins.
var AsylumRules = Ruleset{
	Name:  "asylum",
	Score: func(in Input) float64 { return float64(in.NetValue) },
	Rules: []Rule{
		{Hell, func(in Input) bool {
			return in.NetValue >= 25 ||
				(in.Has(FlagWrath) && in.Has(FlagGreed)) ||
				in.ItemCount >= 5
		}},
		// Measured in steps, not cells: at most 1.25 steps walked per optimal
		// step. The older cell-count ratio (optimal+1)/(taken+1) > 0.8 let
		// slightly longer walks through; this boundary is stricter on purpose.
		{EternalSilence, func(in Input) bool {
			return in.Efficiency() < 1.25 && in.Has(FlagDespair) && in.NetValue <= 15
		}},
	},
	Fallback: Purgatory,
	Epitaphs: map[Ending]Epitaph{
		Purgatory: {
			Title: "THE GRAY BETWEEN",
			Lines: []string{
				"Neither fully damned nor completely lost,",
				"you wander the endless mists of calculation.",
				"Your sins were balanced, your path adequate.",
				"Here you will solve infinite problems, each solution bringing you closer to understanding the true weight of your choices.",
			},
		},
	},
}

// RulesFor returns the rule set registered under name.
func RulesFor(name string) (Ruleset, bool) {
	switch name {
	case MoralRules.Name:
		return MoralRules, true
	case AsylumRules.Name:
		return AsylumRules, true
	}
	return Ruleset{}, false
}
