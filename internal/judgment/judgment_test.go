package judgment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tatianab/asylum-of-sins/internal/judgment"
)

func TestEfficiency(t *testing.T) {
	assert.Equal(t, 2.0, judgment.Efficiency(10, 5))
	assert.Equal(t, 1.0, judgment.Efficiency(7, 0))
	assert.Equal(t, 1.0, judgment.Efficiency(0, 0))
	assert.InDelta(t, 1.333, judgment.Efficiency(4, 3), 0.001)
}

func TestMoralRules(t *testing.T) {
	tests := []struct {
		name string
		in   judgment.Input
		want judgment.Ending
	}{
		{"virtuous and direct", judgment.Input{PlayerSteps: 20, OptimalSteps: 20, NetValue: 12}, judgment.Purgatory},
		// score 12-4=8 misses the first rule and lands in the broader second one
		{"virtuous but wandering", judgment.Input{PlayerSteps: 28, OptimalSteps: 20, NetValue: 12}, judgment.GrayRealm},
		{"high score but too slow for purgatory", judgment.Input{PlayerSteps: 32, OptimalSteps: 20, NetValue: 30}, judgment.GrayRealm},
		{"balanced", judgment.Input{PlayerSteps: 10, OptimalSteps: 10, NetValue: 0}, judgment.GrayRealm},
		{"good score, hopeless path", judgment.Input{PlayerSteps: 40, OptimalSteps: 20, NetValue: 15}, judgment.LowerCircles},
		{"sinful", judgment.Input{PlayerSteps: 10, OptimalSteps: 10, NetValue: -10}, judgment.LowerCircles},
		{"damned", judgment.Input{PlayerSteps: 10, OptimalSteps: 10, NetValue: -11}, judgment.Abyss},
		{"no reference path", judgment.Input{PlayerSteps: 50, OptimalSteps: 0, NetValue: 10}, judgment.Purgatory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := judgment.Judge(judgment.MoralRules, tt.in)
			assert.Equal(t, tt.want, v.Ending)
			assert.InDelta(t, judgment.MoralScore(tt.in), v.Score, 1e-9)
		})
	}
}

func TestAsylumRules(t *testing.T) {
	flags := func(fs ...judgment.Flag) map[judgment.Flag]bool {
		m := map[judgment.Flag]bool{}
		for _, f := range fs {
			m[f] = true
		}
		return m
	}
	tests := []struct {
		name string
		in   judgment.Input
		want judgment.Ending
	}{
		{"heavy burden", judgment.Input{PlayerSteps: 24, OptimalSteps: 24, NetValue: 25, ItemCount: 2}, judgment.Hell},
		{"wrath with greed", judgment.Input{PlayerSteps: 24, OptimalSteps: 24, NetValue: 20, ItemCount: 2, Flags: flags(judgment.FlagWrath, judgment.FlagGreed)}, judgment.Hell},
		{"five small sins", judgment.Input{PlayerSteps: 24, OptimalSteps: 24, NetValue: 12, ItemCount: 5}, judgment.Hell},
		// hell is checked first even when the silence conditions also hold
		{"despair but too many sins", judgment.Input{PlayerSteps: 24, OptimalSteps: 24, NetValue: 14, ItemCount: 5, Flags: flags(judgment.FlagDespair)}, judgment.Hell},
		{"precise despair", judgment.Input{PlayerSteps: 26, OptimalSteps: 24, NetValue: 14, ItemCount: 2, Flags: flags(judgment.FlagDespair)}, judgment.EternalSilence},
		{"despair but lost", judgment.Input{PlayerSteps: 30, OptimalSteps: 24, NetValue: 14, ItemCount: 2, Flags: flags(judgment.FlagDespair)}, judgment.Purgatory},
		{"precise without despair", judgment.Input{PlayerSteps: 24, OptimalSteps: 24, NetValue: 14, ItemCount: 2}, judgment.Purgatory},
		{"despair too heavy", judgment.Input{PlayerSteps: 24, OptimalSteps: 24, NetValue: 16, ItemCount: 2, Flags: flags(judgment.FlagDespair)}, judgment.Purgatory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, judgment.Judge(judgment.AsylumRules, tt.in).Ending)
		})
	}
}

func TestJudge_FirstMatchWins(t *testing.T) {
	rs := judgment.Ruleset{
		Rules: []judgment.Rule{
			{Ending: judgment.Hell, Match: func(judgment.Input) bool { return true }},
			{Ending: judgment.Abyss, Match: func(judgment.Input) bool { return true }},
		},
		Fallback: judgment.Purgatory,
	}
	assert.Equal(t, judgment.Hell, judgment.Judge(rs, judgment.Input{}).Ending)

	rs.Rules = nil
	v := judgment.Judge(rs, judgment.Input{PlayerSteps: 4, OptimalSteps: 2})
	assert.Equal(t, judgment.Purgatory, v.Ending)
	assert.Equal(t, 2.0, v.Efficiency)
	assert.Zero(t, v.Score)
}

func TestRulesFor(t *testing.T) {
	rs, ok := judgment.RulesFor("asylum")
	assert.True(t, ok)
	assert.Equal(t, judgment.Purgatory, rs.Fallback)

	rs, ok = judgment.RulesFor("judgment")
	assert.True(t, ok)
	assert.Equal(t, judgment.Abyss, rs.Fallback)

	_, ok = judgment.RulesFor("heaven")
	assert.False(t, ok)
}

func TestEpitaphFor(t *testing.T) {
	for _, e := range []judgment.Ending{
		judgment.Purgatory, judgment.GrayRealm, judgment.LowerCircles, judgment.Abyss,
		judgment.Hell, judgment.EternalSilence,
	} {
		ep := judgment.EpitaphFor(e)
		assert.NotEmpty(t, ep.Title, e)
		assert.NotEmpty(t, ep.Lines, e)
	}
	assert.Equal(t, "limbo", judgment.EpitaphFor("limbo").Title)
}

func TestRuleset_Epitaph(t *testing.T) {
	asylum := judgment.AsylumRules.Epitaph(judgment.Purgatory)
	assert.Equal(t, "THE GRAY BETWEEN", asylum.Title)
	for _, line := range asylum.Lines {
		assert.NotContains(t, line, "virtue")
	}

	assert.Equal(t, judgment.EpitaphFor(judgment.Purgatory), judgment.MoralRules.Epitaph(judgment.Purgatory))
	assert.Equal(t, judgment.EpitaphFor(judgment.Hell), judgment.AsylumRules.Epitaph(judgment.Hell))
}
