package judgment

// Epitaph is the fixed text shown for an ending.
type Epitaph struct {
	Title string
	Lines []string
}

var epitaphs = map[Ending]Epitaph{
	Purgatory: {
		Title: "PURGATORY",
		Lines: []string{
			"Your virtues outweigh your sins...",
			"Though imperfect, you showed wisdom in the maze...",
			"Purgatory awaits - a chance for redemption...",
			"Time will cleanse what remains of your burden.",
		},
	},
	GrayRealm: {
		Title: "THE GRAY REALM",
		Lines: []string{
			"You walk the line between salvation and damnation...",
			"Neither fully corrupted nor truly pure...",
			"The Gray Realm claims you - eternal neutrality...",
			"Forever suspended between light and darkness.",
		},
	},
	LowerCircles: {
		Title: "THE LOWER CIRCLES",
		Lines: []string{
			"Your sins have weight, but virtue remains...",
			"The lower circles of suffering await...",
			"Pain, but not eternal torment...",
			"Hope flickers dimly in the distance.",
		},
	},
	Abyss: {
		Title: "THE ABYSS",
		Lines: []string{
			"Darkness consumes your soul...",
			"Your choices have led to the deepest pit...",
			"The Abyss opens its maw to swallow you...",
			"Eternal suffering awaits the unrepentant.",
		},
	},
	Hell: {
		Title: "THE GATES OF HELL",
		Lines: []string{
			"Your sins burn eternal, their weight unbearable.",
			"The flames welcome you as an old friend.",
			"You chose poorly. You carried too much.",
			"The optimal path was never about the maze; it was about the burden you accepted.",
		},
	},
	EternalSilence: {
		Title: "THE ETERNAL VOID",
		Lines: []string{
			"You found the optimal path through both maze and moral complexity.",
			"Your burden was light, your navigation precise.",
			"No torment, no redemption. Only the silence between algorithms.",
			"Nonexistence.",
		},
	},
}

// EpitaphFor returns the text for e. Unknown endings get their raw name as a
// title and no lines.
func EpitaphFor(e Ending) Epitaph {
	if ep, ok := epitaphs[e]; ok {
		return ep
	}
	return Epitaph{Title: string(e)}
}
