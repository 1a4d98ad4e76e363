package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/tatianab/asylum-of-sins/internal/config"
	"github.com/tatianab/asylum-of-sins/internal/engine"
	"github.com/tatianab/asylum-of-sins/internal/models"
)

const maxMoves = 10000

func main() {
	ctx := context.Background()
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	mode := flag.String("mode", string(cfg.Mode), "ruleset: judgment or asylum")
	runs := flag.Int("runs", 3, "number of playthroughs")
	walker := flag.String("walker", "wall", "how the bot walks: wall (right hand on the wall) or hint")
	flag.Parse()

	cfg.Mode = models.Mode(*mode)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	eng, err := engine.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}
	defer eng.Close()

	// The player LLM is optional; without it the bot picks at random.
	var playerModel *genai.GenerativeModel
	if cfg.GeminiAPIKey != "" {
		playerClient, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
		if err != nil {
			log.Fatalf("Failed to create player client: %v", err)
		}
		defer playerClient.Close()
		playerModel = playerClient.GenerativeModel("gemini-2.5-flash")
	}

	for run := 1; run <= *runs; run++ {
		sess := eng.NewSession()
		rng := rand.New(rand.NewPCG(uint64(sess.Seed()), uint64(run)))
		fmt.Printf("=== Run %d (seed %d) ===\n", run, sess.Seed())

		fmt.Println("--- Step 1: Choosing a burden ---")
		var names []string
		if playerModel != nil {
			names = askPlayer(ctx, playerModel, eng.Catalog())
		} else {
			names = randomPicks(eng.Catalog(), rng)
		}
		for _, name := range names {
			it, err := eng.Catalog().Lookup(name)
			if err != nil {
				fmt.Printf("Player asked for %q: %v\n", name, err)
				continue
			}
			if err := sess.Toggle(it.ID); err != nil {
				fmt.Printf("Player could not take %s: %v\n", it.Name, err)
			}
		}
		if sess.Selection().Len() == 0 && eng.Catalog().Mode == models.ModeAsylum {
			if _, err := sess.Solve(); err != nil {
				log.Fatalf("Failed to solve: %v", err)
			}
		}
		fmt.Printf("Carrying: %s (weight %d of %d)\n\n",
			strings.Join(sess.Selection().IDs(), ", "), sess.Selection().Weight(), sess.Selection().Capacity())

		fmt.Println("--- Step 2: Walking the maze ---")
		if err := sess.Begin(); err != nil {
			log.Fatalf("Failed to begin: %v", err)
		}
		if !walk(sess, *walker) {
			fmt.Printf("Gave up after %d moves.\n\n", maxMoves)
			continue
		}
		fmt.Println(sess.Render(true))

		fmt.Println("\n--- Step 3: Judgment ---")
		v, err := sess.Verdict()
		if err != nil {
			log.Fatalf("No verdict: %v", err)
		}
		text, err := eng.Narrator().Narrate(ctx, v, sess.Selection().Items())
		if err != nil {
			text = strings.Join(v.Lines, "\n")
		}
		fmt.Printf("%s\n%s\n", v.Title, text)
		fmt.Printf("Steps %d, optimal %d, %s\n\n", v.PlayerSteps, v.OptimalSteps, v.Verdict)
	}
}

func randomPicks(c *models.Catalog, rng *rand.Rand) []string {
	n := 1 + rng.IntN(4)
	var names []string
	for _, i := range rng.Perm(len(c.Items))[:min(n, len(c.Items))] {
		names = append(names, c.Items[i].Name)
	}
	return names
}

func askPlayer(ctx context.Context, model *genai.GenerativeModel, c *models.Catalog) []string {
	var offer strings.Builder
	for _, it := range c.Items {
		fmt.Fprintf(&offer, "- %s (%s, weight %d): %s\n", it.Name, it.Kind, it.Weight, it.Description)
	}
	prompt := fmt.Sprintf(`You are a soul choosing what to carry into a labyrinth before judgment.
You can carry a total weight of at most %d.

On offer:
%s
Which do you take? Return ONLY the names, separated by commas.`, c.Capacity, offer.String())

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		fmt.Printf("Player stayed silent (%v); choosing at random.\n", err)
		return randomPicks(c, rand.New(rand.NewPCG(1, 2)))
	}
	answer := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	fmt.Printf("Player chose: %s\n", strings.TrimSpace(answer))

	var names []string
	for _, name := range strings.Split(answer, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// walk moves until the goal is reached or the move budget runs out.
func walk(sess *engine.Session, walker string) bool {
	facing := engine.East
	for i := 0; i < maxMoves; i++ {
		if sess.Phase() == engine.Finished {
			return true
		}
		var d engine.Direction
		if walker == "hint" {
			var ok bool
			if d, ok = sess.Hint(); !ok {
				return false
			}
		} else {
			d = rightHand(sess, facing)
		}
		step, err := sess.Move(d)
		if err != nil {
			return false
		}
		facing = d
		if step.Omen != "" {
			fmt.Printf("%s... ", step.Omen)
		}
	}
	return sess.Phase() == engine.Finished
}

// rightHand follows the wall on the right-hand side.
func rightHand(sess *engine.Session, facing engine.Direction) engine.Direction {
	g := sess.Maze().Grid
	for _, turn := range []int{1, 0, 3, 2} {
		d := engine.Direction((int(facing) + turn) % 4)
		if g.IsOpen(sess.Position().Add(d.Delta())) {
			return d
		}
	}
	return facing
}
