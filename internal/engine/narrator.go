package engine

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"log"
	"strings"
	"text/template"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/tatianab/asylum-of-sins/internal/models"
)

//go:embed prompts/judgment.txt
var judgmentPrompt string

var judgmentTmpl = template.Must(template.New("judgment").Parse(judgmentPrompt))

// Narrator tells the player what became of their soul.
type Narrator interface {
	Narrate(ctx context.Context, v Verdict, carried []models.Item) (string, error)
}

// StaticNarrator recites the fixed epitaph of the ending.
type StaticNarrator struct{}

func (StaticNarrator) Narrate(_ context.Context, v Verdict, _ []models.Item) (string, error) {
	return strings.Join(v.Lines, "\n"), nil
}

// GeminiNarrator asks Gemini for a personal epitaph and recites the fixed
// one when the model cannot be reached.
type GeminiNarrator struct {
	client   *genai.Client
	model    *genai.GenerativeModel
	fallback Narrator
}

func NewGeminiNarrator(ctx context.Context, apiKey string) (*GeminiNarrator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &GeminiNarrator{
		client:   client,
		model:    client.GenerativeModel("gemini-2.5-flash"),
		fallback: StaticNarrator{},
	}, nil
}

func (n *GeminiNarrator) Close() error {
	return n.client.Close()
}

func (n *GeminiNarrator) Narrate(ctx context.Context, v Verdict, carried []models.Item) (string, error) {
	prompt, err := renderJudgmentPrompt(v, carried)
	if err != nil {
		return "", err
	}
	resp, err := n.model.GenerateContent(ctx, genai.Text(prompt))
	if err == nil {
		var text string
		if text, err = responseText(resp); err == nil {
			return text, nil
		}
	}
	log.Printf("narrator: falling back to the fixed epitaph: %v", err)
	return n.fallback.Narrate(ctx, v, carried)
}

func renderJudgmentPrompt(v Verdict, carried []models.Item) (string, error) {
	var buf bytes.Buffer
	data := struct {
		Ending       string
		Title        string
		Lines        []string
		Efficiency   string
		Score        string
		PlayerSteps  int
		OptimalSteps int
		Carried      []models.Item
	}{
		Ending:       string(v.Ending),
		Title:        v.Title,
		Lines:        v.Lines,
		Efficiency:   fmt.Sprintf("%.2f", v.Efficiency),
		Score:        fmt.Sprintf("%.1f", v.Score),
		PlayerSteps:  v.PlayerSteps,
		OptimalSteps: v.OptimalSteps,
		Carried:      carried,
	}
	if err := judgmentTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content returned from Gemini")
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		text, ok := part.(genai.Text)
		if !ok {
			return "", fmt.Errorf("unexpected response type from Gemini")
		}
		b.WriteString(string(text))
	}
	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", fmt.Errorf("empty response from Gemini")
	}
	return out, nil
}
