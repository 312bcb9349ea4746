package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

// Analyst is a chat with a sales analyst persona, grounded on the report
// computed by the pipeline.
type Analyst struct {
	ModelName string
	Report    string // the rendered summary report the chat is grounded on
	chat      *genai.Chat
}

// NewAnalyst creates an analyst grounded on the given markdown report.
func NewAnalyst(report string) *Analyst {
	return &Analyst{ModelName: defaultModel, Report: report}
}

func (a *Analyst) systemPrompt() string {
	return fmt.Sprintf(`You are a sales analyst. Answer questions using only
the report below. When the report cannot answer a question, say so instead of
guessing. Keep answers short and quote the relevant figures.

%s`, a.Report)
}

// Start creates the underlying chat session.
func (a *Analyst) Start(ctx context.Context, client *genai.Client) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: a.systemPrompt()}},
		},
	}
	chat, err := client.Chats.Create(ctx, a.ModelName, config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Ask sends one question and returns the analyst's text answer.
func (a *Analyst) Ask(ctx context.Context, question string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the analyst")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
