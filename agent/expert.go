package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Expert is a chat with a model specialised by its system instruction.
type Expert struct {
	Name        string
	Description string
	ModelName   string
	Config      *genai.GenerateContentConfig
	Library     Library
	chat        *genai.Chat
}

// Start opens the chat.
func (e *Expert) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, e.ModelName, e.Config, nil)
	if err != nil {
		return fmt.Errorf("cannot start %s: %w", e.Name, err)
	}
	e.chat = chat
	return nil
}

// Started returns true once the chat is open.
func (e *Expert) Started() bool { return e.chat != nil }

// Ask sends parts to the expert, and resolves its function calls until it answers.
func (e *Expert) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	if e.chat == nil {
		return nil, fmt.Errorf("expert %s is not started", e.Name)
	}
	resp, err := e.chat.Send(ctx, parts...)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from expert %s", e.Name)
	}
	content := resp.Candidates[0].Content
	var calls []*genai.Part
	for _, part := range content.Parts {
		if part.FunctionCall == nil {
			continue
		}
		if e.Library == nil {
			return nil, fmt.Errorf("expert %s doesn't know how to make function calls", e.Name)
		}
		calls = append(calls, &genai.Part{FunctionResponse: e.Library(ctx, part.FunctionCall)})
	}
	if len(calls) > 0 {
		return e.Ask(ctx, calls...)
	}
	return content, nil
}

// Declaration describes how to ask this expert a question.
func (e *Expert) Declaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        e.Name,
		Description: e.Description,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"question": {
					Type:        genai.TypeString,
					Description: "The question to ask the expert.",
				},
			},
			Required: []string{"question"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "The expert's response.",
		},
	}
}

// Call asks the expert the question found in args.
func (e *Expert) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	question, ok := args["question"].(string)
	if !ok {
		return errorResponse(id, e.Name, fmt.Sprintf("invalid question type %T, expected string", args["question"]))
	}
	content, err := e.Ask(ctx, &genai.Part{Text: question})
	if err != nil {
		return errorResponse(id, e.Name, "something went wrong while calling the expert: "+err.Error())
	}
	return &genai.FunctionResponse{
		ID:       id,
		Name:     e.Name,
		Response: map[string]any{"output": Text(content)},
	}
}

// Text concatenates the text parts of a content.
func Text(c *genai.Content) string {
	if c == nil {
		return ""
	}
	var s string
	for _, p := range c.Parts {
		s += p.Text
	}
	return s
}
