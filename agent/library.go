package agent

import (
	"context"

	"google.golang.org/genai"
)

// Library dispatches a function call requested by the model.
type Library func(context.Context, *genai.FunctionCall) *genai.FunctionResponse

// Function is something the model can call.
type Function interface {
	// Declaration describes the function to the model.
	Declaration() *genai.FunctionDeclaration
	// Call runs the function.
	Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

// NewLibrary returns a Library calling the function with the requested name.
func NewLibrary[T Function](functions []T) Library {
	return func(ctx context.Context, call *genai.FunctionCall) *genai.FunctionResponse {
		for _, f := range functions {
			if f.Declaration().Name == call.Name {
				return f.Call(ctx, call.ID, call.Args)
			}
		}
		return errorResponse(call.ID, call.Name, "unknown function "+call.Name)
	}
}

// NewDeclaration returns the declarations of all functions.
func NewDeclaration[T Function](functions []T) []*genai.FunctionDeclaration {
	result := make([]*genai.FunctionDeclaration, 0, len(functions))
	for _, f := range functions {
		result = append(result, f.Declaration())
	}
	return result
}

// Func implements a simple Function.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, args map[string]any) (string, error)
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }

// Call runs the function and wraps its output, or its error, in a response.
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	out, err := f.Func(ctx, args)
	if err != nil {
		return errorResponse(id, f.Decl.Name, err.Error())
	}
	return &genai.FunctionResponse{
		ID:       id,
		Name:     f.Decl.Name,
		Response: map[string]any{"output": out},
	}
}

func errorResponse(id, name, msg string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"error": msg},
	}
}
