package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/halden-labs/prepkit-cli/internal/core/domain"
	"github.com/halden-labs/prepkit-cli/internal/transforms/numeric"
	"github.com/halden-labs/prepkit-cli/internal/transforms/text"
)

// TokenizeInput is the input schema for the tokenize tool.
type TokenizeInput struct {
	Text string `json:"text" jsonschema:"the text to split into lowercase tokens"`
}

// TokenizeOutput is the output schema for the tokenize tool.
type TokenizeOutput struct {
	Tokens []string `json:"tokens"`
	Count  int      `json:"count"`
}

// CleanTextInput is the input schema for the clean_text tool.
type CleanTextInput struct {
	Text string `json:"text" jsonschema:"the text to strip of punctuation"`
}

// CleanTextOutput is the output schema for the clean_text tool.
type CleanTextOutput struct {
	Text string `json:"text"`
}

// RemoveStopwordsInput is the input schema for the remove_stopwords tool.
type RemoveStopwordsInput struct {
	Text      string   `json:"text" jsonschema:"the text to filter"`
	Stopwords []string `json:"stopwords" jsonschema:"words to remove, case-insensitive"`
}

// RemoveStopwordsOutput is the output schema for the remove_stopwords tool.
type RemoveStopwordsOutput struct {
	Tokens []string `json:"tokens"`
	Count  int      `json:"count"`
}

// NormalizeInput is the input schema for the normalize tool.
type NormalizeInput struct {
	Values []float64 `json:"values" jsonschema:"the numbers to rescale"`
	NewMin float64   `json:"new_min,omitempty" jsonschema:"target minimum (default 0)"`
	NewMax float64   `json:"new_max,omitempty" jsonschema:"target maximum (default 1)"`
}

// NormalizeOutput is the output schema for the normalize tool.
type NormalizeOutput struct {
	Values []float64 `json:"values"`
}

// StandardizeInput is the input schema for the standardize tool.
type StandardizeInput struct {
	Values []float64 `json:"values" jsonschema:"the numbers to standardise"`
}

// StandardizeOutput is the output schema for the standardize tool.
type StandardizeOutput struct {
	Values []float64 `json:"values"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "tokenize",
		Description: "Split text into lowercase alphanumeric tokens",
	}, s.handleTokenize)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "clean_text",
		Description: "Lowercase text and remove everything except letters, digits, and whitespace",
	}, s.handleCleanText)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "remove_stopwords",
		Description: "Tokenize text and remove the given stopwords",
	}, s.handleRemoveStopwords)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "normalize",
		Description: "Min-max rescale numbers to a target range",
	}, s.handleNormalize)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "standardize",
		Description: "Z-score standardise numbers to zero mean and unit deviation",
	}, s.handleStandardize)
}

func (s *Server) handleTokenize(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input TokenizeInput,
) (*mcp.CallToolResult, TokenizeOutput, error) {
	tokens := text.Tokenize(input.Text)
	return nil, TokenizeOutput{Tokens: tokens, Count: len(tokens)}, nil
}

func (s *Server) handleCleanText(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input CleanTextInput,
) (*mcp.CallToolResult, CleanTextOutput, error) {
	return nil, CleanTextOutput{Text: text.Clean(input.Text)}, nil
}

func (s *Server) handleRemoveStopwords(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input RemoveStopwordsInput,
) (*mcp.CallToolResult, RemoveStopwordsOutput, error) {
	set := domain.NewStopwords(input.Stopwords...)
	tokens := text.RemoveStopwords(input.Text, set)
	return nil, RemoveStopwordsOutput{Tokens: tokens, Count: len(tokens)}, nil
}

func (s *Server) handleNormalize(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input NormalizeInput,
) (*mcp.CallToolResult, NormalizeOutput, error) {
	newMin, newMax := input.NewMin, input.NewMax
	if newMin == 0 && newMax == 0 {
		newMax = 1
	}

	out, err := numeric.Normalize(input.Values, newMin, newMax)
	if err != nil {
		return nil, NormalizeOutput{}, err
	}
	return nil, NormalizeOutput{Values: out}, nil
}

func (s *Server) handleStandardize(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input StandardizeInput,
) (*mcp.CallToolResult, StandardizeOutput, error) {
	out, err := numeric.Standardize(input.Values)
	if err != nil {
		return nil, StandardizeOutput{}, err
	}
	return nil, StandardizeOutput{Values: out}, nil
}
