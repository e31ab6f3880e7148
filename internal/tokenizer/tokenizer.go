// Package tokenizer estimates LLM token counts for text content.
package tokenizer

import (
	"fmt"
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

// Counter estimates token counts for text content.
type Counter interface {
	Name() string
	CountString(input string) (int, error)
}

// Config captures tokenizer selection parameters provided by the CLI.
type Config struct {
	// Model selects a tiktoken encoding. An empty model selects the offline heuristic.
	Model string
}

const (
	// fallbackEncodingName is used when tiktoken does not know the requested model.
	fallbackEncodingName = "o200k_base"
)

// NewCounter returns a Counter implementation for the requested model together with
// the name of the tokenizer that will actually be used.
func NewCounter(cfg Config) (Counter, string, error) {
	model := strings.ToLower(strings.TrimSpace(cfg.Model))
	if model == "" {
		heuristic := NewHeuristicCounter()
		return heuristic, heuristic.Name(), nil
	}

	encoding, encodingError := tiktoken.EncodingForModel(model)
	if encodingError == nil && encoding != nil {
		return tiktokenCounter{encoding: encoding, name: model}, model, nil
	}
	fallback, fallbackError := tiktoken.GetEncoding(fallbackEncodingName)
	if fallbackError != nil {
		return nil, "", fmt.Errorf("initialize fallback tokenizer %s for model %s: %w", fallbackEncodingName, model, fallbackError)
	}
	return tiktokenCounter{encoding: fallback, name: fallbackEncodingName}, fallbackEncodingName, nil
}

type tiktokenCounter struct {
	encoding *tiktoken.Tiktoken
	name     string
}

func (counter tiktokenCounter) Name() string {
	return counter.name
}

func (counter tiktokenCounter) CountString(input string) (int, error) {
	if counter.encoding == nil {
		return 0, fmt.Errorf("tiktoken encoding %s not initialized", counter.name)
	}
	return len(counter.encoding.EncodeOrdinary(input)), nil
}
