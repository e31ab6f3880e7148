package tokenizer

import (
	"unicode"
	"unicode/utf8"
)

const (
	heuristicCounterName = "heuristic"
	// charactersPerToken is the common approximation for BPE tokenizers on English and code.
	charactersPerToken = 4
	// tokensPerWordNumerator and tokensPerWordDenominator express roughly 0.75 words per token.
	tokensPerWordNumerator   = 4
	tokensPerWordDenominator = 3
)

// HeuristicCounter estimates tokens offline without any vendor vocabulary.
// The estimate is the larger of ceil(runes/4) and ceil(words*4/3), where a word is a
// maximal run of non-whitespace runes. It is deterministic and never decreases when
// text is extended.
type HeuristicCounter struct{}

// NewHeuristicCounter constructs the offline estimator.
func NewHeuristicCounter() HeuristicCounter {
	return HeuristicCounter{}
}

// Name identifies the estimator.
func (HeuristicCounter) Name() string {
	return heuristicCounterName
}

// CountString never fails; the error is part of the Counter contract.
func (counter HeuristicCounter) CountString(input string) (int, error) {
	return counter.Estimate(input), nil
}

// Estimate returns the token estimate for input.
func (HeuristicCounter) Estimate(input string) int {
	if input == "" {
		return 0
	}
	runeCount := 0
	wordCount := 0
	insideWord := false
	for index := 0; index < len(input); {
		currentRune, width := utf8.DecodeRuneInString(input[index:])
		index += width
		runeCount++
		if unicode.IsSpace(currentRune) {
			insideWord = false
			continue
		}
		if !insideWord {
			wordCount++
			insideWord = true
		}
	}
	characterEstimate := ceilDivide(runeCount, charactersPerToken)
	wordEstimate := ceilDivide(wordCount*tokensPerWordNumerator, tokensPerWordDenominator)
	if wordEstimate > characterEstimate {
		return wordEstimate
	}
	return characterEstimate
}

func ceilDivide(numerator int, denominator int) int {
	return (numerator + denominator - 1) / denominator
}
