// Package pattern compiles glob-style include and exclude patterns and evaluates them against
// slash-separated paths relative to the processing root.
//
// A pattern is split into segments. Each segment is a literal, a wildcard evaluated with
// path.Match semantics inside one path segment, or "**", which spans any number of whole
// segments. A pattern without an inner slash matches at any depth; a pattern with an inner or
// leading slash is anchored at the root. A trailing slash restricts the pattern to directories,
// and a pattern that matches a directory also matches everything below it.
package pattern

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

const (
	segmentSeparator  = "/"
	recursiveWildcard = "**"
	wildcardRunes     = "*?["
)

// ErrMalformedPattern marks a wildcard segment that could not be compiled and is matched literally.
var ErrMalformedPattern = errors.New("malformed pattern")

type segmentKind int

const (
	segmentLiteral segmentKind = iota
	segmentWildcard
	segmentRecursive
)

type segment struct {
	kind segmentKind
	text string
}

func (compiledSegment segment) matches(pathSegment string) bool {
	switch compiledSegment.kind {
	case segmentLiteral:
		return compiledSegment.text == pathSegment
	case segmentWildcard:
		isMatched, matchError := path.Match(compiledSegment.text, pathSegment)
		return matchError == nil && isMatched
	default:
		return true
	}
}

// Pattern is a compiled glob pattern.
type Pattern struct {
	source        string
	segments      []segment
	anchored      bool
	directoryOnly bool
}

// Compile parses raw into a Pattern. The returned Pattern is always usable: when a wildcard
// segment is malformed it is kept as a literal segment and an error wrapping
// ErrMalformedPattern is returned alongside.
func Compile(raw string) (Pattern, error) {
	normalizedPattern := strings.ReplaceAll(strings.TrimSpace(raw), "\\", segmentSeparator)
	compiled := Pattern{source: raw}
	if strings.HasPrefix(normalizedPattern, segmentSeparator) {
		compiled.anchored = true
		normalizedPattern = strings.TrimLeft(normalizedPattern, segmentSeparator)
	}
	if strings.HasSuffix(normalizedPattern, segmentSeparator) {
		compiled.directoryOnly = true
		normalizedPattern = strings.TrimRight(normalizedPattern, segmentSeparator)
	}

	var compileError error
	for _, part := range strings.Split(normalizedPattern, segmentSeparator) {
		if part == "" {
			continue
		}
		switch {
		case part == recursiveWildcard:
			compiled.segments = append(compiled.segments, segment{kind: segmentRecursive})
		case strings.ContainsAny(part, wildcardRunes):
			if _, matchError := path.Match(part, ""); matchError != nil {
				compiled.segments = append(compiled.segments, segment{kind: segmentLiteral, text: part})
				if compileError == nil {
					compileError = fmt.Errorf("%w %q: %v", ErrMalformedPattern, raw, matchError)
				}
				continue
			}
			compiled.segments = append(compiled.segments, segment{kind: segmentWildcard, text: part})
		default:
			compiled.segments = append(compiled.segments, segment{kind: segmentLiteral, text: part})
		}
	}
	if len(compiled.segments) > 1 {
		compiled.anchored = true
	}
	return compiled, compileError
}

// String returns the pattern as it was written.
func (compiled Pattern) String() string {
	return compiled.source
}

// Matches reports whether the file at relativePath matches the pattern.
func (compiled Pattern) Matches(relativePath string) bool {
	return compiled.matchPath(splitPath(relativePath), false)
}

// MatchesDirectory reports whether the directory at relativePath, or one of its ancestors, matches.
func (compiled Pattern) MatchesDirectory(relativePath string) bool {
	return compiled.matchPath(splitPath(relativePath), true)
}

// matchPath tries every allowed window of pathSegments. Windows ending before the last segment
// address ancestor directories; the full window addresses the entry itself.
func (compiled Pattern) matchPath(pathSegments []string, isDirectory bool) bool {
	segmentCount := len(pathSegments)
	if segmentCount == 0 || len(compiled.segments) == 0 {
		return false
	}
	lastStart := segmentCount - 1
	if compiled.anchored {
		lastStart = 0
	}
	for start := 0; start <= lastStart; start++ {
		for end := start + 1; end <= segmentCount; end++ {
			addressesFile := end == segmentCount && !isDirectory
			if addressesFile && compiled.directoryOnly {
				continue
			}
			if matchSequence(compiled.segments, pathSegments[start:end]) {
				return true
			}
		}
	}
	return false
}

func matchSequence(patternSegments []segment, pathSegments []string) bool {
	if len(patternSegments) == 0 {
		return len(pathSegments) == 0
	}
	head := patternSegments[0]
	if head.kind == segmentRecursive {
		for skipped := 0; skipped <= len(pathSegments); skipped++ {
			if matchSequence(patternSegments[1:], pathSegments[skipped:]) {
				return true
			}
		}
		return false
	}
	if len(pathSegments) == 0 || !head.matches(pathSegments[0]) {
		return false
	}
	return matchSequence(patternSegments[1:], pathSegments[1:])
}

func splitPath(relativePath string) []string {
	normalizedPath := strings.Trim(strings.ReplaceAll(relativePath, "\\", segmentSeparator), segmentSeparator)
	if normalizedPath == "" || normalizedPath == "." {
		return nil
	}
	parts := strings.Split(normalizedPath, segmentSeparator)
	pathSegments := parts[:0]
	for _, part := range parts {
		if part != "" && part != "." {
			pathSegments = append(pathSegments, part)
		}
	}
	return pathSegments
}
