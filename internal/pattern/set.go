package pattern

// Set holds the include and exclude patterns of one run.
// An empty include list selects every path; exclusion always wins over inclusion.
type Set struct {
	include []Pattern
	exclude []Pattern
}

// NewSet compiles both pattern lists. Malformed patterns are still added, matched literally,
// and reported in the returned slice.
func NewSet(includePatterns []string, excludePatterns []string) (Set, []error) {
	var compileErrors []error
	compileAll := func(rawPatterns []string) []Pattern {
		compiledPatterns := make([]Pattern, 0, len(rawPatterns))
		for _, rawPattern := range rawPatterns {
			compiled, compileError := Compile(rawPattern)
			if compileError != nil {
				compileErrors = append(compileErrors, compileError)
			}
			compiledPatterns = append(compiledPatterns, compiled)
		}
		return compiledPatterns
	}
	set := Set{
		include: compileAll(includePatterns),
		exclude: compileAll(excludePatterns),
	}
	return set, compileErrors
}

// Included reports whether relativePath matches the include list.
func (set Set) Included(relativePath string) bool {
	if len(set.include) == 0 {
		return true
	}
	for _, compiled := range set.include {
		if compiled.Matches(relativePath) {
			return true
		}
	}
	return false
}

// Excluded reports whether relativePath matches any exclude pattern.
func (set Set) Excluded(relativePath string) bool {
	for _, compiled := range set.exclude {
		if compiled.Matches(relativePath) {
			return true
		}
	}
	return false
}

// Selects reports whether the file at relativePath is included and not excluded.
func (set Set) Selects(relativePath string) bool {
	return set.Included(relativePath) && !set.Excluded(relativePath)
}

// ExcludesDirectory reports whether the whole subtree at relativeDirectory is excluded.
func (set Set) ExcludesDirectory(relativeDirectory string) bool {
	for _, compiled := range set.exclude {
		if compiled.MatchesDirectory(relativeDirectory) {
			return true
		}
	}
	return false
}
