package commands

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/temirov/code2clipboard/internal/types"
)

func TestSkipWarningClassifiesErrors(testingHandle *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected types.SkipReason
	}{
		{name: "permission", err: &fs.PathError{Op: "open", Path: "a.txt", Err: fs.ErrPermission}, expected: types.SkipReasonPermission},
		{name: "vanished", err: &fs.PathError{Op: "open", Path: "a.txt", Err: fs.ErrNotExist}, expected: types.SkipReasonVanished},
		{name: "other", err: errors.New("i/o error"), expected: types.SkipReasonUnreadable},
	}
	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(testingHandle *testing.T) {
			warning := skipWarning("a.txt", testCase.err)
			if warning.Reason != testCase.expected || warning.Path != "a.txt" || !errors.Is(warning.Err, testCase.err) {
				testingHandle.Fatalf("unexpected warning %+v", warning)
			}
		})
	}
}
