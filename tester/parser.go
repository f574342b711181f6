package tester

import (
	"bufio"
	"errors"
	"io"

	verr "github.com/rokkenjima/bnfcheck/error"
)

// ErrMissingVerdict reports a candidate word occurring before the
// first verdict directive. Fatal for the whole test file.
var ErrMissingVerdict = errors.New("a test file must begin with a [true] or [false] verdict directive")

const (
	directiveTrue  = "[true]"
	directiveFalse = "[false]"
)

// TestCase is one candidate word together with the verdict the
// preceding directive promised.
type TestCase struct {
	Word     string
	Expected bool
	Row      int
}

// ParseTestCases reads the verdict-directive format: lines [true] and
// [false] toggle the expected verdict, every other line is a candidate
// word. An empty line is a candidate for the empty word.
func ParseTestCases(src io.Reader) ([]*TestCase, error) {
	var cases []*TestCase
	s := bufio.NewScanner(src)
	haveVerdict := false
	verdict := false
	row := 0
	for s.Scan() {
		row++
		line := s.Text()
		switch line {
		case directiveTrue:
			haveVerdict = true
			verdict = true
			continue
		case directiveFalse:
			haveVerdict = true
			verdict = false
			continue
		}
		if !haveVerdict {
			return nil, &verr.SpecError{
				Cause: ErrMissingVerdict,
				Row:   row,
			}
		}
		cases = append(cases, &TestCase{
			Word:     line,
			Expected: verdict,
			Row:      row,
		})
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return cases, nil
}
