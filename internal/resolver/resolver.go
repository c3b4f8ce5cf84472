package resolver

import (
	"errors"
	"regexp"
	"strings"
)

// argPattern recognizes an optional "-i <code>" prefix, an optional
// "-o <code>" after it, and captures whatever remains as the text to
// translate. Codes match lowercase ASCII letters only, so hyphenated codes
// such as zh-CN can only arrive through the environment defaults.
var argPattern = regexp.MustCompile(`^(-i (?P<input_language>[a-z]+))?(\s*-o (?P<output_language>[a-z]+))?(?P<text>.*)$`)

// ErrHelp reports that --help appeared somewhere in the arguments.
var ErrHelp = errors.New("help requested")

// Resolution failures. The error text is the exact line shown to the user.
var (
	ErrNoSourceLang = errors.New("No input language provided. Type --help to see allowed languages")
	ErrNoTargetLang = errors.New("No output language provided. Type --help to see allowed languages")
)

// Defaults carries the environment-derived language codes used when the
// command line does not override them.
type Defaults struct {
	SourceLang string
	TargetLang string
}

// Request is a fully resolved translation request, not yet checked against
// the supported language list.
type Request struct {
	SourceLang string
	TargetLang string
	Text       string
}

// Resolve merges the defaults with command-line overrides into a Request.
// The arguments are joined into a single string before matching, so flags
// appearing after the text has started are treated as part of the text.
func Resolve(args []string, defaults Defaults) (Request, error) {
	joined := strings.Join(args, " ")

	if strings.Contains(joined, "--help") {
		return Request{}, ErrHelp
	}

	req := Request{
		SourceLang: defaults.SourceLang,
		TargetLang: defaults.TargetLang,
	}

	if m := argPattern.FindStringSubmatch(joined); m != nil {
		if code := m[argPattern.SubexpIndex("input_language")]; code != "" {
			req.SourceLang = code
		}
		if code := m[argPattern.SubexpIndex("output_language")]; code != "" {
			req.TargetLang = code
		}
		req.Text = strings.TrimSpace(m[argPattern.SubexpIndex("text")])
	}

	if req.SourceLang == "" {
		return Request{}, ErrNoSourceLang
	}
	if req.TargetLang == "" {
		return Request{}, ErrNoTargetLang
	}

	return req, nil
}
