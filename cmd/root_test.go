package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/valpere/gtran/internal/resolver"
	"github.com/valpere/gtran/internal/validator"
)

// clearEnv points HOME at an empty directory and blanks every variable the
// tool reads, so each test declares exactly the environment it wants.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GT_INPUT_LANGUAGE", "")
	t.Setenv("GT_OUTPUT_LANGUAGE", "")
	t.Setenv("GOOGLE_ACCESS_KEY", "")
	t.Setenv("GT_LOG_LEVEL", "")
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	if args == nil {
		args = []string{}
	}

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestExecuteHelp(t *testing.T) {
	clearEnv(t)

	out, err := runCommand(t, "--help")
	if !errors.Is(err, resolver.ErrHelp) {
		t.Fatalf("error = %v, want ErrHelp", err)
	}

	for _, want := range []string{
		"gtran -i <input_language> -o <output_language>",
		"GT_INPUT_LANGUAGE",
		"GT_OUTPUT_LANGUAGE",
		"GOOGLE_ACCESS_KEY",
		"The allowed languages are:",
		"Afrikaans - af",
		"Chinese (Simplified) - zh-CN or zh (BCP-47)",
		"Zulu - zu",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("help output missing %q", want)
		}
	}
}

func TestExecuteHelpBeforeValidation(t *testing.T) {
	clearEnv(t)

	// --help wins even when the language arguments are nonsense.
	out, err := runCommand(t, "-i", "xx", "-o", "yy", "--help")
	if !errors.Is(err, resolver.ErrHelp) {
		t.Fatalf("error = %v, want ErrHelp", err)
	}
	if strings.Contains(out, "not allowed") {
		t.Error("validation ran despite --help")
	}
}

func TestExecuteMissingInputLanguage(t *testing.T) {
	clearEnv(t)

	out, err := runCommand(t, "hello")
	if !errors.Is(err, resolver.ErrNoSourceLang) {
		t.Fatalf("error = %v, want ErrNoSourceLang", err)
	}
	if want := "No input language provided. Type --help to see allowed languages\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestExecuteMissingOutputLanguage(t *testing.T) {
	clearEnv(t)

	out, err := runCommand(t, "-i", "en", "hello")
	if !errors.Is(err, resolver.ErrNoTargetLang) {
		t.Fatalf("error = %v, want ErrNoTargetLang", err)
	}
	if want := "No output language provided. Type --help to see allowed languages\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestExecuteInvalidInputLanguage(t *testing.T) {
	clearEnv(t)

	out, err := runCommand(t, "-i", "xx", "-o", "fr", "hello")
	if !errors.Is(err, validator.ErrSourceNotAllowed) {
		t.Fatalf("error = %v, want ErrSourceNotAllowed", err)
	}
	if want := "Input language is not allowed. Type --help to see allowed languages\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestExecuteInvalidOutputLanguageFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("GT_INPUT_LANGUAGE", "en")
	t.Setenv("GT_OUTPUT_LANGUAGE", "FR")

	out, err := runCommand(t, "hello")
	if !errors.Is(err, validator.ErrTargetNotAllowed) {
		t.Fatalf("error = %v, want ErrTargetNotAllowed", err)
	}
	if want := "Output language is not allowed. Type --help to see allowed languages\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestExecuteMissingAccessKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("GT_INPUT_LANGUAGE", "en")
	t.Setenv("GT_OUTPUT_LANGUAGE", "fr")

	out, err := runCommand(t, "hello")
	if !errors.Is(err, errNoAccessKey) {
		t.Fatalf("error = %v, want errNoAccessKey", err)
	}
	if want := errNoAccessKey.Error() + "\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestHelpTextShape(t *testing.T) {
	text := helpText()

	if !strings.HasPrefix(text, "\nTo translate something") {
		t.Errorf("help text starts with %q", text[:40])
	}
	if !strings.HasSuffix(text, "Zulu - zu") {
		t.Error("help text does not end with the language table")
	}
}
