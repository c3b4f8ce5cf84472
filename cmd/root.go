/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/valpere/gtran/internal/config"
	"github.com/valpere/gtran/internal/logging"
	"github.com/valpere/gtran/internal/resolver"
	"github.com/valpere/gtran/internal/translator"
	"github.com/valpere/gtran/internal/validator"
)

var version = "0.1.0"

var errNoAccessKey = errors.New("A Google access key is required. See this for how to create one: https://cloud.google.com/translate/docs/setup")

// The argument grammar is a single pattern over the raw argument string
// (including the --help substring check), so cobra must hand the arguments
// through untouched.
var rootCmd = &cobra.Command{
	Use:     "gtran [-i <input_language>] [-o <output_language>] <text to translate>",
	Short:   "Google Translate command-line client",
	Version: version,

	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},

	RunE: run,
}

func init() {
	cobra.OnInitialize(config.Init)
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)
	out := cmd.OutOrStdout()

	req, err := resolver.Resolve(args, resolver.Defaults{
		SourceLang: cfg.SourceLang,
		TargetLang: cfg.TargetLang,
	})
	if errors.Is(err, resolver.ErrHelp) {
		fmt.Fprintln(out, helpText())
		return err
	}
	if err != nil {
		fmt.Fprintln(out, err)
		return err
	}

	logger.Debug().
		Str("source", req.SourceLang).
		Str("target", req.TargetLang).
		Int("text_length", len(req.Text)).
		Msg("request resolved")

	if err := validator.Validate(req.SourceLang, req.TargetLang); err != nil {
		fmt.Fprintln(out, err)
		return err
	}

	if cfg.AccessKey == "" {
		fmt.Fprintln(out, errNoAccessKey)
		return errNoAccessKey
	}

	svc := translator.NewGoogleService(cfg.AccessKey, logger)
	translated, err := svc.Translate(cmd.Context(), translator.Request{
		Text:       req.Text,
		SourceLang: req.SourceLang,
		TargetLang: req.TargetLang,
	})

	var apiErr *translator.APIError
	if errors.As(err, &apiErr) {
		// The provider answered but without a translation. Reported, not
		// fatal: the process still exits 0.
		fmt.Fprintf(out, "There was the following error with the API call: %s\n", apiErr.Detail)
		return nil
	}
	if err != nil {
		fmt.Fprintf(out, "There was the following error with the API call: %v\n", err)
		return err
	}

	fmt.Fprintln(out, translated)
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
