package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rocky01/crust/internal/errors"
	"github.com/rocky01/crust/internal/token"
	"github.com/rocky01/crust/internal/translator"
	"github.com/rocky01/crust/pkg/emit"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	translateEval   string
	translateFlat   bool
	translateTokens bool
	translateSource string
)

var translateCmd = &cobra.Command{
	Use:   "translate [file]",
	Short: "Translate a JSON-encoded C/C++ token stream to Rust",
	Long: `Translate reads a token stream (a JSON array of {base, type, value,
line, column} objects, produced upstream by a C/C++ lexer) and prints
the equivalent Rust token stream.

Examples:
  # Translate a token stream stored in a file
  crust translate tokens.json

  # Translate inline JSON
  crust translate -e '[{"base":"DATATYPE","type":"PRIMITIVE_INT32", ...}]'

  # Read from stdin
  cat tokens.json | crust translate`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&translateEval, "eval", "e", "", "translate inline JSON instead of reading from a file")
	translateCmd.Flags().BoolVar(&translateFlat, "flat", false, "emit a single flat line instead of indented Rust")
	translateCmd.Flags().BoolVar(&translateTokens, "dump-tokens", false, "print the decoded input tokens instead of translating")
	translateCmd.Flags().StringVar(&translateSource, "source", "", "original C/C++ source file, used for caret diagnostics")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	configureLogging(cmd)

	raw, filename, err := readTranslateInput(args)
	if err != nil {
		return err
	}

	var wire []token.WireToken
	if err := json.Unmarshal(raw, &wire); err != nil {
		return fmt.Errorf("decoding token stream from %s: %w", filename, err)
	}

	tokens, err := token.DecodeAll(wire)
	if err != nil {
		return fmt.Errorf("decoding token stream from %s: %w", filename, err)
	}
	log.WithField("count", len(tokens)).Debug("decoded token stream")

	if translateTokens {
		for _, t := range tokens {
			fmt.Printf("[%s/%s] %q @%d:%d\n", t.Base, t.Type, t.Value, t.Pos.Line, t.Pos.Column)
		}
		return nil
	}

	tr := translator.New()
	out := tr.Translate(tokens)
	log.WithFields(logrus.Fields{
		"fragments": len(out),
		"errors":    len(tr.Errors()),
	}).Debug("translation complete")

	if errs := tr.Errors(); len(errs) > 0 {
		reportTranslateErrors(errs)
	}

	if translateFlat {
		fmt.Println(emit.Join(out))
	} else {
		fmt.Print(emit.JoinLines(out))
	}
	return nil
}

// reportTranslateErrors prints the translator's accumulated diagnostics
// to stderr. When --source names the original C/C++ file, the
// diagnostics render with source context and a caret; otherwise each
// prints as a plain one-liner.
func reportTranslateErrors(errs []*translator.Error) {
	if translateSource == "" {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		return
	}

	source, err := os.ReadFile(translateSource)
	if err != nil {
		log.WithField("file", translateSource).Warn("could not read source file for diagnostics")
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		return
	}

	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	diags := errors.FromTranslatorErrors(msgs, string(source), translateSource)
	fmt.Fprint(os.Stderr, errors.FormatErrors(diags, true))
	fmt.Fprintln(os.Stderr)
}

func readTranslateInput(args []string) ([]byte, string, error) {
	if translateEval != "" {
		return []byte(translateEval), "<eval>", nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return nil, "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return content, args[0], nil
	}
	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return content, "<stdin>", nil
}
