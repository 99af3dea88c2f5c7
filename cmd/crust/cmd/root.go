package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "crust",
	Short: "Syntax-directed C/C++ to Rust token translator",
	Long: `crust translates a C/C++ token stream into the equivalent Rust token
stream using a recursive, syntax-directed translator core.

It accepts an external tokenizer's output (JSON-encoded tokens, one
array per translation unit) and recursively classifies and re-emits
each construct it recognizes: declarations, functions, control flow,
expressions, and assignments. It does not parse raw source text and
does not perform semantic analysis, it is a best-effort translator
over an accepted subset of the language, not a compiler.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose logging")
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
}

func configureLogging(cmd *cobra.Command) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
