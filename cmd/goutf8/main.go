package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/reoring/goutf8/i18n"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("goutf8")

func main() {
	var (
		verbosity int
		lang      string
	)

	rootCmd := &cobra.Command{
		Use:   "goutf8",
		Short: "Inspect byte streams with an incremental UTF-8 parser",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbosity, nil)
			i18n.SetLanguage(lang)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "add a log verbosity level (can be used twice)")
	rootCmd.PersistentFlags().StringVar(&lang, "lang", "en", "issue message language (en or ja)")

	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newDumpCmd())
	rootCmd.AddCommand(newClassifyCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
