package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	csslex "go.csslex.dev/pkg"
)

var (
	strict bool
	legacy bool
	size   int
	debug  string
)

func init() {
	rootCmd.Flags().BoolVarP(&strict, "strict", "s", false, "stop at the first parse error")
	rootCmd.Flags().BoolVar(&legacy, "legacy", false, "enable the historical token kinds")
	rootCmd.Flags().IntVar(&size, "size", csslex.DefaultSize, "expected input length in code points")
	rootCmd.Flags().StringVar(&debug, "debug", "", `debugging mode ("lexing" logs every token)`)
}

var rootCmd = &cobra.Command{
	Use:   "csslex <file>...",
	Short: "Tokenize CSS files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d := csslex.NewDriver(
			csslex.Recovery(!strict),
			csslex.Legacy(legacy),
			csslex.Size(size),
			csslex.Debug(debug),
		)

		results, err := d.Run(args...)
		if err != nil {
			return err
		}

		failed := false
		for _, res := range results {
			dump(res)
			if len(res.Errors) > 0 {
				failed = true
			}
		}

		if failed {
			os.Exit(1)
		}
		return nil
	},
}

func dump(res csslex.Result) {
	fmt.Printf("%s:\n", res.Path)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "IDX\tKIND\tPOS\tSOURCE\tVALUE")
	for _, i := range res.Lex.Tokens() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			i, res.Lex.Kind(i), res.Lex.Origin(i),
			strconv.Quote(string(res.Lex.Source(i))), value(res.Lex, i))
	}
	w.Flush()

	for _, e := range res.Errors {
		fmt.Fprintln(os.Stderr, e)
	}
}

func value(l *csslex.Tokenizer, i int) string {
	switch l.Kind(i) {
	case csslex.TokenIdent, csslex.TokenFunction, csslex.TokenAtKeyword,
		csslex.TokenString, csslex.TokenURL:
		return string(l.StringValue(i))
	case csslex.TokenHash:
		if l.HashIsID(i) {
			return string(l.StringValue(i)) + " (id)"
		}
		return string(l.StringValue(i))
	case csslex.TokenDelim:
		return string(l.Delim(i))
	case csslex.TokenNumber, csslex.TokenPercentage:
		v, _ := l.NumericValue(i)
		return strconv.FormatFloat(v, 'g', -1, 64)
	case csslex.TokenDimension:
		v, _ := l.NumericValue(i)
		return strconv.FormatFloat(v, 'g', -1, 64) + " " + string(l.Unit(i))
	case csslex.TokenUnicodeRange:
		lo, hi := l.Range(i)
		return fmt.Sprintf("U+%X-%X", lo, hi)
	default:
		return ""
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
