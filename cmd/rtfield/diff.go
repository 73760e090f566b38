package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/rgonek/richtext-field/internal/derrors"
)

var diffCmd = &cobra.Command{
	Use:   "diff [files...]",
	Short: "Show how migrate would change stored values",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		defer derrors.Wrap(&err)

		field, _, _, err := newField(cmd)
		if err != nil {
			return err
		}

		paths := args
		if len(paths) == 0 {
			paths = []string{stdinPath}
		}

		results, err := migrateFiles(cmd.Context(), field, paths, migrateOptions{
			FromMarkdown: fromMarkdown,
			Concurrency:  concurrency,
		})
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		changed := 0
		for _, r := range results {
			if !r.Changed() {
				continue
			}
			changed++
			if err := writeDiff(w, r.Path, r.Original, r.Migrated); err != nil {
				return err
			}
		}
		_, err = fmt.Fprintf(w, "%d changed, %d unchanged\n", changed, len(results)-changed)
		return err
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)

	diffCmd.Flags().BoolVar(&fromMarkdown, "from-markdown", false, "Treat input as legacy Markdown content")
	diffCmd.Flags().IntVarP(&concurrency, "concurrency", "j", 4, "Number of files processed in parallel")
}

// lineDiff renders a line-oriented diff of before and after.
func lineDiff(before, after string) string {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = time.Second
	a, b, lines := dmp.DiffLinesToRunes(withTrailingNewline(before), withTrailingNewline(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(a, b, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix)
			sb.WriteString(line)
		}
	}
	return sb.String()
}

func writeDiff(w io.Writer, path, before, after string) error {
	_, err := fmt.Fprintf(w, "--- %s\n+++ %s (migrated)\n%s", path, path, lineDiff(before, after))
	return err
}

func withTrailingNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
