package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"

	"github.com/rgonek/richtext-field/fieldtype"
	"github.com/rgonek/richtext-field/internal/derrors"
	"github.com/rgonek/richtext-field/logging"
)

const stdinPath = "-"

var (
	fromMarkdown bool
	writeBack    bool
	concurrency  int
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [files...]",
	Short: "Rewrite stored values into the current markup",
	Long: `migrate runs each file (or stdin) through the field's persistence path:
legacy figures are tagged and embeds rewritten, then the value is sanitized
with the purifier preset. Results are printed in argument order, or written
back to the files with --write.`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		defer derrors.Wrap(&err)

		field, _, logger, err := newField(cmd)
		if err != nil {
			return err
		}

		paths := args
		if len(paths) == 0 {
			if writeBack {
				return fmt.Errorf("--write needs file arguments")
			}
			paths = []string{stdinPath}
		}

		results, err := migrateFiles(cmd.Context(), field, paths, migrateOptions{
			FromMarkdown: fromMarkdown,
			Concurrency:  concurrency,
		})
		if err != nil {
			return err
		}

		if writeBack {
			return writeResults(results, logger)
		}
		return printResults(cmd.OutOrStdout(), results)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)

	migrateCmd.Flags().BoolVar(&fromMarkdown, "from-markdown", false, "Treat input as legacy Markdown content")
	migrateCmd.Flags().BoolVarP(&writeBack, "write", "w", false, "Write results back to the input files")
	migrateCmd.Flags().IntVarP(&concurrency, "concurrency", "j", 4, "Number of files processed in parallel")
}

type migrateOptions struct {
	FromMarkdown bool
	Concurrency  int
}

type fileResult struct {
	index    int
	Path     string
	Original string
	Migrated string
	Words    int
}

// Changed ignores surrounding whitespace, which serialization trims.
func (r fileResult) Changed() bool {
	return strings.TrimSpace(r.Original) != r.Migrated
}

// migrateFiles processes paths concurrently and returns results in argument order.
func migrateFiles(ctx context.Context, field *fieldtype.Field, paths []string, opts migrateOptions) ([]fileResult, error) {
	n := opts.Concurrency
	if n < 1 {
		n = 1
	}

	p := pool.NewWithResults[fileResult]().WithContext(ctx).WithMaxGoroutines(n)
	for i, path := range paths {
		p.Go(func(ctx context.Context) (fileResult, error) {
			data, err := readInput(path)
			if err != nil {
				return fileResult{}, fmt.Errorf("read %s: %w", path, err)
			}
			migrated, err := migrateContent(ctx, field, string(data), opts.FromMarkdown)
			if err != nil {
				return fileResult{}, fmt.Errorf("migrate %s: %w", path, err)
			}
			return fileResult{
				index:    i,
				Path:     path,
				Original: string(data),
				Migrated: migrated,
				Words:    fieldtype.NewValue(migrated).WordCount(),
			}, nil
		})
	}

	results, err := p.Wait()
	if err != nil {
		return nil, err
	}
	slices.SortFunc(results, func(a, b fileResult) int { return a.index - b.index })
	return results, nil
}

func migrateContent(ctx context.Context, field *fieldtype.Field, content string, markdown bool) (string, error) {
	value := fieldtype.NewValue(content)
	if markdown {
		imported, err := field.ImportMarkdown(ctx, content)
		if err != nil {
			return "", err
		}
		value = imported
	}
	return field.SerializeValue(ctx, value), nil
}

func printResults(w io.Writer, results []fileResult) error {
	for _, r := range results {
		if len(results) > 1 {
			if _, err := fmt.Fprintf(w, "==> %s <==\n", r.Path); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, r.Migrated); err != nil {
			return err
		}
	}
	return nil
}

func writeResults(results []fileResult, logger logging.Logger) error {
	for _, r := range results {
		if !r.Changed() {
			logger.Debug("rtfield.migrate.unchanged", "path", r.Path)
			continue
		}
		info, err := os.Stat(r.Path)
		if err != nil {
			return err
		}
		out := r.Migrated
		if strings.HasSuffix(r.Original, "\n") {
			out += "\n"
		}
		if err := os.WriteFile(r.Path, []byte(out), info.Mode().Perm()); err != nil {
			return fmt.Errorf("write %s: %w", r.Path, err)
		}
		logger.Info("rtfield.migrate.written", "path", r.Path, "words", r.Words)
	}
	return nil
}
