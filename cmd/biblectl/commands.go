package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/warrenjonahb/bible-study-app/internal/domain"
)

func newBooksCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "books",
		Short: "List the books of the canon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			books := c.svc.ListBooks()
			if c.jsonOut {
				out := make([]bookView, len(books))
				for i, b := range books {
					out[i] = bookView{ID: b.ID, Name: b.Name, OSIS: b.OSIS}
				}
				return printJSON(cmd.OutOrStdout(), out)
			}

			w := cmd.OutOrStdout()
			for _, b := range books {
				fmt.Fprintf(w, "%2d  %-16s %s\n", b.ID, b.Name, b.OSIS)
			}
			return nil
		},
	}
}

func newChaptersCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "chapters <book>",
		Short: "List the chapters of a book",
		Example: `  biblectl chapters 43
  biblectl chapters John`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := c.svc.ResolveBook(args[0])
			if err != nil {
				return notFound(err, "unknown book %q", args[0])
			}

			list, err := c.svc.ListChapters(cmd.Context(), book.ID)
			if err != nil {
				return notFound(err, "%s has no verses in this store", book.Name)
			}

			if c.jsonOut {
				return printJSON(cmd.OutOrStdout(), chaptersView{Book: book.ID, Chapters: list.Chapters})
			}

			nums := make([]string, len(list.Chapters))
			for i, n := range list.Chapters {
				nums[i] = strconv.Itoa(n)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d chapters\n%s\n", book.Name, len(nums), strings.Join(nums, " "))
			return nil
		},
	}
}

func newVersesCmd(c *cli) *cobra.Command {
	var showStrongs bool

	cmd := &cobra.Command{
		Use:   "verses <book> <chapter>",
		Short: "Print the annotated verses of a chapter",
		Example: `  biblectl verses John 1
  biblectl verses Gen 1 --strongs
  biblectl verses 43 3 --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := c.svc.ResolveBook(args[0])
			if err != nil {
				return notFound(err, "unknown book %q", args[0])
			}
			chapter, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("chapter must be an integer, got %q", args[1])
			}

			ch, err := c.svc.ListVerses(cmd.Context(), book.ID, chapter)
			if err != nil {
				return notFound(err, "%s %d not found", book.Name, chapter)
			}

			if c.jsonOut {
				return printJSON(cmd.OutOrStdout(), toChapterView(ch))
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s %d\n\n", book.Name, chapter)
			for _, v := range ch.Verses {
				fmt.Fprintf(w, "%3d  %s\n", v.Number, renderWords(v.Words, showStrongs))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showStrongs, "strongs", "s", false, "append Strong's codes to tagged words")
	return cmd
}

func newLookupCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <code>",
		Short: "Show a Strong's lexicon entry",
		Example: `  biblectl lookup G2316
  biblectl lookup h430`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := c.svc.LookupStrongs(args[0])
			if err != nil {
				return notFound(err, "no lexicon entry for %s", strings.ToUpper(args[0]))
			}

			view := toEntryView(entry)
			if c.jsonOut {
				return printJSON(cmd.OutOrStdout(), view)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s  %s", view.Code, deref(view.Lemma))
			if view.Translit != nil {
				fmt.Fprintf(w, " (%s)", *view.Translit)
			}
			fmt.Fprintln(w)
			if view.Def != nil {
				fmt.Fprintf(w, "  definition: %s\n", *view.Def)
			}
			if view.KJVDef != nil {
				fmt.Fprintf(w, "  kjv:        %s\n", *view.KJVDef)
			}
			return nil
		},
	}
}

// notFound rewrites domain.ErrNotFound into a user-facing message and passes
// every other error through.
func notFound(err error, format string, args ...any) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf(format, args...)
	}
	return err
}

func renderWords(words []domain.AnnotatedWord, strongs bool) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = w.Text
		if strongs && w.Strongs != nil {
			parts[i] += "[" + *w.Strongs + "]"
		}
	}
	return strings.Join(parts, " ")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
