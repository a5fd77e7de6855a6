package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gravitrone/kbase/internal/browser"
	"github.com/gravitrone/kbase/internal/kb"
	"github.com/gravitrone/kbase/internal/render"
	"github.com/gravitrone/kbase/internal/search"
)

// SearchCmd returns the `kbase search` command.
func SearchCmd(flags *Flags) *cobra.Command {
	var section string
	var faq bool
	cmd := &cobra.Command{
		Use:   "search <query...>",
		Short: "Search the knowledge base from the command line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := flags.Env("")
			if err != nil {
				return err
			}
			defer env.Close()
			query := strings.Join(args, " ")

			if faq {
				entries, err := env.Loader.LoadFAQ(cmd.Context(), env.Config.FAQFile)
				if err != nil {
					return err
				}
				printFAQ(cmd.OutOrStdout(), entries, env.Table.Expander(), query)
				return nil
			}

			lib, err := env.Loader.Load(cmd.Context())
			if err != nil {
				return err
			}
			return printSections(cmd.OutOrStdout(), lib, env.Table.Templater(), env.Config.DisplayName, section, query)
		},
	}
	cmd.Flags().StringVar(&section, "section", "", "only search this section id")
	cmd.Flags().BoolVar(&faq, "faq", false, "search the frequently asked questions")
	return cmd
}

// printSections runs the query against every section, or just the named one,
// and prints the sections that have results.
func printSections(out io.Writer, lib *kb.Library, tpl search.Templater, name, only, query string) error {
	ids := make([]string, 0, len(lib.Sections))
	if only != "" {
		if _, ok := lib.Section(only); !ok {
			return fmt.Errorf("unknown section %q", only)
		}
		ids = append(ids, only)
	} else {
		for _, s := range lib.Sections {
			ids = append(ids, s.ID)
		}
	}

	total := 0
	for _, id := range ids {
		state := browser.New(lib)
		state.DisplayName = name
		if err := state.Select(id); err != nil {
			return err
		}
		state.SetGlobalQuery(query)
		panel := state.Panel(tpl)
		if len(panel.Cards) == 0 {
			continue
		}
		total += len(panel.Cards)

		fmt.Fprintf(out, "%s: %s\n", panel.Section.Title, panel.Meta)
		for _, card := range panel.Cards {
			fmt.Fprintf(out, "  • %s\n", render.Plain(card.TitleHTML))
			printIndented(out, render.Plain(card.ContentHTML))
		}
		fmt.Fprintln(out)
	}
	if total == 0 {
		fmt.Fprintf(out, "Sin resultados para: %q\n", query)
	}
	return nil
}

func printFAQ(out io.Writer, entries []kb.FAQEntry, expander search.Expander, query string) {
	faq := browser.NewFAQ(entries, expander)
	faq.Search(query)
	fmt.Fprintf(out, "%d pregunta(s)\n", faq.VisibleCount())
	for _, row := range faq.Rows() {
		if !row.Visible {
			continue
		}
		fmt.Fprintf(out, "\n  • %s\n", render.Plain(row.TitleHTML))
		printIndented(out, render.Plain(row.BodyHTML))
	}
}

func printIndented(out io.Writer, text string) {
	for _, line := range strings.Split(text, "\n") {
		fmt.Fprintf(out, "    %s\n", line)
	}
}
