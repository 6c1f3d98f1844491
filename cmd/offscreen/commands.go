package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"offscreen/internal/deck"
	"offscreen/internal/pool"
	"offscreen/internal/session"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories and the size of their task pools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, catalog, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			printCategories(cmd.OutOrStdout(), catalog)
			return nil
		},
	}
}

func printCategories(w io.Writer, catalog *pool.Catalog) {
	for _, c := range catalog.Categories() {
		size := plural(catalog.Size(c.Key), "task")
		if c.Random {
			size += ", drawn from every category"
		}
		fmt.Fprintf(w, "%s  %s  %s\n", boldCyan(c.Key), c.Title, dim("("+size+")"))
	}
}

func drawCmd() *cobra.Command {
	var (
		flagComplete int
		flagDefer    int
	)

	cmd := &cobra.Command{
		Use:   "draw <category>",
		Short: "Draw today's deck for a category and print it",
		Long: `Draw shuffles the category's pool and deals the daily deck, then applies
--defer and --complete (in that order) to show where the deck ends up.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, catalog, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			cat, err := catalog.Require(args[0])
			if err != nil {
				return fmt.Errorf("%w (try: %s)", err, strings.Join(categoryKeys(catalog), ", "))
			}

			rec, err := newRecorder(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer shutdownRecorder(rec)

			ctrl := session.New(cmd.Context(), session.Options{
				Category: cat.Key,
				Pools:    catalog,
				Limit:    cfg.DailyLimit,
				Shuffler: newShuffler(cfg.Seed),
				Recorder: rec,
			})
			for range flagDefer {
				ctrl.Defer()
			}
			for range flagComplete {
				ctrl.Complete()
			}
			sum := ctrl.Close()
			printDeck(cmd.OutOrStdout(), cat.Title, ctrl.Snapshot(), sum)
			return nil
		},
	}

	cmd.Flags().IntVar(&flagComplete, "complete", 0, "Mark this many cards done")
	cmd.Flags().IntVar(&flagDefer, "defer", 0, "Push this many cards to later first")
	return cmd
}

func printDeck(w io.Writer, title string, snap deck.Snapshot, sum session.Summary) {
	fmt.Fprintf(w, "%s  %s\n", bold(title), dim(fmt.Sprintf("drew %d, limit %d", snap.Drawn, snap.Limit)))
	for i, task := range snap.Tasks {
		marker := "  "
		line := task
		if i == snap.CurrentIndex {
			marker = green("▸ ")
			line = bold(task)
		}
		fmt.Fprintf(w, "%s%d. %s\n", marker, i+1, line)
	}
	if len(snap.Tasks) == 0 {
		fmt.Fprintln(w, dim("  (no cards left)"))
	}

	state := snap.State.String()
	switch snap.State {
	case deck.StateQuotaMet:
		state = boldGreen(state)
	case deck.StateEmpty:
		state = yellow(state)
	default:
		state = cyan(state)
	}
	fmt.Fprintf(w, "state: %s  completed: %d/%d  outcome: %s\n", state, sum.Completed, sum.Limit, sum.Outcome)
}

func categoryKeys(c *pool.Catalog) []string {
	cats := c.Categories()
	keys := make([]string, len(cats))
	for i, cat := range cats {
		keys[i] = cat.Key
	}
	return keys
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
