package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/jumpforge/internal/storage"
)

var flagLimit int

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "Show recorded runs",
	Long: `Without arguments, list the most recent generation runs. With a run
ID, list every variant recorded for that run.

Examples:
  jumpforge history
  jumpforge history --limit 5
  jumpforge history 12`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show acceptance per recipe",
	Long:  `Aggregate accepted and rejected variants per recipe across all recorded runs.`,
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of runs to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 1 {
		runID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid run ID %q", args[0])
		}
		return showRun(store, runID)
	}

	runs, err := store.RecentRuns(flagLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'jumpforge generate' to record the first one.")
		return nil
	}

	rows := make([]table.Row, 0, len(runs))
	for _, r := range runs {
		finished := "-"
		if !r.FinishedAt.IsZero() {
			finished = r.FinishedAt.Format("2006-01-02 15:04")
		}
		rows = append(rows, table.Row{
			strconv.FormatInt(r.ID, 10),
			strconv.FormatInt(r.Seed, 10),
			r.StartedAt.Format("2006-01-02 15:04"),
			finished,
			strconv.Itoa(r.Accepted),
			strconv.Itoa(r.Rejected),
		})
	}

	fmt.Println(renderTable([]table.Column{
		{Title: "Run", Width: 5},
		{Title: "Seed", Width: 20},
		{Title: "Started", Width: 16},
		{Title: "Finished", Width: 16},
		{Title: "OK", Width: 5},
		{Title: "Rejected", Width: 8},
	}, rows))
	return nil
}

func showRun(store *storage.Store, runID int64) error {
	run, err := store.RunByID(runID)
	if err != nil {
		return err
	}
	if run == nil {
		return fmt.Errorf("run %d not found", runID)
	}

	results, err := store.RunResults(runID)
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("Run #%d (seed %d)", run.ID, run.Seed)))
	if len(results) == 0 {
		fmt.Println("No results recorded.")
		return nil
	}

	rows := make([]table.Row, 0, len(results))
	for _, e := range results {
		verdict := "PASS"
		detail := fmt.Sprintf("%d obstacles", e.Obstacles)
		if !e.Valid {
			verdict = "FAIL"
			detail = fmt.Sprintf("[%s] at %d: %s", e.Code, e.FailureIndex, e.Reason)
		}
		rows = append(rows, table.Row{e.Slug, e.Difficulty, verdict, detail})
	}

	detailWidth := max(30, terminalWidth(100)-60)
	fmt.Println(renderTable([]table.Column{
		{Title: "Slug", Width: 26},
		{Title: "Difficulty", Width: 10},
		{Title: "Verdict", Width: 7},
		{Title: "Detail", Width: detailWidth},
	}, rows))
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	stats, err := store.RecipeStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No results recorded yet.")
		return nil
	}

	rows := make([]table.Row, 0, len(stats))
	for _, st := range stats {
		total := st.Accepted + st.Rejected
		rate := 0.0
		if total > 0 {
			rate = 100 * float64(st.Accepted) / float64(total)
		}
		last := st.LastCode
		if last == "" {
			last = "-"
		}
		rows = append(rows, table.Row{
			st.RecipeID,
			strconv.Itoa(st.Accepted),
			strconv.Itoa(st.Rejected),
			fmt.Sprintf("%.0f%%", rate),
			last,
		})
	}

	fmt.Println(renderTable([]table.Column{
		{Title: "Recipe", Width: 18},
		{Title: "OK", Width: 6},
		{Title: "Rejected", Width: 8},
		{Title: "Rate", Width: 5},
		{Title: "Last failure", Width: 22},
	}, rows))
	return nil
}

// renderTable renders a static, unfocused table sized to its rows.
func renderTable(cols []table.Column, rows []table.Row) string {
	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2), // header plus its border
		table.WithFocused(false),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)

	return t.View()
}
