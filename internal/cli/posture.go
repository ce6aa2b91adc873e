package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newPostureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "posture",
		Short: "Compliance posture assessment",
	}

	cmd.AddCommand(newFrameworksCmd())
	cmd.AddCommand(newScoreCmd())
	cmd.AddCommand(newDomainsCmd())
	cmd.AddCommand(newFindingsCmd())
	cmd.AddCommand(newOverviewCmd())
	cmd.AddCommand(newTrendCmd())

	return cmd
}

func newFrameworksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "frameworks",
		Short: "List frameworks with their scores",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			summaries, err := rt.posture.ListFrameworks(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list frameworks: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(summaries)
			}

			table := NewTable("KEY", "NAME", "SCORE", "STATUS", "CONTROLS")
			for _, s := range summaries {
				score := strconv.Itoa(s.Scorecard.Score) + "%"
				if s.EffectiveScore != nil {
					score = fmt.Sprintf("%d%% (%d%% effective)", s.Scorecard.Score, *s.EffectiveScore)
				}
				table.AddRow(
					s.Key,
					s.Name,
					score,
					formatStatus(s.Scorecard.Status),
					fmt.Sprintf("%d/%d", s.Scorecard.Passed, s.Scorecard.TotalControls),
				)
			}
			table.Render()
			return nil
		},
	}
}

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <framework>",
		Short: "Show one framework's scorecard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			summary, err := rt.posture.GetFramework(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to score framework: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(summary)
			}

			fmt.Printf("%s (%s)\n", summary.Name, summary.FullName)
			fmt.Printf("  Score:    %d%%\n", summary.Scorecard.Score)
			fmt.Printf("  Status:   %s\n", formatStatus(summary.Scorecard.Status))
			fmt.Printf("  Controls: %d passed, %d failed of %d\n",
				summary.Scorecard.Passed, summary.Scorecard.Failed, summary.Scorecard.TotalControls)
			if summary.EffectiveScore != nil {
				fmt.Printf("  Effective: %d%% (%s) counting applied fixes\n",
					*summary.EffectiveScore, summary.EffectiveStatus)
			}
			return nil
		},
	}
}

func newDomainsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "domains <framework>",
		Short: "List a framework's domains",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			domains, err := rt.posture.Domains(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list domains: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(domains)
			}

			table := NewTable("DOMAIN", "CONTROLS", "PASSED", "FAILED", "N/A", "PERCENT")
			for _, d := range domains {
				table.AddRow(
					truncate(d.Name, 50),
					strconv.Itoa(d.Controls),
					strconv.Itoa(d.Passed),
					strconv.Itoa(d.Failed),
					strconv.Itoa(d.NA),
					strconv.Itoa(d.DisplayPercent)+"%",
				)
			}
			table.Render()
			return nil
		},
	}
}

func newFindingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "findings <framework>",
		Short: "List a framework's findings with workflow state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			findings, err := rt.posture.Findings(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list findings: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(findings)
			}

			table := NewTable("ID", "CONTROL", "SEVERITY", "STATUS", "WORKFLOW", "TITLE")
			for _, f := range findings {
				table.AddRow(
					f.ID,
					f.Control,
					formatSeverity(f.Severity),
					formatStatus(f.DisplayStatus),
					string(f.WorkflowState),
					truncate(f.Title, 50),
				)
			}
			table.Render()
			return nil
		},
	}
}

func newOverviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show posture overview across all frameworks",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			ov, err := rt.posture.Overview(context.Background())
			if err != nil {
				return fmt.Errorf("failed to build overview: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(ov)
			}

			fmt.Printf("Frameworks:      %d (%d compliant)\n", ov.Frameworks, ov.Compliant)
			fmt.Printf("Average score:   %d%%\n", ov.AverageScore)
			fmt.Printf("Overall:         %d/%d controls (%d%%)\n", ov.TotalPassed, ov.TotalControls, ov.OverallPercent)
			fmt.Println("Open findings:")
			for _, sev := range []string{"critical", "high", "medium", "low", "info"} {
				if n := ov.OpenBySeverity[sev]; n > 0 {
					fmt.Printf("  %-20s %d\n", formatSeverity(sev), n)
				}
			}
			return nil
		},
	}
}

func newTrendCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "trend <framework>",
		Short: "Show recorded posture snapshots, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			points, err := rt.posture.Trend(context.Background(), args[0], limit)
			if err != nil {
				return fmt.Errorf("failed to load trend: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(points)
			}

			table := NewTable("TAKEN AT", "SCORE")
			for _, p := range points {
				table.AddRow(p.TakenAt.Format("2006-01-02 15:04:05"), strconv.Itoa(p.Score)+"%")
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 30, "maximum number of snapshots")
	return cmd
}
