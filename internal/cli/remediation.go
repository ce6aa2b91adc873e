package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newRemediationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remediation",
		Short: "Remediation workflow for failing findings",
	}

	cmd.AddCommand(newRemediationAcceptCmd())
	cmd.AddCommand(newRemediationApplyCmd())
	cmd.AddCommand(newRemediationApplyAllCmd())
	cmd.AddCommand(newRemediationStatusCmd())
	cmd.AddCommand(newRemediationResetCmd())

	return cmd
}

func newRemediationAcceptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accept <framework> <finding>",
		Short: "Accept a finding's recommendation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			ctx := context.Background()
			wf, err := rt.workflows.For(ctx, args[0])
			if err != nil {
				return err
			}
			state, err := wf.Accept(ctx, args[1], getActor())
			if err != nil {
				return fmt.Errorf("failed to accept recommendation: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(state)
			}
			fmt.Printf("Finding %s accepted by %s\n", args[1], state.Acceptance.Actor)
			return nil
		},
	}
}

func newRemediationApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply <framework> <finding>",
		Short: "Apply an accepted finding's fix",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			ctx := context.Background()
			wf, err := rt.workflows.For(ctx, args[0])
			if err != nil {
				return err
			}
			state, err := wf.Apply(ctx, args[1], getActor())
			if err != nil {
				return fmt.Errorf("failed to apply fix: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(state)
			}
			fmt.Printf("Finding %s fixed (%s)\n", args[1], state.Application.FixType)
			return nil
		},
	}
}

func newRemediationApplyAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply-all <framework> [finding...]",
		Short: "Apply fixes for all accepted findings",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			ctx := context.Background()
			wf, err := rt.workflows.For(ctx, args[0])
			if err != nil {
				return err
			}
			result, err := wf.ApplyAll(ctx, getActor(), args[1:]...)
			if err != nil {
				return fmt.Errorf("batch apply failed: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(result)
			}

			if result.NothingToDo {
				fmt.Println("Nothing to do: no accepted findings pending a fix")
				return nil
			}
			fmt.Printf("Batch %s: %d attempted, %d succeeded, %d failed\n",
				result.ID, result.Attempted, result.Succeeded, result.Failed)
			table := NewTable("FINDING", "OUTCOME", "ERROR")
			for _, item := range result.Detail {
				table.AddRow(item.FindingID, formatStatus(item.Outcome), truncate(item.Error, 60))
			}
			table.Render()
			return nil
		},
	}
}

func newRemediationStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <framework>",
		Short: "Show the framework's workflow overlay",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			ctx := context.Background()
			wf, err := rt.workflows.For(ctx, args[0])
			if err != nil {
				return err
			}
			states, err := wf.States(ctx)
			if err != nil {
				return fmt.Errorf("failed to load workflow state: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(states)
			}

			table := NewTable("FINDING", "STATE", "ACCEPTED BY", "APPLIED BY", "FIX TYPE")
			for _, st := range states {
				acceptedBy, appliedBy, fixType := "", "", ""
				if st.Acceptance != nil {
					acceptedBy = st.Acceptance.Actor
				}
				if st.Application != nil {
					appliedBy = st.Application.Actor
					fixType = st.Application.FixType
				}
				table.AddRow(st.FindingID, formatStatus(string(st.State())), acceptedBy, appliedBy, fixType)
			}
			table.Render()
			return nil
		},
	}
}

func newRemediationResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset <framework>",
		Short: "Clear the framework's workflow overlay",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			ctx := context.Background()
			wf, err := rt.workflows.For(ctx, args[0])
			if err != nil {
				return err
			}
			if err := wf.Reset(ctx); err != nil {
				return fmt.Errorf("failed to reset workflow: %w", err)
			}
			fmt.Printf("Remediation state for %s cleared\n", args[0])
			return nil
		},
	}
}
