package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/templui/mindspace/internal/model"
	"github.com/templui/mindspace/internal/service"
)

// Opener returns the goal service, building it on first use.
type Opener func(ctx context.Context) (*service.GoalService, error)

func ListCmd(open Opener) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List goals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := open(cmd.Context())
			if err != nil {
				return err
			}

			goals, err := svc.Goals(category)
			if err != nil {
				return err
			}

			return printGoals(cmd.OutOrStdout(), goals, svc.Today())
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", service.CategoryAll, "filter by category (Habit, Personal, Health, Study)")
	return cmd
}

func AddCmd(open Opener) *cobra.Command {
	var req service.CreateGoalRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := open(cmd.Context())
			if err != nil {
				return err
			}

			if req.CustomDuration != "" && !cmd.Flags().Changed("duration") {
				req.Duration = model.DurationCustom
			}

			goal, err := svc.Create(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s %q (%s, due %s)\n", goal.ID, goal.Title, goal.Category, goal.TargetDate)
			for _, s := range goal.Subtasks {
				fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", s)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Title, "title", "t", "", "goal title")
	cmd.Flags().StringVarP(&req.Category, "category", "c", string(model.CategoryPersonal), "Habit, Personal, Health or Study")
	cmd.Flags().StringVarP(&req.Duration, "duration", "d", model.DurationOneMonth, "one of: "+strings.Join(model.Durations, ", ")+", custom")
	cmd.Flags().StringVar(&req.CustomDuration, "custom", "", `free-text duration such as "2 weeks"`)
	cmd.Flags().StringVarP(&req.Notes, "notes", "n", "", "notes (Markdown)")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func CheckInCmd(open Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "checkin <id>",
		Short: "Record today's check-in for a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := open(cmd.Context())
			if err != nil {
				return err
			}

			goal, err := svc.CheckIn(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if goal == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "No goal with id %s\n", args[0])
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d%% done, %d day streak (last check-in %s)\n", goal.Title, goal.Progress, goal.Streak, goal.LastUpdated)
			return nil
		},
	}
}

func DeleteCmd(open Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := open(cmd.Context())
			if err != nil {
				return err
			}

			deleted, err := svc.Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if !deleted {
				fmt.Fprintf(cmd.OutOrStdout(), "No goal with id %s\n", args[0])
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}

func ExportCmd(open Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write every goal as JSON to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := open(cmd.Context())
			if err != nil {
				return err
			}

			goals, err := svc.Goals(service.CategoryAll)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(goals)
		},
	}
}

func printGoals(w io.Writer, goals []model.Goal, today string) error {
	if len(goals) == 0 {
		_, err := fmt.Fprintln(w, "No goals yet.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tPROGRESS\tSTREAK\tDUE\tTODAY")
	for _, g := range goals {
		done := ""
		if g.LastUpdated == today {
			done = "checked in"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d%%\t%d\t%s\t%s\n", g.ID, g.Title, g.Category, g.Progress, g.Streak, g.TargetDate, done)
	}
	return tw.Flush()
}
