package cmd

import (
	"fmt"

	"github.com/abhisek/coursegen/internal/llm"
	"github.com/abhisek/coursegen/internal/planner"
	"github.com/abhisek/coursegen/internal/store"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan \"<learning goal>\"",
	Short: "Plan a new course for a learning goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, _ := cmd.Flags().GetString("profile")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := cmd.Context()
		provider, err := llm.NewProviderFromEnv(ctx, s.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		svc := planner.NewService(provider, s.CourseRepo(), planner.DefaultConfig())
		course, err := svc.PlanCourse(ctx, planner.PlanInput{
			Goal:             args[0],
			KnowledgeProfile: profile,
		})
		if err != nil {
			return err
		}

		printCourse(course)
		return nil
	},
}

func init() {
	planCmd.Flags().String("profile", "", "Describe what you already know")
}

func printCourse(c *store.Course) {
	fmt.Printf("%s\n", c.Title)
	if c.Description != "" {
		fmt.Printf("%s\n", c.Description)
	}
	fmt.Printf("ID: %s\n\n", c.ID)

	for _, m := range c.Modules {
		fmt.Printf("Module %d: %s\n", m.Order, m.Title)
		for _, st := range m.Subtopics {
			fmt.Printf("  %d.%d %s\n", m.Order, st.Order, st.Title)
		}
	}
}
