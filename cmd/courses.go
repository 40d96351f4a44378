package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/coursegen/internal/store"
	"github.com/spf13/cobra"
)

var coursesCmd = &cobra.Command{
	Use:   "courses [course-id]",
	Short: "List stored courses, or show one course's outline",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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

		if len(args) == 1 {
			course, err := s.CourseRepo().Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("get course: %w", err)
			}
			printCourse(course)
			return nil
		}

		courses, err := s.CourseRepo().List(ctx)
		if err != nil {
			return fmt.Errorf("list courses: %w", err)
		}
		if len(courses) == 0 {
			fmt.Println("No courses yet. Create one with: coursegen plan \"<goal>\"")
			return nil
		}

		fmt.Printf("%-36s  %-19s  %s\n", "ID", "Created", "Title")
		fmt.Println(strings.Repeat("─", 90))
		for _, c := range courses {
			fmt.Printf("%-36s  %-19s  %s\n",
				c.ID,
				c.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				c.Title,
			)
		}
		return nil
	},
}
