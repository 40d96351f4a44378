package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/coursegen/internal/llm"
	"github.com/abhisek/coursegen/internal/server"
	"github.com/abhisek/coursegen/internal/store"
	"github.com/abhisek/coursegen/internal/stream"
	"github.com/abhisek/coursegen/internal/tui"
	"github.com/abhisek/coursegen/internal/tutor"
	"github.com/spf13/cobra"
)

var lessonCmd = &cobra.Command{
	Use:   "lesson <course-id>",
	Short: "Stream a lesson for one subtopic of a course",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		module, _ := cmd.Flags().GetInt("module")
		subtopic, _ := cmd.Flags().GetInt("subtopic")
		profile, _ := cmd.Flags().GetString("profile")
		remote, _ := cmd.Flags().GetString("remote")
		plain, _ := cmd.Flags().GetBool("plain")
		idle, _ := cmd.Flags().GetDuration("idle-timeout")

		if module < 1 || subtopic < 1 {
			return fmt.Errorf("--module and --subtopic must be positive")
		}

		p := stream.StartParams{
			KnowledgeProfile: profile,
			CourseID:         args[0],
			ModuleOrder:      module,
			SubtopicOrder:    subtopic,
		}
		opts := stream.Options{IdleTimeout: idle}
		ctx := cmd.Context()

		var ctrl *stream.Controller
		if remote != "" {
			// The server resolves the real subtopic title and persists the
			// lesson; locally we only need a display fallback.
			p.SubtopicTitle = fmt.Sprintf("Lesson %d.%d", module, subtopic)
			ctrl = stream.NewController(server.NewClient(remote), stream.NopSaver{}, opts)
		} else {
			dbPath, err := resolveDBPath(cmd)
			if err != nil {
				return fmt.Errorf("resolve database path: %w", err)
			}
			s, err := store.Open(dbPath)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer s.Close()

			provider, err := llm.NewProviderFromEnv(ctx, s.EventRepo())
			if err != nil {
				return fmt.Errorf("LLM provider not configured: %w", err)
			}

			svc := tutor.NewService(provider, s.CourseRepo(), s.LessonRepo(), tutor.DefaultConfig())
			title, err := svc.SubtopicTitle(ctx, p)
			if err != nil {
				return err
			}
			p.SubtopicTitle = title
			ctrl = svc.NewController(opts)
		}

		if plain {
			return streamPlain(ctx, ctrl, p)
		}
		return tui.Run(ctrl, p)
	},
}

func init() {
	lessonCmd.Flags().IntP("module", "m", 1, "Module number within the course")
	lessonCmd.Flags().IntP("subtopic", "s", 1, "Subtopic number within the module")
	lessonCmd.Flags().String("profile", "", "Describe what you already know")
	lessonCmd.Flags().String("remote", "", "Stream from a coursegen server instead of calling the LLM directly (e.g. http://localhost:8787)")
	lessonCmd.Flags().Bool("plain", false, "Print the lesson to stdout instead of opening the viewer")
	lessonCmd.Flags().Duration("idle-timeout", 30*time.Second, "Abort when the stream goes quiet for this long (0 disables)")
}

// streamPlain drives the controller without the TUI, echoing displayed
// content to stdout as the typewriter releases it.
func streamPlain(ctx context.Context, ctrl *stream.Controller, p stream.StartParams) error {
	if err := ctrl.Start(ctx, p); err != nil {
		return err
	}
	done := ctrl.Done()

	printed := 0
	flush := func() {
		content := ctrl.Content()
		if len(content) > printed {
			fmt.Print(content[printed:])
			printed = len(content)
		}
	}

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			flush()
		case <-done:
			flush()
			fmt.Println()
			if err := ctrl.Err(); err != nil {
				return err
			}
			res := ctrl.Data()
			if res == nil || res.Content == "" {
				return fmt.Errorf("the stream produced no usable lesson content")
			}
			if res.EstimatedReadTimeMin > 0 {
				fmt.Printf("\n(estimated read time: %d min)\n", res.EstimatedReadTimeMin)
			}
			if warn := ctrl.PersistWarning(); warn != nil {
				fmt.Fprintf(os.Stderr, "warning: lesson shown but not saved: %v\n", warn)
			}
			return nil
		}
	}
}
