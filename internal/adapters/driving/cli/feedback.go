package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tessella-labs/tessella/internal/core/domain"
	"github.com/tessella-labs/tessella/internal/core/ports/driving"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback [id] [kind]",
	Short: "Submit feedback on a stored artefact",
	Long: `Append a feedback entry to the artefact of the given kind on the record
with the given content identity. At least one of --rating and --text is
required.`,
	Args: cobra.ExactArgs(2),
	RunE: runFeedback,
}

// Flags for the feedback command.
var (
	feedbackUser   string
	feedbackRating string
	feedbackText   string
)

func init() {
	feedbackCmd.Flags().StringVarP(&feedbackUser, "user", "u", "", "Submitter identity (required)")
	feedbackCmd.Flags().StringVarP(&feedbackRating, "rating", "r", "", "Structured rating")
	feedbackCmd.Flags().StringVarP(&feedbackText, "text", "t", "", "Free-text feedback")

	rootCmd.AddCommand(feedbackCmd)
}

func runFeedback(cmd *cobra.Command, args []string) error {
	if feedbackService == nil {
		return errors.New("feedback service not configured")
	}

	kind, err := domain.ParseServiceKind(args[1])
	if err != nil {
		return err
	}

	form := driving.FeedbackForm{
		User:            feedbackUser,
		Rating:          feedbackRating,
		WrittenFeedback: feedbackText,
	}

	updatedID, err := feedbackService.Submit(context.Background(), args[0], kind, form)
	if err != nil {
		return fmt.Errorf("failed to submit feedback: %w", err)
	}

	cmd.Printf("Feedback recorded on %s/%s.\n", updatedID, kind)
	return nil
}
