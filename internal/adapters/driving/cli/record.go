package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Inspect stored document records",
}

var recordGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show a record by content identity",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecordGet,
}

// includeRaw is a flag for the record get command.
var includeRaw bool

func init() {
	recordGetCmd.Flags().BoolVar(&includeRaw, "raw", false, "Include the embedded raw payload size")

	recordCmd.AddCommand(recordGetCmd)
	rootCmd.AddCommand(recordCmd)
}

func runRecordGet(cmd *cobra.Command, args []string) error {
	if recordService == nil {
		return errors.New("record service not configured")
	}

	record, err := recordService.Get(context.Background(), args[0], includeRaw)
	if err != nil {
		return fmt.Errorf("failed to get record: %w", err)
	}

	printRecord(cmd, record)
	if includeRaw {
		cmd.Printf("\nRaw payload: %d bytes embedded\n", len(record.RawBytes))
	}
	return nil
}
