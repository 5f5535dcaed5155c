package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/teable-client/pkg/teable"
)

// NewRecordsCommand creates the records command group
func NewRecordsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "records",
		Aliases: []string{"record"},
		Short:   "Manage records",
		Long:    "List and manage the records of a table",
	}

	cmd.AddCommand(newRecordsListCommand())
	cmd.AddCommand(newRecordsGetCommand())
	cmd.AddCommand(newRecordsCreateCommand())
	cmd.AddCommand(newRecordsUpdateCommand())
	cmd.AddCommand(newRecordsDeleteCommand())

	return cmd
}

// parseFieldsArg decodes the --fields argument, a JSON object of field
// values keyed by field name or ID.
func parseFieldsArg(raw string) (map[string]interface{}, error) {
	var fields map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, fmt.Errorf("parsing --fields as JSON: %w", err)
	}

	return fields, nil
}

func renderRecords(records []teable.Record) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return outputJSON(records)
	case OutputFormatYAML:
		return outputYAML(records)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Fields")

		for _, record := range records {
			encoded, err := json.Marshal(record.Fields)
			if err != nil {
				return fmt.Errorf("encoding record fields: %w", err)
			}

			_ = table.Append(record.ID, string(encoded))
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
	}

	return nil
}

func newRecordsListCommand() *cobra.Command {
	var (
		viewID string
		tql    string
		take   int
		skip   int
	)

	cmd := &cobra.Command{
		Use:   "list TABLE_ID",
		Short: "List records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			query := teable.NewRecordQuery()
			if viewID != "" {
				query.WithView(viewID)
			}

			if tql != "" {
				query.WithFilterByTql(tql)
			}

			if take > 0 {
				query.WithTake(take)
			}

			if skip > 0 {
				query.WithSkip(skip)
			}

			records, err := client.Records().List(context.Background(), args[0], query)
			if err != nil {
				return fmt.Errorf("failed to list records: %w", err)
			}

			return renderRecords(records)
		},
	}

	cmd.Flags().StringVar(&viewID, "view", "", "scope the list to a view")
	cmd.Flags().StringVar(&tql, "filter", "", "filter expression in Teable query language")
	cmd.Flags().IntVar(&take, "take", 0, "maximum records to return")
	cmd.Flags().IntVar(&skip, "skip", 0, "records to skip")

	return cmd
}

func newRecordsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TABLE_ID RECORD_ID",
		Short: "Get a record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			record, err := client.Records().Get(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to get record: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatYAML:
				return outputYAML(record)
			default:
				return outputJSON(record)
			}
		},
	}
}

func newRecordsCreateCommand() *cobra.Command {
	var fieldsJSON string

	cmd := &cobra.Command{
		Use:   "create TABLE_ID",
		Short: "Create a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := parseFieldsArg(fieldsJSON)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			record, err := client.Records().Create(context.Background(), args[0], fields)
			if err != nil {
				return fmt.Errorf("failed to create record: %w", err)
			}

			fmt.Printf("Created record %s\n", record.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&fieldsJSON, "fields", "", "record fields as a JSON object (required)")
	_ = cmd.MarkFlagRequired("fields")

	return cmd
}

func newRecordsUpdateCommand() *cobra.Command {
	var fieldsJSON string

	cmd := &cobra.Command{
		Use:   "update TABLE_ID RECORD_ID",
		Short: "Update a record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := parseFieldsArg(fieldsJSON)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			record, err := client.Records().Update(context.Background(), args[0], args[1], fields)
			if err != nil {
				return fmt.Errorf("failed to update record: %w", err)
			}

			fmt.Printf("Updated record %s\n", record.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&fieldsJSON, "fields", "", "changed fields as a JSON object (required)")
	_ = cmd.MarkFlagRequired("fields")

	return cmd
}

func newRecordsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete TABLE_ID RECORD_ID [RECORD_ID...]",
		Short: "Delete one or more records",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			tableID := args[0]
			recordIDs := args[1:]

			if len(recordIDs) == 1 {
				err = client.Records().Delete(ctx, tableID, recordIDs[0])
			} else {
				err = client.Records().BatchDelete(ctx, tableID, recordIDs)
			}

			if err != nil {
				return fmt.Errorf("failed to delete records: %w", err)
			}

			fmt.Printf("Deleted %d record(s)\n", len(recordIDs))

			return nil
		},
	}
}
