package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewFieldsCommand creates the fields command group
func NewFieldsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "fields",
		Aliases: []string{"field"},
		Short:   "Manage fields",
		Long:    "List and inspect the fields of a table",
	}

	cmd.AddCommand(newFieldsListCommand())
	cmd.AddCommand(newFieldsGetCommand())

	return cmd
}

func newFieldsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list TABLE_ID",
		Short: "List fields of a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			fields, err := client.Fields().ListForTable(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list fields: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return outputJSON(fields)
			case OutputFormatYAML:
				return outputYAML(fields)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Type", "Primary")

				for _, field := range fields {
					_ = table.Append(field.ID, field.Name, field.Type, strconv.FormatBool(field.IsPrimary))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newFieldsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TABLE_ID FIELD_ID",
		Short: "Get field details",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			field, err := client.Fields().Get(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to get field: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return outputJSON(field)
			case OutputFormatYAML:
				return outputYAML(field)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", field.ID)
				_ = table.Append("Name", field.Name)
				_ = table.Append("Type", field.Type)
				_ = table.Append("Primary", strconv.FormatBool(field.IsPrimary))
				_ = table.Append("Computed", strconv.FormatBool(field.IsComputed))
				_ = table.Append("Description", strValue(field.Description))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}
