package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewViewsCommand creates the views command group
func NewViewsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "views",
		Aliases: []string{"view"},
		Short:   "Manage views",
		Long:    "List and inspect the views of a table",
	}

	cmd.AddCommand(newViewsListCommand())
	cmd.AddCommand(newViewsGetCommand())

	return cmd
}

func newViewsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list TABLE_ID",
		Short: "List views of a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			views, err := client.Views().ListForTable(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list views: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return outputJSON(views)
			case OutputFormatYAML:
				return outputYAML(views)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Type")

				for _, view := range views {
					_ = table.Append(view.ID, view.Name, view.Type)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newViewsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TABLE_ID VIEW_ID",
		Short: "Get view details",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			view, err := client.Views().Get(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to get view: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return outputJSON(view)
			case OutputFormatYAML:
				return outputYAML(view)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", view.ID)
				_ = table.Append("Name", view.Name)
				_ = table.Append("Type", view.Type)

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}
