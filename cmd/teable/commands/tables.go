package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/teable-client/pkg/teable"
)

// NewTablesCommand creates the tables command group
func NewTablesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tables",
		Aliases: []string{"table"},
		Short:   "Manage tables",
		Long:    "List and manage Teable tables",
	}

	cmd.AddCommand(newTablesListCommand())
	cmd.AddCommand(newTablesGetCommand())
	cmd.AddCommand(newTablesCreateCommand())
	cmd.AddCommand(newTablesDeleteCommand())

	return cmd
}

func newTablesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			tables, err := client.Tables().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list tables: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return outputJSON(tables)
			case OutputFormatYAML:
				return outputYAML(tables)
			default:
				writer := tablewriter.NewWriter(os.Stdout)
				writer.Header("ID", "Name", "Default View", "Description")

				for _, tbl := range tables {
					_ = writer.Append(tbl.ID, tbl.Name, tbl.DefaultViewID, strValue(tbl.Description))
				}

				if err := writer.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newTablesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TABLE_ID",
		Short: "Get table details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			tbl, err := client.Tables().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get table: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return outputJSON(tbl)
			case OutputFormatYAML:
				return outputYAML(tbl)
			default:
				writer := tablewriter.NewWriter(os.Stdout)
				writer.Header("Property", "Value")
				_ = writer.Append("ID", tbl.ID)
				_ = writer.Append("Name", tbl.Name)
				_ = writer.Append("DB Table Name", tbl.DBTableName)
				_ = writer.Append("Default View", tbl.DefaultViewID)
				_ = writer.Append("Description", strValue(tbl.Description))

				if err := writer.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newTablesCreateCommand() *cobra.Command {
	var (
		baseID      string
		name        string
		dbTableName string
		description string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a table",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			tbl, err := client.Tables().Create(context.Background(), baseID, &teable.TableCreateRequest{
				Name:        name,
				DBTableName: dbTableName,
				Description: description,
			})
			if err != nil {
				return fmt.Errorf("failed to create table: %w", err)
			}

			fmt.Printf("Created table '%s' with ID %s\n", tbl.Name, tbl.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&baseID, "base", "", "base to create the table in (required)")
	cmd.Flags().StringVar(&name, "name", "", "table name (required)")
	cmd.Flags().StringVar(&dbTableName, "db-table-name", "", "backend table name (required)")
	cmd.Flags().StringVar(&description, "description", "", "table description")
	_ = cmd.MarkFlagRequired("base")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("db-table-name")

	return cmd
}

func newTablesDeleteCommand() *cobra.Command {
	var (
		baseID    string
		force     bool
		permanent bool
	)

	cmd := &cobra.Command{
		Use:   "delete TABLE_ID",
		Short: "Delete a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if permanent && !force {
				return ErrDeleteNotConfirmed
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			if permanent {
				err = client.Tables().PermanentDelete(ctx, baseID, args[0])
			} else {
				err = client.Tables().Delete(ctx, baseID, args[0])
			}

			if err != nil {
				return fmt.Errorf("failed to delete table: %w", err)
			}

			fmt.Printf("Deleted table %s\n", args[0])

			return nil
		},
	}

	cmd.Flags().StringVar(&baseID, "base", "", "base the table belongs to (required)")
	cmd.Flags().BoolVar(&permanent, "permanent", false, "bypass the trash and delete permanently")
	cmd.Flags().BoolVar(&force, "force", false, "confirm permanent deletion")
	_ = cmd.MarkFlagRequired("base")

	return cmd
}
