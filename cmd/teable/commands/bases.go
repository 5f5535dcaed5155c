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

// NewBasesCommand creates the bases command group
func NewBasesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bases",
		Aliases: []string{"base"},
		Short:   "Manage bases",
		Long:    "List and manage Teable bases",
	}

	cmd.AddCommand(newBasesListCommand())
	cmd.AddCommand(newBasesGetCommand())
	cmd.AddCommand(newBasesCreateCommand())
	cmd.AddCommand(newBasesDuplicateCommand())
	cmd.AddCommand(newBasesDeleteCommand())

	return cmd
}

func renderBases(bases []teable.Base) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return outputJSON(bases)
	case OutputFormatYAML:
		return outputYAML(bases)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Name", "Space ID", "Role")

		for _, base := range bases {
			_ = table.Append(base.ID, base.Name, base.SpaceID, base.Role)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
	}

	return nil
}

func newBasesListCommand() *cobra.Command {
	var (
		spaceID string
		shared  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bases",
		Long:  "List all accessible bases, optionally scoped to one space",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var bases []teable.Base

			switch {
			case shared:
				bases, err = client.Bases().ListShared(ctx)
			case spaceID != "":
				bases, err = client.Bases().ListForSpace(ctx, spaceID)
			default:
				bases, err = client.Bases().List(ctx)
			}

			if err != nil {
				return fmt.Errorf("failed to list bases: %w", err)
			}

			return renderBases(bases)
		},
	}

	cmd.Flags().StringVar(&spaceID, "space", "", "list bases in this space only")
	cmd.Flags().BoolVar(&shared, "shared", false, "list shared bases")

	return cmd
}

func newBasesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get BASE_ID",
		Short: "Get base details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			base, err := client.Bases().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get base: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return outputJSON(base)
			case OutputFormatYAML:
				return outputYAML(base)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", base.ID)
				_ = table.Append("Name", base.Name)
				_ = table.Append("Space ID", base.SpaceID)
				_ = table.Append("Role", base.Role)

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newBasesCreateCommand() *cobra.Command {
	var (
		spaceID string
		name    string
		icon    string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a base",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			base, err := client.Bases().Create(context.Background(), &teable.BaseCreateRequest{
				SpaceID: spaceID,
				Name:    name,
				Icon:    icon,
			})
			if err != nil {
				return fmt.Errorf("failed to create base: %w", err)
			}

			fmt.Printf("Created base '%s' with ID %s\n", base.Name, base.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&spaceID, "space", "", "space to create the base in (required)")
	cmd.Flags().StringVar(&name, "name", "", "base name")
	cmd.Flags().StringVar(&icon, "icon", "", "base icon")
	_ = cmd.MarkFlagRequired("space")

	return cmd
}

func newBasesDuplicateCommand() *cobra.Command {
	var (
		spaceID     string
		name        string
		withRecords bool
	)

	cmd := &cobra.Command{
		Use:   "duplicate BASE_ID",
		Short: "Duplicate a base",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			base, err := client.Bases().Duplicate(context.Background(), args[0], spaceID, name, withRecords)
			if err != nil {
				return fmt.Errorf("failed to duplicate base: %w", err)
			}

			fmt.Printf("Duplicated base into '%s' with ID %s\n", base.Name, base.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&spaceID, "space", "", "destination space (required)")
	cmd.Flags().StringVar(&name, "name", "", "name for the duplicate")
	cmd.Flags().BoolVar(&withRecords, "with-records", false, "copy records as well as structure")
	_ = cmd.MarkFlagRequired("space")

	return cmd
}

func newBasesDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete BASE_ID",
		Short: "Permanently delete a base",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return ErrDeleteNotConfirmed
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			if err := client.Bases().PermanentDelete(context.Background(), args[0]); err != nil {
				return fmt.Errorf("failed to delete base: %w", err)
			}

			fmt.Printf("Deleted base %s\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "confirm permanent deletion")

	return cmd
}
