package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewSpacesCommand creates the spaces command group
func NewSpacesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "spaces",
		Aliases: []string{"space"},
		Short:   "Manage spaces",
		Long:    "List and manage Teable spaces",
	}

	cmd.AddCommand(newSpacesListCommand())
	cmd.AddCommand(newSpacesGetCommand())
	cmd.AddCommand(newSpacesCreateCommand())
	cmd.AddCommand(newSpacesDeleteCommand())
	cmd.AddCommand(newSpacesCollaboratorsCommand())

	return cmd
}

func newSpacesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List spaces",
		Long:  "List all spaces the user has access to",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			spaces, err := client.Spaces().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list spaces: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return outputJSON(spaces)
			case OutputFormatYAML:
				return outputYAML(spaces)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Role")

				for _, space := range spaces {
					_ = table.Append(space.ID, space.Name, space.Role)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newSpacesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SPACE_ID",
		Short: "Get space details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			space, err := client.Spaces().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get space: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return outputJSON(space)
			case OutputFormatYAML:
				return outputYAML(space)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", space.ID)
				_ = table.Append("Name", space.Name)
				_ = table.Append("Role", space.Role)

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newSpacesCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create NAME",
		Short: "Create a space",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			space, err := client.Spaces().Create(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to create space: %w", err)
			}

			fmt.Printf("Created space '%s' with ID %s\n", space.Name, space.ID)

			return nil
		},
	}
}

func newSpacesDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete SPACE_ID",
		Short: "Permanently delete a space",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return ErrDeleteNotConfirmed
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			if err := client.Spaces().PermanentDelete(context.Background(), args[0]); err != nil {
				return fmt.Errorf("failed to delete space: %w", err)
			}

			fmt.Printf("Deleted space %s\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "confirm permanent deletion")

	return cmd
}

func newSpacesCollaboratorsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "collaborators SPACE_ID",
		Short: "List space collaborators",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			collaborators, err := client.Spaces().ListCollaborators(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list collaborators: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return outputJSON(collaborators)
			case OutputFormatYAML:
				return outputYAML(collaborators)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("User ID", "Name", "Email", "Role")

				for _, collaborator := range collaborators {
					_ = table.Append(collaborator.UserID, collaborator.UserName, collaborator.Email, collaborator.Role)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}
