package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ifyun/hop/pkg/hop"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewVhostsCommand creates the vhosts command group.
func NewVhostsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vhosts",
		Aliases: []string{"vhost"},
		Short:   "Manage virtual hosts",
		Long:    "List, create, and delete virtual hosts",
	}

	cmd.AddCommand(newVhostsListCommand())
	cmd.AddCommand(newVhostsCreateCommand())
	cmd.AddCommand(newVhostsDeleteCommand())

	return cmd
}

func newVhostsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List virtual hosts",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			vhosts, err := client.Vhosts().List(context.Background(), nil)
			if err != nil {
				return fmt.Errorf("failed to list vhosts: %w", err)
			}

			return outputVhosts(vhosts)
		},
	}
}

func outputVhosts(vhosts []hop.VhostInfo) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(vhosts)
	case OutputFormatYAML:
		return StandardYAMLRenderer(vhosts)
	default:
		return renderVhostTable(vhosts)
	}
}

func renderVhostTable(vhosts []hop.VhostInfo) error {
	if len(vhosts) == 0 {
		_, _ = os.Stdout.WriteString("No vhosts found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Name", "Description", "Tags", "Tracing", "Messages")

	for _, vhost := range vhosts {
		_ = table.Append(vhost.Name, vhost.Description,
			strings.Join(vhost.Tags, ","),
			strconv.FormatBool(vhost.Tracing),
			strconv.FormatInt(vhost.Messages, 10))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newVhostsCreateCommand() *cobra.Command {
	var (
		description string
		tags        []string
		tracing     bool
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a virtual host",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			settings := hop.VhostSettings{
				Tracing:     tracing,
				Description: description,
				Tags:        tags,
			}

			err = client.Vhosts().Put(context.Background(), args[0], settings)
			if err != nil {
				return fmt.Errorf("failed to create vhost: %w", err)
			}

			fmt.Printf("Created vhost '%s'\n", args[0])

			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "vhost description")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "vhost tag (repeatable)")
	cmd.Flags().BoolVar(&tracing, "tracing", false, "enable message tracing")

	return cmd
}

func newVhostsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a virtual host",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Vhosts().Delete(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete vhost: %w", err)
			}

			fmt.Printf("Deleted vhost '%s'\n", args[0])

			return nil
		},
	}
}
