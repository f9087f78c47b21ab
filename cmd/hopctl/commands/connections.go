package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/ifyun/hop/pkg/hop"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewConnectionsCommand creates the connections command group.
func NewConnectionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "connections",
		Aliases: []string{"conns"},
		Short:   "Manage client connections",
		Long:    "List and close client connections",
	}

	cmd.AddCommand(newConnectionsListCommand())
	cmd.AddCommand(newConnectionsCloseCommand())

	return cmd
}

func newConnectionsListCommand() *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List connections",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var connections []hop.ConnectionInfo

			if user != "" {
				connections, err = client.Connections().ListOfUser(ctx, user)
			} else {
				connections, err = client.Connections().List(ctx, nil)
			}

			if err != nil {
				return fmt.Errorf("failed to list connections: %w", err)
			}

			return outputConnections(connections)
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "limit to connections of one user")

	return cmd
}

func outputConnections(connections []hop.ConnectionInfo) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(connections)
	case OutputFormatYAML:
		return StandardYAMLRenderer(connections)
	default:
		return renderConnectionTable(connections)
	}
}

func renderConnectionTable(connections []hop.ConnectionInfo) error {
	if len(connections) == 0 {
		_, _ = os.Stdout.WriteString("No connections found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Name", "User", "Vhost", "State", "Protocol", "Channels")

	for _, conn := range connections {
		_ = table.Append(conn.Name, conn.User, conn.Vhost, conn.State,
			conn.Protocol, strconv.Itoa(conn.Channels))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newConnectionsCloseCommand() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "close NAME",
		Short: "Close a connection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Connections().Close(context.Background(), args[0], reason)
			if err != nil {
				return fmt.Errorf("failed to close connection: %w", err)
			}

			fmt.Printf("Closed connection '%s'\n", args[0])

			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "reason reported to the client")

	return cmd
}
