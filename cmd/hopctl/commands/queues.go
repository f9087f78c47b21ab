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

// NewQueuesCommand creates the queues command group.
func NewQueuesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "queues",
		Aliases: []string{"queue", "q"},
		Short:   "Manage queues",
		Long:    "List, declare, purge, and delete queues",
	}

	cmd.AddCommand(newQueuesListCommand())
	cmd.AddCommand(newQueuesDeclareCommand())
	cmd.AddCommand(newQueuesDeleteCommand())
	cmd.AddCommand(newQueuesPurgeCommand())

	return cmd
}

func newQueuesListCommand() *cobra.Command {
	var (
		vhost    string
		name     string
		useRegex bool
		page     int
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List queues",
		Long:  "List queues across the cluster or within one virtual host",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQueuesListCommand(vhost, name, useRegex, page, pageSize)
		},
	}

	cmd.Flags().StringVar(&vhost, "vhost", "", "limit to one virtual host")
	cmd.Flags().StringVar(&name, "name", "", "filter by name")
	cmd.Flags().BoolVar(&useRegex, "regex", false, "treat --name as a regular expression")
	cmd.Flags().IntVar(&page, "page", 0, "page number (0 fetches everything)")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "results per page")

	return cmd
}

func runQueuesListCommand(vhost, name string, useRegex bool, page, pageSize int) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	params := hop.NewQueryParams()
	if name != "" {
		if useRegex {
			params.WithNameRegex(name)
		} else {
			params.WithName(name)
		}
	}

	var queues []hop.QueueInfo

	if page > 0 {
		params.WithPage(page).WithPageSize(pageSize)

		var result *hop.Page[hop.QueueInfo]

		if vhost != "" {
			result, err = client.Queues().ListInPaged(ctx, vhost, params, nil)
		} else {
			result, err = client.Queues().ListPaged(ctx, params, nil)
		}

		if err != nil {
			return fmt.Errorf("failed to list queues: %w", err)
		}

		queues = result.Items
	} else {
		if vhost != "" {
			queues, err = client.Queues().ListIn(ctx, vhost, params)
		} else {
			queues, err = client.Queues().List(ctx, params)
		}

		if err != nil {
			return fmt.Errorf("failed to list queues: %w", err)
		}
	}

	return outputQueues(queues)
}

func outputQueues(queues []hop.QueueInfo) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(queues)
	case OutputFormatYAML:
		return StandardYAMLRenderer(queues)
	default:
		return renderQueueTable(queues)
	}
}

func renderQueueTable(queues []hop.QueueInfo) error {
	if len(queues) == 0 {
		_, _ = os.Stdout.WriteString("No queues found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Vhost", "Name", "Type", "State", "Durable", "Messages", "Consumers")

	for _, queue := range queues {
		_ = table.Append(queue.Vhost, queue.Name, queue.Type, queue.State,
			strconv.FormatBool(queue.Durable),
			strconv.FormatInt(queue.Messages, 10),
			strconv.FormatInt(queue.Consumers, 10))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newQueuesDeclareCommand() *cobra.Command {
	var (
		vhost      string
		queueType  string
		durable    bool
		autoDelete bool
	)

	cmd := &cobra.Command{
		Use:   "declare NAME",
		Short: "Declare a queue",
		Long:  "Declare a queue, creating it if absent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			settings := hop.QueueSettings{
				Type:       queueType,
				Durable:    durable,
				AutoDelete: autoDelete,
			}

			err = client.Queues().Declare(context.Background(), vhost, args[0], settings)
			if err != nil {
				return fmt.Errorf("failed to declare queue: %w", err)
			}

			fmt.Printf("Declared queue '%s' in vhost '%s'\n", args[0], vhost)

			return nil
		},
	}

	cmd.Flags().StringVar(&vhost, "vhost", "/", "virtual host")
	cmd.Flags().StringVar(&queueType, "type", "", "queue type (classic, quorum, stream)")
	cmd.Flags().BoolVar(&durable, "durable", true, "survive broker restart")
	cmd.Flags().BoolVar(&autoDelete, "auto-delete", false, "delete when the last consumer disconnects")

	return cmd
}

func newQueuesDeleteCommand() *cobra.Command {
	var vhost string

	cmd := &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a queue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Queues().Delete(context.Background(), vhost, args[0])
			if err != nil {
				return fmt.Errorf("failed to delete queue: %w", err)
			}

			fmt.Printf("Deleted queue '%s' from vhost '%s'\n", args[0], vhost)

			return nil
		},
	}

	cmd.Flags().StringVar(&vhost, "vhost", "/", "virtual host")

	return cmd
}

func newQueuesPurgeCommand() *cobra.Command {
	var vhost string

	cmd := &cobra.Command{
		Use:   "purge NAME",
		Short: "Purge a queue",
		Long:  "Remove all ready messages from a queue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Queues().Purge(context.Background(), vhost, args[0])
			if err != nil {
				return fmt.Errorf("failed to purge queue: %w", err)
			}

			fmt.Printf("Purged queue '%s' in vhost '%s'\n", args[0], vhost)

			return nil
		},
	}

	cmd.Flags().StringVar(&vhost, "vhost", "/", "virtual host")

	return cmd
}
