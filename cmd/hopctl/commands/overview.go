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

// NewOverviewCommand creates the overview command.
func NewOverviewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Display cluster overview",
		Long:  "Display broker versions, message totals, and object counts for the cluster",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			overview, err := client.Overview(context.Background())
			if err != nil {
				return fmt.Errorf("failed to fetch overview: %w", err)
			}

			return outputOverview(overview)
		},
	}
}

func outputOverview(overview *hop.Overview) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(overview)
	case OutputFormatYAML:
		return StandardYAMLRenderer(overview)
	default:
		return renderOverviewTable(overview)
	}
}

func renderOverviewTable(overview *hop.Overview) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("Cluster", overview.ClusterName)
	_ = table.Append("Node", overview.Node)
	_ = table.Append("RabbitMQ version", overview.RabbitMQVersion)
	_ = table.Append("Management version", overview.ManagementVersion)
	_ = table.Append("Erlang version", overview.ErlangVersion)
	_ = table.Append("Messages", strconv.FormatInt(overview.QueueTotals.Messages, 10))
	_ = table.Append("Messages ready", strconv.FormatInt(overview.QueueTotals.MessagesReady, 10))
	_ = table.Append("Messages unacked", strconv.FormatInt(overview.QueueTotals.MessagesUnacknowledged, 10))
	_ = table.Append("Connections", strconv.FormatInt(overview.ObjectTotals.Connections, 10))
	_ = table.Append("Channels", strconv.FormatInt(overview.ObjectTotals.Channels, 10))
	_ = table.Append("Queues", strconv.FormatInt(overview.ObjectTotals.Queues, 10))
	_ = table.Append("Exchanges", strconv.FormatInt(overview.ObjectTotals.Exchanges, 10))
	_ = table.Append("Consumers", strconv.FormatInt(overview.ObjectTotals.Consumers, 10))

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
