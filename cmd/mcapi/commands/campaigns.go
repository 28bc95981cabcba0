package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/mcapi/internal/constants"
	"github.com/fivetwenty-io/mcapi/pkg/mcapi"
)

// NewCampaignsCommand creates the campaigns command group.
func NewCampaignsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "campaigns",
		Short: "Manage campaigns",
	}

	cmd.AddCommand(newCampaignsListCommand())
	cmd.AddCommand(newCampaignsGetCommand())
	cmd.AddCommand(newCampaignsSendCommand())

	return cmd
}

func newCampaignsListCommand() *cobra.Command {
	var (
		allPages bool
		count    int
		offset   int
		status   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List campaigns",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := commandContext(cmd)

			client, err := newClient(ctx)
			if err != nil {
				return err
			}

			params := pageParams(count, offset)
			if status != "" {
				params.WithFilter("status", status)
			}

			var campaigns []mcapi.Campaign

			if allPages {
				campaigns, err = client.Campaigns().ListAll(ctx, params)
			} else {
				var page *mcapi.Page[mcapi.Campaign]

				page, err = client.Campaigns().List(ctx, params)
				if page != nil {
					campaigns = page.Items
				}
			}

			if err != nil {
				return fmt.Errorf("failed to list campaigns: %w", err)
			}

			return render(cmd.OutOrStdout(), campaigns, func(w io.Writer) error {
				return renderCampaignTable(w, campaigns)
			})
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&count, "count", constants.StandardPageSize, "results per page")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of results to skip")
	cmd.Flags().StringVar(&status, "status", "", "only campaigns with this status (save, paused, schedule, sending, sent)")

	return cmd
}

func renderCampaignTable(w io.Writer, campaigns []mcapi.Campaign) error {
	if len(campaigns) == 0 {
		_, _ = io.WriteString(w, "No campaigns found\n")

		return nil
	}

	rows := make([][]string, 0, len(campaigns))
	for _, campaign := range campaigns {
		rows = append(rows, []string{campaign.ID, campaignSubject(&campaign), campaign.Type, campaign.Status, valueOrNA(campaign.SendTime)})
	}

	return renderRows(w, []string{"ID", "Subject", "Type", "Status", "Sent"}, rows)
}

func campaignSubject(campaign *mcapi.Campaign) string {
	if campaign.Settings == nil {
		return constants.NotAvailable
	}

	return valueOrNA(campaign.Settings.SubjectLine)
}

func newCampaignsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CAMPAIGN_ID",
		Short: "Show one campaign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)

			client, err := newClient(ctx)
			if err != nil {
				return err
			}

			campaign, err := client.Campaigns().Get(ctx, args[0], nil)
			if err != nil {
				return fmt.Errorf("failed to get campaign: %w", err)
			}

			return render(cmd.OutOrStdout(), campaign, func(w io.Writer) error {
				rows := [][]string{
					{"ID", campaign.ID},
					{"Type", campaign.Type},
					{"Status", campaign.Status},
					{"Subject", campaignSubject(campaign)},
					{"Emails Sent", strconv.Itoa(campaign.EmailsSent)},
					{"Send Time", valueOrNA(campaign.SendTime)},
					{"Archive URL", valueOrNA(campaign.ArchiveURL)},
				}

				if campaign.Recipients != nil {
					rows = append(rows, []string{"List", valueOrNA(campaign.Recipients.ListID)})
				}

				return renderProperties(w, rows)
			})
		},
	}
}

func newCampaignsSendCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "send CAMPAIGN_ID",
		Short: "Send a campaign now",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)

			client, err := newClient(ctx)
			if err != nil {
				return err
			}

			err = client.Campaigns().Send(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to send campaign: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Campaign %s is being sent\n", args[0])

			return nil
		},
	}
}
