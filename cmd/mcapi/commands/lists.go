package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/mcapi/internal/constants"
	"github.com/fivetwenty-io/mcapi/pkg/mcapi"
)

// NewListsCommand creates the lists command group.
func NewListsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "lists",
		Aliases: []string{"audiences"},
		Short:   "Manage audiences (lists)",
	}

	cmd.AddCommand(newListsListCommand())
	cmd.AddCommand(newListsGetCommand())
	cmd.AddCommand(newListsCreateCommand())
	cmd.AddCommand(newListsDeleteCommand())
	cmd.AddCommand(newListsSubscribeCommand())

	return cmd
}

func newListsListCommand() *cobra.Command {
	var (
		allPages bool
		count    int
		offset   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List audiences",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := commandContext(cmd)

			client, err := newClient(ctx)
			if err != nil {
				return err
			}

			var lists []mcapi.List

			if allPages {
				lists, err = client.Lists().ListAll(ctx, nil)
			} else {
				var page *mcapi.Page[mcapi.List]

				page, err = client.Lists().List(ctx, pageParams(count, offset))
				if page != nil {
					lists = page.Items
				}
			}

			if err != nil {
				return fmt.Errorf("failed to list audiences: %w", err)
			}

			return render(cmd.OutOrStdout(), lists, func(w io.Writer) error {
				return renderListTable(w, lists)
			})
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&count, "count", constants.StandardPageSize, "results per page")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of results to skip")

	return cmd
}

func renderListTable(w io.Writer, lists []mcapi.List) error {
	if len(lists) == 0 {
		_, _ = io.WriteString(w, "No audiences found\n")

		return nil
	}

	rows := make([][]string, 0, len(lists))

	for _, list := range lists {
		members := constants.NotAvailable
		if list.Stats != nil {
			members = strconv.Itoa(list.Stats.MemberCount)
		}

		rows = append(rows, []string{list.ID, list.Name, members, valueOrNA(list.DateCreated)})
	}

	return renderRows(w, []string{"ID", "Name", "Members", "Created"}, rows)
}

func newListsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get LIST_ID",
		Short: "Show one audience",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)

			client, err := newClient(ctx)
			if err != nil {
				return err
			}

			list, err := client.Lists().Get(ctx, args[0], nil)
			if err != nil {
				return fmt.Errorf("failed to get audience: %w", err)
			}

			return renderList(cmd.OutOrStdout(), list)
		},
	}
}

func renderList(out io.Writer, list *mcapi.List) error {
	return render(out, list, func(w io.Writer) error {
		rows := [][]string{
			{"ID", list.ID},
			{"Name", list.Name},
			{"Permission Reminder", valueOrNA(list.PermissionReminder)},
			{"Visibility", valueOrNA(list.Visibility)},
			{"Double Opt-in", strconv.FormatBool(list.DoubleOptin)},
			{"Subscribe URL", valueOrNA(list.SubscribeURLShort)},
			{"Created", valueOrNA(list.DateCreated)},
		}

		if list.Stats != nil {
			rows = append(rows, []string{"Members", strconv.Itoa(list.Stats.MemberCount)})
		}

		return renderProperties(w, rows)
	})
}

func newListsCreateCommand() *cobra.Command {
	var fromFile string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an audience from a json or yaml file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			request, err := readPayload[mcapi.ListRequest](fromFile)
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)

			client, err := newClient(ctx)
			if err != nil {
				return err
			}

			list, err := client.Lists().Create(ctx, request)
			if err != nil {
				return fmt.Errorf("failed to create audience: %w", err)
			}

			return renderList(cmd.OutOrStdout(), list)
		},
	}

	cmd.Flags().StringVarP(&fromFile, "from-file", "f", "", "list definition (.json, .yaml or .yml)")

	return cmd
}

func newListsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete LIST_ID",
		Short: "Delete an audience",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)

			client, err := newClient(ctx)
			if err != nil {
				return err
			}

			err = client.Lists().Delete(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to delete audience: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted audience %s\n", args[0])

			return nil
		},
	}
}

func newListsSubscribeCommand() *cobra.Command {
	var (
		fromFile       string
		updateExisting bool
		chunkSize      int
	)

	cmd := &cobra.Command{
		Use:   "subscribe LIST_ID",
		Short: "Batch subscribe members from a json or yaml file",
		Long: `Subscribe or update the members listed in a json or yaml file.

The file holds a sequence of members. Files with more than 500 members are
sent in several calls; the first failing call stops the run.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			members, err := readPayload[[]mcapi.MemberRequest](fromFile)
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)

			client, err := newClient(ctx)
			if err != nil {
				return err
			}

			batcher := mcapi.NewMemberBatcher(client.Lists(), chunkSize)

			summary, err := batcher.Subscribe(ctx, args[0], *members, updateExisting)
			if summary != nil {
				renderErr := renderBatchSummary(cmd.OutOrStdout(), summary)
				if renderErr != nil && err == nil {
					err = renderErr
				}
			}

			if err != nil {
				return fmt.Errorf("failed to subscribe members: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&fromFile, "from-file", "f", "", "members file (.json, .yaml or .yml)")
	cmd.Flags().BoolVar(&updateExisting, "update-existing", false, "update members that already exist")
	cmd.Flags().IntVar(&chunkSize, "chunk-size", mcapi.MaxBatchMembers, "members per call (at most 500)")

	return cmd
}

func renderBatchSummary(out io.Writer, summary *mcapi.BatchSummary) error {
	return render(out, summary, func(w io.Writer) error {
		err := renderProperties(w, [][]string{
			{"Processed", strconv.Itoa(summary.ProcessedCount)},
			{"Created", strconv.Itoa(summary.TotalCreated)},
			{"Updated", strconv.Itoa(summary.TotalUpdated)},
			{"Errors", strconv.Itoa(summary.TotalErrors)},
			{"Calls", strconv.Itoa(len(summary.Results))},
		})
		if err != nil || len(summary.MemberErrors) == 0 {
			return err
		}

		rows := make([][]string, 0, len(summary.MemberErrors))
		for _, memberErr := range summary.MemberErrors {
			rows = append(rows, []string{memberErr.EmailAddress, valueOrNA(memberErr.ErrorCode), memberErr.Error})
		}

		return renderRows(w, []string{"Email", "Code", "Error"}, rows)
	})
}
