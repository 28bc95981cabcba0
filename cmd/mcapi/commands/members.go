package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/mcapi/internal/constants"
	"github.com/fivetwenty-io/mcapi/pkg/mcapi"
)

// NewMembersCommand creates the members command group. Every subcommand
// needs --list.
func NewMembersCommand() *cobra.Command {
	var listID string

	cmd := &cobra.Command{
		Use:   "members",
		Short: "Manage audience members",
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if listID == "" {
				return constants.ErrListIDRequired
			}

			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&listID, "list", "l", "", "audience (list) id")

	members := func(cmd *cobra.Command) (mcapi.MembersClient, error) {
		client, err := newClient(commandContext(cmd))
		if err != nil {
			return nil, err
		}

		return client.Lists().Members(listID), nil
	}

	cmd.AddCommand(newMembersListCommand(members))
	cmd.AddCommand(newMembersGetCommand(members))
	cmd.AddCommand(newMembersDeleteCommand(members))

	return cmd
}

type membersFactory func(cmd *cobra.Command) (mcapi.MembersClient, error)

func newMembersListCommand(members membersFactory) *cobra.Command {
	var (
		allPages bool
		count    int
		offset   int
		status   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List members",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := members(cmd)
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)
			params := pageParams(count, offset)

			if status != "" {
				params.WithFilter("status", status)
			}

			var items []mcapi.Member

			if allPages {
				items, err = client.ListAll(ctx, params)
			} else {
				var page *mcapi.Page[mcapi.Member]

				page, err = client.List(ctx, params)
				if page != nil {
					items = page.Items
				}
			}

			if err != nil {
				return fmt.Errorf("failed to list members: %w", err)
			}

			return render(cmd.OutOrStdout(), items, func(w io.Writer) error {
				return renderMemberTable(w, items)
			})
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&count, "count", constants.StandardPageSize, "results per page")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of results to skip")
	cmd.Flags().StringVar(&status, "status", "", "only members with this status")

	return cmd
}

func renderMemberTable(w io.Writer, members []mcapi.Member) error {
	if len(members) == 0 {
		_, _ = io.WriteString(w, "No members found\n")

		return nil
	}

	rows := make([][]string, 0, len(members))
	for _, member := range members {
		rows = append(rows, []string{member.ID, member.EmailAddress, string(member.Status), valueOrNA(member.LastChanged)})
	}

	return renderRows(w, []string{"ID", "Email", "Status", "Last Changed"}, rows)
}

func newMembersGetCommand(members membersFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "get MEMBER",
		Short: "Show one member by email address or subscriber hash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := members(cmd)
			if err != nil {
				return err
			}

			member, err := client.Get(commandContext(cmd), args[0], nil)
			if err != nil {
				return fmt.Errorf("failed to get member: %w", err)
			}

			return render(cmd.OutOrStdout(), member, func(w io.Writer) error {
				return renderProperties(w, [][]string{
					{"ID", member.ID},
					{"Email", member.EmailAddress},
					{"Status", string(member.Status)},
					{"Full Name", valueOrNA(member.FullName)},
					{"Email Type", valueOrNA(member.EmailType)},
					{"VIP", strconv.FormatBool(member.VIP)},
					{"Tags", strconv.Itoa(member.TagsCount)},
					{"Last Changed", valueOrNA(member.LastChanged)},
				})
			})
		},
	}
}

func newMembersDeleteCommand(members membersFactory) *cobra.Command {
	var permanent bool

	cmd := &cobra.Command{
		Use:   "delete MEMBER",
		Short: "Archive a member, or erase it with --permanent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := members(cmd)
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)

			if permanent {
				err = client.DeletePermanent(ctx, args[0])
			} else {
				err = client.Delete(ctx, args[0])
			}

			if err != nil {
				return fmt.Errorf("failed to delete member: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted member %s\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVar(&permanent, "permanent", false, "permanently erase the member and its data")

	return cmd
}
