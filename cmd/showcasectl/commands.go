package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	httphandler "github.com/victorcollective/showcase/internal/adapter/driving/http"
	"github.com/victorcollective/showcase/internal/config"
	"github.com/victorcollective/showcase/internal/domain/model"
)

func newRootCmd(svc services) *cobra.Command {
	root := &cobra.Command{
		Use:           "showcasectl",
		Short:         "Inspect the portfolio showcase from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newProjectsCmd(svc), newPostsCmd(svc), newInboxCmd(svc))
	return root
}

// =============================================================================
// PROJECTS COMMAND
// =============================================================================

func newProjectsCmd(svc services) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Fetch, merge and rank the project list once",
		Long: `Runs the project pipeline against GitHub using SHOWCASE_* environment
configuration. When GitHub is unreachable the static override list is shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			projectSvc, err := svc.projects()
			if err != nil {
				return err
			}

			list := projectSvc.RankedProjects(cmd.Context())
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(httphandler.ToProjectListResponse(list))
			}
			return printProjects(cmd, list)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the list as the API JSON body")
	return cmd
}

func printProjects(cmd *cobra.Command, list model.ProjectList) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "source: %s\n", list.Source)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tFEATURED\tORDER\tSOURCE")
	for _, p := range list.Projects {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%d\t%s\n", p.ID, p.Title, p.Category, p.Featured, p.Order, p.SourceURL)
	}
	return tw.Flush()
}

// =============================================================================
// POSTS COMMAND
// =============================================================================

func newPostsCmd(svc services) *cobra.Command {
	var tag string

	cmd := &cobra.Command{
		Use:   "posts",
		Short: "List blog posts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			blogSvc, err := svc.blog()
			if err != nil {
				return err
			}

			posts := blogSvc.ListPosts()
			if tag != "" {
				posts = blogSvc.PostsByTag(tag)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "DATE\tSLUG\tTITLE\tTAGS")
			for _, p := range posts {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.Date.Format("2006-01-02"), p.Slug, p.Title, strings.Join(p.Tags, ", "))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&tag, "tag", "", "only list posts carrying this tag")
	return cmd
}

// =============================================================================
// INBOX COMMAND
// =============================================================================

func newInboxCmd(svc services) *cobra.Command {
	var (
		dbPath string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "inbox",
		Short: "Show recent contact messages and the newsletter subscriber count",
		Long: `Reads the inbox database at --db, or SHOWCASE_DB_PATH when the flag is
not given. Pending migrations are applied before reading.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dbPath == "" {
				dbPath = config.DBPath()
			}

			inboxSvc, closeDB, err := svc.inbox(cmd.Context(), dbPath)
			if err != nil {
				return err
			}
			defer func() { _ = closeDB() }()

			count, err := inboxSvc.SubscriberCount(cmd.Context())
			if err != nil {
				return err
			}
			msgs, err := inboxSvc.RecentMessages(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "subscribers: %d\n", count)
			if len(msgs) == 0 {
				fmt.Fprintln(out, "no contact messages")
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tRECEIVED\tFROM\tSUBJECT")
			for _, m := range msgs {
				fmt.Fprintf(tw, "%d\t%s\t%s <%s>\t%s\n", m.ID, m.CreatedAt.Format("2006-01-02 15:04"), m.Name, m.Email, m.Subject)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "inbox database path (default $SHOWCASE_DB_PATH or showcase.db)")
	cmd.Flags().IntVar(&limit, "limit", 10, "number of messages to show")
	return cmd
}
