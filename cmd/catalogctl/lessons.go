package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/coursecatalog/catalog/internal/models"
)

func newLessonsCmd(a *app) *cobra.Command {
	var (
		filter    string
		sortOrder string
		page      int
		size      int
	)

	cmd := &cobra.Command{
		Use:   "lessons <courseId>",
		Short: "List one page of a course's lessons",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			courseID, err := parseID(args[0])
			if err != nil {
				return err
			}

			query := models.NewLessonsQuery(courseID)
			query.Filter = filter
			query.SortOrder = models.SortOrder(sortOrder)
			query.PageNumber = page
			query.PageSize = size

			lessons, err := a.client.FindLessons(cmd.Context(), query)
			if err != nil {
				return err
			}

			if a.asJSON {
				return a.printJSON(lessons)
			}
			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "#\tDESCRIPTION\tDURATION")
			for _, l := range lessons {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", l.SeqNo, l.Description, l.Duration)
			}
			return tw.Flush()
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&filter, "filter", "", "substring of the lesson description")
	flags.StringVar(&sortOrder, "sort", string(models.SortOrderAsc), "asc or desc by sequence number")
	flags.IntVar(&page, "page", 0, "zero-based page index")
	flags.IntVar(&size, "size", models.DefaultLessonsPageSize, "lessons per page")
	return cmd
}
