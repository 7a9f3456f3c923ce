package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/coursecatalog/catalog/internal/models"
)

func newCoursesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "courses",
		Short: "List, show and edit courses",
	}
	cmd.AddCommand(newCoursesListCmd(a), newCoursesGetCmd(a), newCoursesSaveCmd(a))
	return cmd
}

func newCoursesListCmd(a *app) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List courses ordered by sequence number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if category != "" && !models.Category(category).Valid() {
				return fmt.Errorf("unknown category %q", category)
			}

			courses, err := a.client.FindAllCourses(cmd.Context())
			if err != nil {
				return err
			}
			courses = models.SortCoursesBySeqNo(courses)
			if category != "" {
				courses = models.FilterByCategory(courses, models.Category(category))
			}

			if a.asJSON {
				return a.printJSON(courses)
			}
			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tSEQ\tCATEGORY\tLESSONS\tDESCRIPTION")
			for _, c := range courses {
				fmt.Fprintf(tw, "%d\t%d\t%s\t%d\t%s\n", c.ID, c.SeqNo, c.Category, c.LessonsCount, c.Titles.Description)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "only courses of this category (BEGINNER or ADVANCED)")
	return cmd
}

func newCoursesGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			course, err := a.client.FindCourseByID(cmd.Context(), id)
			if err != nil {
				return err
			}

			if a.asJSON {
				return a.printJSON(course)
			}
			printCourse(a, course)
			return nil
		},
	}
}

func newCoursesSaveCmd(a *app) *cobra.Command {
	var (
		description     string
		longDescription string
		iconURL         string
		category        string
		seqNo           int
	)

	cmd := &cobra.Command{
		Use:   "save <id>",
		Short: "Apply a partial update to a course",
		Long: `Apply a partial update to a course.

Only the flags given on the command line are sent to the server.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			var changes models.CourseChanges
			if flags.Changed("description") || flags.Changed("long-description") {
				changes.Titles = &models.TitlesChanges{}
				if flags.Changed("description") {
					changes.Titles.Description = &description
				}
				if flags.Changed("long-description") {
					changes.Titles.LongDescription = &longDescription
				}
			}
			if flags.Changed("icon-url") {
				changes.IconURL = &iconURL
			}
			if flags.Changed("category") {
				c := models.Category(category)
				if !c.Valid() {
					return fmt.Errorf("unknown category %q", category)
				}
				changes.Category = &c
			}
			if flags.Changed("seq-no") {
				changes.SeqNo = &seqNo
			}
			if changes.IsEmpty() {
				return fmt.Errorf("nothing to save, set at least one field flag")
			}

			course, err := a.client.SaveCourse(cmd.Context(), id, changes)
			if err != nil {
				return err
			}

			if a.asJSON {
				return a.printJSON(course)
			}
			printCourse(a, course)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&description, "description", "", "course title")
	flags.StringVar(&longDescription, "long-description", "", "course summary")
	flags.StringVar(&iconURL, "icon-url", "", "course image URL")
	flags.StringVar(&category, "category", "", "BEGINNER or ADVANCED")
	flags.IntVar(&seqNo, "seq-no", 0, "position in the course list")
	return cmd
}

func printCourse(a *app, c *models.Course) {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\t%d\n", c.ID)
	fmt.Fprintf(tw, "Description\t%s\n", c.Titles.Description)
	if c.Titles.LongDescription != "" {
		fmt.Fprintf(tw, "Summary\t%s\n", c.Titles.LongDescription)
	}
	fmt.Fprintf(tw, "Category\t%s\n", c.Category)
	fmt.Fprintf(tw, "Lessons\t%d\n", c.LessonsCount)
	fmt.Fprintf(tw, "Seq\t%d\n", c.SeqNo)
	fmt.Fprintf(tw, "Icon\t%s\n", c.IconURL)
	tw.Flush()
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid course id %q", s)
	}
	return id, nil
}
