package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/gridlog/gridlog/internal/cli/formatter"
	"github.com/gridlog/gridlog/internal/domain"
	"github.com/spf13/cobra"
)

// resolveCategoryID matches either a name (case-insensitive) or an ID
// prefix against the stored legend.
func resolveCategoryID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("category name or ID is required")
	}

	cats, err := app.Categories.List(ctx)
	if err != nil {
		return "", err
	}

	for _, c := range cats {
		if strings.EqualFold(c.Name, input) {
			return c.ID, nil
		}
	}

	var matches []string
	for _, c := range cats {
		if strings.HasPrefix(c.ID, input) {
			matches = append(matches, c.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("category not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("category %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newCategoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage the category legend",
	}

	cmd.AddCommand(
		newCategoryListCmd(app),
		newCategoryAddCmd(app),
		newCategoryRenameCmd(app),
		newCategoryRemoveCmd(app),
	)

	return cmd
}

func newCategoryListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			cats, err := app.Categories.List(context.Background())
			if err != nil {
				return err
			}
			if len(cats) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No categories yet."))
				return nil
			}

			rows := make([][]string, 0, len(cats))
			for _, c := range cats {
				rows = append(rows, []string{
					formatter.CategoryStyle(c).Render("■ " + c.Name),
					c.Color,
					c.ID[:8],
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable([]string{"Name", "Color", "ID"}, rows))
			return nil
		},
	}
}

func newCategoryAddCmd(app *App) *cobra.Command {
	var color string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := &domain.Category{Name: args[0], Color: color}
			if err := app.Categories.Create(context.Background(), cat); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created category %s (%s)\n", cat.Name, cat.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", string(formatter.ColorBlue), "hex color for the legend swatch")
	return cmd
}

func newCategoryRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <name-or-id> <new-name>",
		Short: "Rename a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveCategoryID(ctx, app, args[0])
			if err != nil {
				return err
			}
			cat, err := app.Categories.GetByID(ctx, id)
			if err != nil {
				return err
			}
			cat.Name = args[1]
			if err := app.Categories.Update(ctx, cat); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed to %s\n", cat.Name)
			return nil
		},
	}
}

func newCategoryRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <name-or-id>",
		Short: "Delete a category (logged slots keep their time, lose the label)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveCategoryID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Categories.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Category deleted")
			return nil
		},
	}
}
