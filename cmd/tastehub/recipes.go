package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tastehub/tastehub-go/cmd/tastehub/commands"
	"github.com/tastehub/tastehub-go/pkg/recipe"
)

func newRecipesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "recipes",
		Aliases: []string{"recipe"},
		Short:   "Browse the recipe catalog",
	}
	cmd.AddCommand(newRecipesListCmd(a), newRecipesShowCmd(a), newRecipesFeaturedCmd(a))
	return cmd
}

func newRecipesListCmd(a *app) *cobra.Command {
	var search, region, difficulty string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recipes, optionally filtered",
		Long: `List recipes in catalog order.

Filters combine: --search matches part of the name, region, description
or an ingredient (case-insensitive); --region and --difficulty must match
exactly.

Examples:
  tastehub recipes list
  tastehub recipes list --search dum
  tastehub recipes list --search saffron
  tastehub recipes list --region Kerala --difficulty easy`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q := recipe.Query{Search: search, Region: region}
			if difficulty != "" {
				d, err := recipe.ParseDifficulty(difficulty)
				if err != nil {
					return err
				}
				q.Difficulty = d
			}

			c, err := a.catalog()
			if err != nil {
				return err
			}
			return commands.RunList(c, q, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Match part of the name, region, description or ingredients")
	cmd.Flags().StringVar(&region, "region", "", "Only recipes from this region")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "Only recipes of this difficulty (easy, medium, hard)")
	return cmd
}

func newRecipesShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one recipe in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.catalog()
			if err != nil {
				return err
			}
			return commands.RunShow(c, args[0], cmd.OutOrStdout())
		},
	}
}

func newRecipesFeaturedCmd(a *app) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "featured",
		Short: "Pick random recipes to feature",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count <= 0 {
				return fmt.Errorf("count must be positive, got %d", count)
			}
			c, err := a.catalog()
			if err != nil {
				return err
			}
			for _, r := range c.Featured(count, nil) {
				fmt.Fprintf(cmd.OutOrStdout(), "%-18s %s (%s)\n", r.ID, r.Name, r.Region)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 3, "Number of recipes")
	return cmd
}
