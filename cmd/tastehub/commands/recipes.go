package commands

import (
	"fmt"
	"io"

	"github.com/tastehub/tastehub-go/pkg/countdown"
	"github.com/tastehub/tastehub-go/pkg/recipe"
)

// RunList prints the recipes matching q, one per line.
func RunList(c *recipe.Catalog, q recipe.Query, w io.Writer) error {
	recipes := c.Filter(q)
	if len(recipes) == 0 {
		fmt.Fprintln(w, "No recipes match.")
		return nil
	}

	fmt.Fprintf(w, "%-18s %-28s %-14s %-7s %s\n", "ID", "NAME", "REGION", "LEVEL", "TIME")
	for _, r := range recipes {
		fmt.Fprintf(w, "%-18s %-28s %-14s %-7s %s\n",
			r.ID, r.Name, r.Region, r.Difficulty, formatMinutes(r.TotalMinutes()))
	}
	fmt.Fprintf(w, "\n%d of %d recipes\n", len(recipes), c.Len())
	return nil
}

// RunShow prints one recipe in full.
func RunShow(c *recipe.Catalog, id string, w io.Writer) error {
	r, err := c.Get(id)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s\n", r.Name)
	fmt.Fprintf(w, "  Region:     %s\n", r.Region)
	fmt.Fprintf(w, "  Difficulty: %s\n", r.Difficulty)
	fmt.Fprintf(w, "  Serves:     %d\n", r.Servings)
	fmt.Fprintf(w, "  Prep:       %s\n", formatMinutes(r.PrepMinutes))
	fmt.Fprintf(w, "  Cook:       %s\n", formatMinutes(r.CookMinutes))
	if url := r.VideoURL(); url != "" {
		fmt.Fprintf(w, "  Video:      %s\n", url)
	}
	if r.Description != "" {
		fmt.Fprintf(w, "\n%s\n", r.Description)
	}

	fmt.Fprintln(w, "\nIngredients:")
	for _, ing := range r.Ingredients {
		fmt.Fprintf(w, "  - %s\n", ing)
	}

	fmt.Fprintln(w, "\nInstructions:")
	for i, step := range r.Instructions {
		fmt.Fprintf(w, "  %d. %s\n", i+1, step)
	}

	if len(r.Tips) > 0 {
		fmt.Fprintln(w, "\nTips:")
		for _, tip := range r.Tips {
			fmt.Fprintf(w, "  * %s\n", tip)
		}
	}
	return nil
}

// formatMinutes renders a minute count on the timer's clock face.
func formatMinutes(m int) string {
	return countdown.FormatTime(m * 60)
}
