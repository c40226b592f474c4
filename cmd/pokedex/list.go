package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/meur/pokedex/internal/catalog"
	"github.com/meur/pokedex/internal/models"
	"github.com/meur/pokedex/internal/storage"
)

type listOptions struct {
	query string
	types []string
	desc  bool
	json  bool
}

func newListCmd(opts *options) *cobra.Command {
	lo := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the visible list without the interactive screen",
		Long: `Prints the entries that the interactive screen would show for the given
search text, selected types and sort order.

Examples:
  pokedex list --query pika
  pokedex list --type fire --type water
  pokedex list --query "#00" --desc --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := lo.state()
			if err != nil {
				return err
			}

			items := catalog.Visible(storage.New().GetItems(), state)
			opts.logger.Debug("list",
				zap.String("query", state.Query),
				zap.Int("types", state.Selected.Len()),
				zap.Bool("ascending", state.Ascending),
				zap.Int("visible", len(items)))

			if lo.json {
				return writeJSON(cmd.OutOrStdout(), items)
			}
			if len(items) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "No Pokémon found")
				return nil
			}
			return writeLines(cmd.OutOrStdout(), items)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&lo.query, "query", "q", "", "Search text matched against names and #NNN numbers")
	flags.StringSliceVarP(&lo.types, "type", "t", nil, "Type to filter by (repeat or comma separate)")
	flags.BoolVar(&lo.desc, "desc", false, "Sort by number, highest first")
	flags.BoolVar(&lo.json, "json", false, "Print a JSON array")
	return cmd
}

// state builds the view state the flags describe
func (lo *listOptions) state() (catalog.State, error) {
	state := catalog.DefaultState().WithQuery(lo.query)
	for _, label := range lo.types {
		t, ok := models.ParseType(label)
		if !ok {
			return catalog.State{}, fmt.Errorf("unknown type %q", label)
		}
		if !state.Selected.Has(t) {
			state = state.ToggleType(t)
		}
	}
	if lo.desc {
		state = state.ToggleSort()
	}
	return state, nil
}

type listEntry struct {
	Number int               `json:"number"`
	Code   string            `json:"code"`
	Name   string            `json:"name"`
	Types  []models.PokeType `json:"types"`
}

func writeJSON(w io.Writer, items []models.Pokemon) error {
	entries := make([]listEntry, len(items))
	for i, p := range items {
		entries[i] = listEntry{Number: p.Number, Code: p.Code(), Name: p.Name, Types: p.Types}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("failed to encode list: %w", err)
	}
	return nil
}

func writeLines(w io.Writer, items []models.Pokemon) error {
	for _, p := range items {
		if _, err := fmt.Fprintf(w, "%-5s %-12s %s\n", p.Code(), p.Name, p.TypeLabel()); err != nil {
			return err
		}
	}
	return nil
}

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "Print the type labels in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, t := range models.AllTypes() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), t); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
