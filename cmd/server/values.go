package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/segmentio/encoding/json"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/springweb/springweb/internal/config"
	"github.com/springweb/springweb/internal/service"
)

func newValuesCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "values",
		Short: "Print the configured values",
		Long:  "Print the values the /api/var/values endpoint would return, as a table or as JSON.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			snap := service.NewValuesService(cfg).Snapshot()
			if asJSON {
				return writeValuesJSON(cmd.OutOrStdout(), snap)
			}
			writeValuesTable(cmd.OutOrStdout(), snap)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")

	return cmd
}

func writeValuesJSON(w io.Writer, snap service.ValuesSnapshot) error {
	out, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func writeValuesTable(w io.Writer, snap service.ValuesSnapshot) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Key", "Value"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)

	table.Append([]string{"username", snap.Username})
	table.Append([]string{"message", snap.Message})
	table.Append([]string{"code", strconv.Itoa(snap.Code)})
	table.Append([]string{"listOfValues", strings.Join(snap.ListOfValues, ", ")})
	table.Append([]string{"valueString", snap.ValueString})
	table.Append([]string{"product", snap.Product})

	keys := make([]string, 0, len(snap.ValuesMap))
	for k := range snap.ValuesMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		table.Append([]string{"valuesMap." + k, cast.ToString(snap.ValuesMap[k])})
	}

	table.Render()
}
