package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/EZ-Api/readability/internal/store"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previously scored documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		st, err := store.New(cfg.Database)
		if err != nil {
			return err
		}
		defer st.Close()

		scores, err := st.Recent(historyLimit)
		if err != nil {
			return err
		}
		if len(scores) == 0 {
			fmt.Println("no scored documents yet")
			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"When", "Source", "Words", "FRES", "ARI", "GFI", "SMOG"})
		table.SetBorder(false)
		table.SetColumnSeparator("  ")
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)

		for _, sc := range scores {
			table.Append([]string{
				sc.Timestamp.Format("2006-01-02 15:04"),
				sc.Source,
				fmt.Sprintf("%d", sc.Words),
				fmt.Sprintf("%.1f", sc.FRES),
				fmt.Sprintf("%.1f", sc.ARI),
				fmt.Sprintf("%.1f", sc.GFI),
				fmt.Sprintf("%d", sc.SMOG),
			})
		}
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of entries to show")
}
