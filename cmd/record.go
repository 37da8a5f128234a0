package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tranvictor/zilname/common"
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Look one dotted-path record of a .zil domain up",
	Long:  `Takes a domain and a record key, eg. zilname record brad.zil ipfs.html.value. Without a key, all records of the domain are listed.`,
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		domain := args[0]
		z := currentZNS()

		if len(args) == 1 {
			var records map[string]string
			err := withSpinner(fmt.Sprintf("fetching records of %s...", domain), func() (e error) {
				records, e = z.Records(domain)
				return
			})
			if err != nil {
				fmt.Printf("%s\n", common.AlertColor(err.Error()))
				return
			}
			if len(records) == 0 {
				fmt.Printf("No records are set on this domain.\n")
				return
			}
			keys := []string{}
			for k := range records {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Printf("%s: %s\n", k, common.InfoColor(records[k]))
			}
			return
		}

		field := args[1]
		var value string
		err := withSpinner(fmt.Sprintf("fetching %s of %s...", field, domain), func() (e error) {
			value, e = z.Record(domain, field)
			return
		})
		if err != nil {
			fmt.Printf("%s\n", common.AlertColor(err.Error()))
			return
		}
		fmt.Printf("%s\n", common.InfoColor(value))
	},
}

func init() {
	rootCmd.AddCommand(recordCmd)
}
