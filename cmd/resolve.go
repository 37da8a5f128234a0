package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tranvictor/zilname/common"
	"github.com/tranvictor/zilname/config"
	"github.com/tranvictor/zilname/zns"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve a .zil domain to its owner and cryptocurrency addresses",
	Long:  ``,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		domain := args[0]
		z := currentZNS()

		var response *zns.ResolutionResponse
		err := withSpinner(fmt.Sprintf("resolving %s...", domain), func() (e error) {
			response, e = z.Resolve(domain)
			return
		})
		if err != nil {
			fmt.Printf("%s\n", common.AlertColor(err.Error()))
			return
		}

		if config.JSONOutput {
			content, _ := json.MarshalIndent(response, "", "  ")
			fmt.Printf("%s\n", content)
			return
		}

		fmt.Printf("Domain: %s\n", domain)
		fmt.Printf("Owner: %s\n", common.OwnerWithColor(response.Meta.Owner))
		if response.Meta.Owner == "" {
			return
		}
		fmt.Printf("TTL: %d\n", response.Meta.TTL)

		if len(response.Addresses) == 0 {
			fmt.Printf("No cryptocurrency addresses are set on this domain.\n")
			return
		}
		tickers := []string{}
		for ticker := range response.Addresses {
			tickers = append(tickers, ticker)
		}
		sort.Strings(tickers)
		fmt.Printf("Addresses:\n")
		for _, ticker := range tickers {
			fmt.Printf("  %s: %s\n", ticker, common.InfoColor(response.Addresses[ticker]))
		}
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.PersistentFlags().
		BoolVarP(&config.JSONOutput, "json", "j", false, "Print the full resolution response as JSON instead of a human readable summary.")
}
