package cmd

import (
	"errors"
	"fmt"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/tranvictor/zilname/common"
	"github.com/tranvictor/zilname/zns"
)

var addressCmd = &cobra.Command{
	Use:   "address",
	Short: "Look up one cryptocurrency address of a .zil domain",
	Long:  `Takes a domain and a currency ticker (matched case insensitively), eg. zilname address brad.zil ETH`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		domain, ticker := args[0], args[1]
		z := currentZNS()

		var addr string
		err := withSpinner(fmt.Sprintf("looking %s address of %s up...", ticker, domain), func() (e error) {
			addr, e = z.Address(domain, ticker)
			return
		})
		if err == nil {
			fmt.Printf("%s\n", common.InfoColor(addr))
			return
		}

		fmt.Printf("%s\n", common.AlertColor(err.Error()))
		if errors.Is(err, zns.ErrUnspecifiedCurrency) {
			if response, rerr := z.Resolve(domain); rerr == nil {
				suggestTicker(ticker, response.Addresses)
			}
		}
	},
}

// suggestTicker fuzzy-matches the requested ticker against the tickers that
// are actually set on the domain.
func suggestTicker(ticker string, addresses map[string]string) {
	available := []string{}
	for t := range addresses {
		available = append(available, t)
	}
	matches := fuzzy.Find(ticker, available)
	if len(matches) > 0 {
		fmt.Printf("Did you mean %s?\n", common.InfoColor(matches[0].Str))
		return
	}
	if len(available) > 0 {
		fmt.Printf("Tickers set on this domain: %v\n", available)
	}
}

func init() {
	rootCmd.AddCommand(addressCmd)
}
