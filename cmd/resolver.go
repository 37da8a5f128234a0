package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tranvictor/zilname/common"
)

var resolverCmd = &cobra.Command{
	Use:   "resolver",
	Short: "Show the resolver contract address of a .zil domain",
	Long:  ``,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		domain := args[0]
		z := currentZNS()

		var resolverAddr string
		err := withSpinner(fmt.Sprintf("looking resolver of %s up...", domain), func() (e error) {
			resolverAddr, e = z.Resolver(domain)
			return
		})
		if err != nil {
			fmt.Printf("%s\n", common.AlertColor(err.Error()))
			return
		}
		fmt.Printf("%s\n", common.InfoColor(resolverAddr))
	},
}

func init() {
	rootCmd.AddCommand(resolverCmd)
}
