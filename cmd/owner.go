package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tranvictor/zilname/common"
)

var ownerCmd = &cobra.Command{
	Use:   "owner",
	Short: "Show the owner of a .zil domain",
	Long:  ``,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		domain := args[0]
		z := currentZNS()

		var owner string
		err := withSpinner(fmt.Sprintf("looking owner of %s up...", domain), func() (e error) {
			owner, e = z.Owner(domain)
			return
		})
		if err != nil {
			fmt.Printf("%s\n", common.AlertColor(err.Error()))
			return
		}
		fmt.Printf("%s\n", common.OwnerWithColor(owner))
	},
}

func init() {
	rootCmd.AddCommand(ownerCmd)
}
