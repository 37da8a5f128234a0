package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tranvictor/zilname/common"
)

var namehashCmd = &cobra.Command{
	Use:   "namehash",
	Short: "Compute the registry node of a .zil domain offline",
	Long:  ``,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		domain := args[0]
		z := currentZNS()

		node, err := z.Namehash(domain)
		if err != nil {
			fmt.Printf("%s\n", common.AlertColor(err.Error()))
			return
		}
		fmt.Printf("%s\n", node.Hex())
	},
}

func init() {
	rootCmd.AddCommand(namehashCmd)
}
