// Copyright © 2021 Victor Tran
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tranvictor/zilname/config"
	"github.com/tranvictor/zilname/networks"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "zilname",
	Short: "Resolve .zil blockchain domains to their on-chain identity records",
	Long: `Zilname is a command line tool to resolve .zil blockchain domains against
the on-chain ZNS registry and resolver contracts.

A .zil domain maps to an owner, an optional resolver contract and a flat set
of dotted-path records such as crypto.ETH.address or ipfs.html.value. Zilname
lets you:

	1. Resolve a domain to its owner and all of its cryptocurrency
	addresses in one call.

	2. Look individual records, the resolver contract or the owner up
	directly.

	3. Compute namehashes offline so you can key your own registry
	queries.

By default, zilname talks to the Zilliqa mainnet API at api.zilliqa.com. You
can point it at your own node with --node or by setting the env var named by
the network's configuration (ZILLIQA_MAINNET_NODE for mainnet), and you can
add custom networks with their own registries under ~/.zilname/networks/.

For more information or support, reach me at https://github.com/tranvictor.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		networks.SetNetwork(config.Network)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.PersistentFlags().
		StringVarP(&config.Network, "network", "k", "zilliqa", "naming service network. Valid values: \"zilliqa\", \"zilliqa-testnet\" or any custom network added with `zilname network add`.")
	rootCmd.PersistentFlags().
		StringVarP(&config.Node, "node", "u", "", "JSON-RPC node URL. If not specified, the network's env var override or default nodes are used.")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
