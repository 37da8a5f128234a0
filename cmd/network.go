package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tranvictor/zilname/networks"
)

var NetworkForce bool

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Manage the naming service networks zilname can talk to",
	Long:  ``,
}

var addNetworkCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new naming service network to the supported networks list locally",
	Long: `--config flag is supported to pass a new network config json filepath OR pass a json string. The json should be in the following format:
	{
		"name": "network_name",
		"alternative_names": ["alternative_name_1", "alternative_name_2"],
		"chain_id": 1,
		"tld": "zil",
		"registry_contract": "0x9611c53BE6d1b32058b2747bdeCECed7e1216793",
		"node_variable_name": "ZILNAME_NODE_1",
		"default_nodes": {
			"node_name_1": "node_url_1",
			"node_name_2": "node_url_2"
		}
	}`,
	Run: func(cmd *cobra.Command, args []string) {
		// check if the network config json is passed via --config flag
		config, err := cmd.Flags().GetString("config")
		if err != nil {
			fmt.Printf("Error: %s\n", err)
			return
		}

		var newNetwork networks.Network
		config = strings.TrimSpace(config)
		if config != "" && strings.HasPrefix(config, "{") && strings.HasSuffix(config, "}") {
			newNetwork, err = networks.NewNetworkFromJSON([]byte(config))
			if err != nil {
				fmt.Printf("The provided json is not valid: %s\n", err)
				return
			}
		} else if config != "" {
			// in this case, config is supposed to be a path to a json file
			jsonFile, err := os.Open(config)
			if err != nil {
				fmt.Printf("Couldn't open the provided json file: %s\n", err)
				return
			}
			defer jsonFile.Close()

			jsonBytes, err := io.ReadAll(jsonFile)
			if err != nil {
				fmt.Printf("Couldn't read the provided json file: %s\n", err)
				return
			}
			newNetwork, err = networks.NewNetworkFromJSON(jsonBytes)
			if err != nil {
				fmt.Printf("The provided json is not a valid network config: %s\n", err)
				return
			}
		} else {
			fmt.Printf("No network config provided. Pass one with --config.\n")
			return
		}

		allNames := []string{newNetwork.GetName()}
		allNames = append(allNames, newNetwork.GetAlternativeNames()...)

		var willReplace bool
		for _, name := range allNames {
			_, err = networks.GetNetwork(name)
			if err == nil && !NetworkForce {
				fmt.Printf("Network with name %s already exists. Abort. If you want to update the network, use flag --force.\n", name)
				return
			}

			if err == nil && NetworkForce {
				fmt.Printf("Network with name %s already exists. We will replace it with the new network.\n", name)
				willReplace = true
				continue
			}

			// err is not nil means the network is not found, hence we can add it
			if err != nil {
				willReplace = true
				continue
			}
		}

		if willReplace {
			err = networks.AddNetwork(newNetwork)
			if err != nil {
				fmt.Printf("Failed to add the new network: %s\n", err)
				return
			}
			fmt.Printf("Network %s with chain ID %d added and saved to ~/.zilname/networks/.\n", newNetwork.GetName(), newNetwork.GetChainID())
		}
	},
}

var listNetworkCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all of supported naming service networks",
	Long:  ``,
	Run: func(cmd *cobra.Command, args []string) {
		supported := networks.GetSupportedNetworks()
		for i, n := range supported {
			registry := n.GetRegistryContract()
			if registry == "" {
				registry = "no registry, resolution unsupported"
			}
			fmt.Printf("%d. %s (tld .%s, registry: %s)\n", i+1, n.GetName(), n.GetTLD(), registry)
		}
	},
}

func init() {
	networkCmd.AddCommand(addNetworkCmd)
	networkCmd.AddCommand(listNetworkCmd)
	addNetworkCmd.Flags().String("config", "", "Path to a network config json file or a json string.")
	addNetworkCmd.Flags().BoolVar(&NetworkForce, "force", false, "Replace the network if one with the same name already exists.")
	rootCmd.AddCommand(networkCmd)
}
