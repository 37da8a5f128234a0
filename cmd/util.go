package cmd

import (
	"time"

	"github.com/briandowns/spinner"

	"github.com/tranvictor/zilname/config"
	"github.com/tranvictor/zilname/networks"
	"github.com/tranvictor/zilname/provider"
	"github.com/tranvictor/zilname/zns"
)

func currentZNS() *zns.ZNS {
	network := networks.CurrentNetwork()
	nodeURL := config.Node
	if nodeURL == "" {
		nodeURL = networks.GetNodeURL(network)
	}
	return zns.New(network, provider.NewZilliqaProvider(network.GetName(), nodeURL))
}

// withSpinner runs fn with a terminal spinner alive while the network round
// trips are in flight.
func withSpinner(label string, fn func() error) error {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + label
	s.Start()
	defer s.Stop()
	return fn()
}
