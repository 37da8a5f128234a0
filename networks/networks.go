package networks

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
)

var (
	cachedNetwork Network
	mu            sync.Mutex
)

func CurrentNetwork() Network {
	if cachedNetwork != nil {
		return cachedNetwork
	}

	SetNetwork(NetworkString)

	return cachedNetwork
}

func SetNetwork(networkStr string) {
	mu.Lock()
	defer mu.Unlock()

	var err error
	var inited bool

	if cachedNetwork != nil {
		inited = true
	}

	cachedNetwork, err = GetNetwork(networkStr)
	if err != nil {
		cachedNetwork = ZilliqaMainnet
	} else {
		if inited {
			fmt.Printf("Switched to network: %s\n", cachedNetwork.GetName())
		}
	}
}

var NetworkString string

// GetNodeURL picks the JSON-RPC node to query for a network: the env var
// named by GetNodeVariableName when set, otherwise the first default node in
// name order.
func GetNodeURL(n Network) string {
	if url := strings.Trim(os.Getenv(n.GetNodeVariableName()), " "); url != "" {
		return url
	}

	nodes := n.GetDefaultNodes()
	names := make([]string, 0, len(nodes))
	for name := range nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) == 0 {
		return ""
	}
	return nodes[names[0]]
}
