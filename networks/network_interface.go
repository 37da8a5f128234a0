package networks

// Network describes one naming-service network: which chain it runs on,
// which top level label its registry claims, where the registry contract
// lives and which JSON-RPC nodes serve it. Implementations are immutable
// after construction.
type Network interface {
	GetName() string
	GetAlternativeNames() []string
	GetChainID() uint64

	// GetTLD returns the top level label the network's registry claims,
	// e.g. "zil".
	GetTLD() string

	// GetRegistryContract returns the checksummed hex address of the ZNS
	// registry contract, or "" when the network has no registry deployed
	// (the network is then unsupported for resolution).
	GetRegistryContract() string

	GetNodeVariableName() string
	GetDefaultNodes() map[string]string

	MarshalJSON() ([]byte, error)
}
