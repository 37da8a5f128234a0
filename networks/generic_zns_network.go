package networks

import (
	"encoding/json"
)

type GenericZNSNetworkConfig struct {
	Name             string            `json:"name"`
	AlternativeNames []string          `json:"alternative_names"`
	ChainID          uint64            `json:"chain_id"`
	TLD              string            `json:"tld"`
	RegistryContract string            `json:"registry_contract"`
	NodeVariableName string            `json:"node_variable_name"`
	DefaultNodes     map[string]string `json:"default_nodes"`
}

// GenericZNSNetwork is a generic implementation of a naming-service network
// configured from JSON, used for custom registries and forks.
type GenericZNSNetwork struct {
	config GenericZNSNetworkConfig
}

func NewGenericZNSNetwork(config GenericZNSNetworkConfig) *GenericZNSNetwork {
	return &GenericZNSNetwork{config: config}
}

func (gn *GenericZNSNetwork) GetName() string {
	return gn.config.Name
}

func (gn *GenericZNSNetwork) GetAlternativeNames() []string {
	return gn.config.AlternativeNames
}

func (gn *GenericZNSNetwork) GetChainID() uint64 {
	return gn.config.ChainID
}

func (gn *GenericZNSNetwork) GetTLD() string {
	return gn.config.TLD
}

func (gn *GenericZNSNetwork) GetRegistryContract() string {
	return gn.config.RegistryContract
}

func (gn *GenericZNSNetwork) GetNodeVariableName() string {
	return gn.config.NodeVariableName
}

func (gn *GenericZNSNetwork) GetDefaultNodes() map[string]string {
	return gn.config.DefaultNodes
}

func (gn *GenericZNSNetwork) MarshalJSON() ([]byte, error) {
	return json.Marshal(gn.config)
}

// marshalNetworkJSON renders any Network in the generic config format so
// built-in networks can be exported and edited as custom ones.
func marshalNetworkJSON(n Network) ([]byte, error) {
	return json.Marshal(GenericZNSNetworkConfig{
		Name:             n.GetName(),
		AlternativeNames: n.GetAlternativeNames(),
		ChainID:          n.GetChainID(),
		TLD:              n.GetTLD(),
		RegistryContract: n.GetRegistryContract(),
		NodeVariableName: n.GetNodeVariableName(),
		DefaultNodes:     n.GetDefaultNodes(),
	})
}
