package networks

var ZilliqaTestnet Network = NewZilliqaTestnet()

type zilliqaTestnet struct{}

func NewZilliqaTestnet() *zilliqaTestnet {
	return &zilliqaTestnet{}
}

func (self *zilliqaTestnet) GetName() string {
	return "zilliqa-testnet"
}

func (self *zilliqaTestnet) GetAlternativeNames() []string {
	return []string{"zil-testnet", "dev-testnet"}
}

func (self *zilliqaTestnet) GetChainID() uint64 {
	return 333
}

func (self *zilliqaTestnet) GetTLD() string {
	return "zil"
}

func (self *zilliqaTestnet) GetRegistryContract() string {
	// ZNS has no official testnet registry deployment. Resolution against
	// this network reports an unsupported network unless the user adds a
	// custom network with their own registry.
	return ""
}

func (self *zilliqaTestnet) GetNodeVariableName() string {
	return "ZILLIQA_TESTNET_NODE"
}

func (self *zilliqaTestnet) GetDefaultNodes() map[string]string {
	return map[string]string{
		"zilliqa-dev-api": "https://dev-api.zilliqa.com",
	}
}

func (self *zilliqaTestnet) MarshalJSON() ([]byte, error) {
	return marshalNetworkJSON(self)
}
