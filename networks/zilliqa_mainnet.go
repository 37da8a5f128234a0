package networks

var ZilliqaMainnet Network = NewZilliqaMainnet()

type zilliqaMainnet struct{}

func NewZilliqaMainnet() *zilliqaMainnet {
	return &zilliqaMainnet{}
}

func (self *zilliqaMainnet) GetName() string {
	return "zilliqa"
}

func (self *zilliqaMainnet) GetAlternativeNames() []string {
	return []string{"zil", "zilliqa-mainnet"}
}

func (self *zilliqaMainnet) GetChainID() uint64 {
	return 1
}

func (self *zilliqaMainnet) GetTLD() string {
	return "zil"
}

func (self *zilliqaMainnet) GetRegistryContract() string {
	// zil1jcgu2wlx6xejqk9jw3aaankw6lsjzeunx2j0jz
	return "0x9611c53BE6d1b32058b2747bdeCECed7e1216793"
}

func (self *zilliqaMainnet) GetNodeVariableName() string {
	return "ZILLIQA_MAINNET_NODE"
}

func (self *zilliqaMainnet) GetDefaultNodes() map[string]string {
	return map[string]string{
		"zilliqa-api": "https://api.zilliqa.com",
	}
}

func (self *zilliqaMainnet) MarshalJSON() ([]byte, error) {
	return marshalNetworkJSON(self)
}
