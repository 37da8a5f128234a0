// Package provider is the JSON-RPC gateway to naming-service networks. The
// Zilliqa API speaks plain JSON-RPC 2.0 over HTTP, which go-ethereum's rpc
// client handles as-is.
package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/rpc"
)

const TIMEOUT time.Duration = 4 * time.Second

// ErrServiceDown wraps every transport level failure (connection refused,
// timeout, non-JSON response). JSON-RPC errors returned by the node itself
// are re-raised opaque instead.
var ErrServiceDown = errors.New("naming service is down")

// SubStateFetcher fetches one field of a contract's mutable state, filtered
// down to the given keys. An empty keys slice fetches the whole field. A nil
// map (and nil error) means the requested sub-state does not exist.
type SubStateFetcher interface {
	FetchSubState(ctx context.Context, contractAddr, field string, keys []string) (map[string]json.RawMessage, error)
}

type ZilliqaProvider struct {
	nodeName string
	nodeURL  string
	client   *rpc.Client
	mu       sync.Mutex
}

func NewZilliqaProvider(name, url string) *ZilliqaProvider {
	return &ZilliqaProvider{
		nodeName: name,
		nodeURL:  url,
		client:   nil,
		mu:       sync.Mutex{},
	}
}

func (zp *ZilliqaProvider) NodeName() string {
	return zp.nodeName
}

func (zp *ZilliqaProvider) NodeURL() string {
	return zp.nodeURL
}

func (zp *ZilliqaProvider) initConnection() error {
	zp.mu.Lock()
	defer zp.mu.Unlock()
	if zp.client != nil {
		return nil
	}
	client, err := rpc.Dial(zp.nodeURL)
	if err != nil {
		return fmt.Errorf("%w: couldn't connect to %s: %s", ErrServiceDown, zp.nodeName, err)
	}
	zp.client = client
	return nil
}

func (zp *ZilliqaProvider) Client() (*rpc.Client, error) {
	if zp.client != nil {
		return zp.client, nil
	}
	err := zp.initConnection()
	return zp.client, err
}

// FetchSubState calls GetSmartContractSubState. contractAddr must be in the
// canonical bare base16 form, the API rejects 0x-prefixed and bech32 forms.
func (zp *ZilliqaProvider) FetchSubState(
	ctx context.Context,
	contractAddr, field string,
	keys []string,
) (map[string]json.RawMessage, error) {
	client, err := zp.Client()
	if err != nil {
		return nil, err
	}

	timeoutContext, cancel := context.WithTimeout(ctx, TIMEOUT)
	defer cancel()

	if keys == nil {
		keys = []string{}
	}

	var result map[string]map[string]json.RawMessage
	err = client.CallContext(timeoutContext, &result, "GetSmartContractSubState", contractAddr, field, keys)
	if err != nil {
		var rpcErr rpc.Error
		if errors.As(err, &rpcErr) {
			// the node answered, the request itself was rejected
			return nil, fmt.Errorf("node %s rejected the substate query: %w", zp.nodeName, err)
		}
		return nil, fmt.Errorf("%w: substate query to %s failed: %s", ErrServiceDown, zp.nodeName, err)
	}

	if result == nil {
		return nil, nil
	}
	return result[field], nil
}
