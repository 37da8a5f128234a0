// Package zns resolves .zil blockchain domains against the on-chain ZNS
// registry and resolver contracts.
package zns

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tranvictor/zilname/networks"
	"github.com/tranvictor/zilname/provider"
	"github.com/tranvictor/zilname/zaddress"
)

// recordsField is the contract state field both the registry and resolver
// contracts keep their mappings under.
const recordsField = "records"

const serviceName = "zns"

// ResolutionResponse is the typed result of Resolve. A domain nobody claimed
// yields the unclaimed sentinel: empty Addresses, empty Owner, zero TTL —
// distinct from an error.
type ResolutionResponse struct {
	Addresses map[string]string `json:"addresses"`
	Meta      ResolutionMeta    `json:"meta"`
}

type ResolutionMeta struct {
	Owner string `json:"owner"`
	Type  string `json:"type"`
	TTL   int64  `json:"ttl"`
}

// registryRecord mirrors the scilla ADT the registry stores per node:
// Record ByStr20 ByStr20 (owner, resolver).
type registryRecord struct {
	Arguments []string `json:"arguments"`
}

// The states a resolution request moves through, in order. There are no
// backward transitions; an unclaimed domain short-circuits forward to
// stateExtract which then builds the sentinel response.
type resolutionState int

const (
	stateSupportCheck resolutionState = iota
	stateRegistryLookup
	stateOwnerNormalize
	stateResolverLookup
	stateStructure
	stateExtract
)

// resolution carries one request through the pipeline. It is built fresh per
// call and never shared.
type resolution struct {
	domain       string
	node         Node
	claimed      bool
	owner        string
	resolverAddr string
	records      map[string]string
	tree         Tree
	response     *ResolutionResponse
}

// ZNS resolves domains against one naming-service network. It holds only
// read-only configuration fixed at construction, concurrent calls need no
// coordination.
type ZNS struct {
	network networks.Network
	fetcher provider.SubStateFetcher
	engine  *NamehashEngine
}

func New(network networks.Network, fetcher provider.SubStateFetcher) *ZNS {
	return &ZNS{
		network: network,
		fetcher: fetcher,
		engine:  NewNamehashEngine(network.GetTLD(), SHA256Hasher),
	}
}

// NewWithDefaults resolves against the current network using its default (or
// env-var overridden) node.
func NewWithDefaults() *ZNS {
	network := networks.CurrentNetwork()
	url := networks.GetNodeURL(network)
	return New(network, provider.NewZilliqaProvider(network.GetName(), url))
}

// run drives a resolution from stateSupportCheck up to and including target.
func (z *ZNS) run(ctx context.Context, domain string, target resolutionState) (*resolution, error) {
	res := &resolution{
		domain:  domain,
		records: map[string]string{},
		tree:    Tree{},
	}
	for state := stateSupportCheck; state <= target; state++ {
		halt, err := z.step(ctx, state, res)
		if err != nil {
			return nil, err
		}
		if halt {
			// terminal: the domain is not ours or nobody claimed it.
			// The extract state still runs so Resolve returns the
			// sentinel instead of an error.
			if target == stateExtract {
				z.stepExtract(res)
			}
			break
		}
	}
	return res, nil
}

func (z *ZNS) step(ctx context.Context, state resolutionState, res *resolution) (halt bool, err error) {
	switch state {
	case stateSupportCheck:
		return z.stepSupportCheck(res), nil
	case stateRegistryLookup:
		return z.stepRegistryLookup(ctx, res)
	case stateOwnerNormalize:
		return false, z.stepOwnerNormalize(res)
	case stateResolverLookup:
		return false, z.stepResolverLookup(ctx, res)
	case stateStructure:
		res.tree = StructureRecords(res.records)
		return false, nil
	case stateExtract:
		z.stepExtract(res)
		return false, nil
	}
	return false, fmt.Errorf("unknown resolution state %d", state)
}

func (z *ZNS) stepSupportCheck(res *resolution) (halt bool) {
	return !z.IsSupportedDomain(res.domain) || !z.IsSupportedNetwork()
}

func (z *ZNS) stepRegistryLookup(ctx context.Context, res *resolution) (bool, error) {
	node, err := z.engine.Namehash(res.domain)
	if err != nil {
		return false, err
	}
	res.node = node

	registry, err := zaddress.ToCanonical(z.network.GetRegistryContract())
	if err != nil {
		return false, &ResolutionError{Kind: ErrMalformedAddress, Domain: res.domain, Err: err}
	}

	entries, err := z.fetch(ctx, res.domain, registry, []string{node.Hex()})
	if err != nil {
		return false, err
	}

	raw, found := entries[node.Hex()]
	if !found {
		return true, nil
	}

	var record registryRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return false, fmt.Errorf("registry record of %s is not decodable: %w", res.domain, err)
	}
	if len(record.Arguments) > 0 {
		res.owner = record.Arguments[0]
	}
	if len(record.Arguments) > 1 {
		res.resolverAddr = record.Arguments[1]
	}
	if res.owner == "" || zaddress.IsZero(res.owner) {
		res.owner = ""
		return true, nil
	}
	res.claimed = true
	return false, nil
}

// stepOwnerNormalize converts a raw hex owner to its bech32 display form.
// Owners already in another form are surfaced untouched.
func (z *ZNS) stepOwnerNormalize(res *resolution) error {
	if !zaddress.IsHex(res.owner) {
		return nil
	}
	display, err := zaddress.ToBech32(res.owner)
	if err != nil {
		return &ResolutionError{Kind: ErrMalformedAddress, Domain: res.domain, Err: err}
	}
	res.owner = display
	return nil
}

func (z *ZNS) stepResolverLookup(ctx context.Context, res *resolution) error {
	if res.resolverAddr == "" || zaddress.IsZero(res.resolverAddr) {
		// owned domain with no resolver configured: empty record set,
		// not an error
		return nil
	}
	canonical, err := zaddress.ToCanonical(res.resolverAddr)
	if err != nil {
		return &ResolutionError{Kind: ErrMalformedAddress, Domain: res.domain, Err: err}
	}
	entries, err := z.fetch(ctx, res.domain, canonical, nil)
	if err != nil {
		return err
	}
	for key, raw := range entries {
		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			// non-string state entries aren't name records
			continue
		}
		res.records[key] = value
	}
	return nil
}

func (z *ZNS) stepExtract(res *resolution) {
	response := &ResolutionResponse{
		Addresses: map[string]string{},
		Meta:      ResolutionMeta{Owner: res.owner, Type: serviceName},
	}
	// a malformed ttl defaults to 0, the one upstream value we downgrade
	// silently
	if ttl, err := strconv.ParseInt(res.records["ttl"], 10, 64); err == nil {
		response.Meta.TTL = ttl
	}
	cryptoTree := res.tree.SubTree("crypto")
	for ticker := range cryptoTree {
		sub := cryptoTree.SubTree(ticker)
		if sub == nil {
			continue
		}
		if addr := sub.Leaf("address"); addr != "" {
			response.Addresses[ticker] = addr
		}
	}
	res.response = response
}

func (z *ZNS) fetch(ctx context.Context, domain, contractAddr string, keys []string) (map[string]json.RawMessage, error) {
	entries, err := z.fetcher.FetchSubState(ctx, contractAddr, recordsField, keys)
	if err != nil {
		if errors.Is(err, provider.ErrServiceDown) {
			return nil, &ResolutionError{Kind: ErrNamingServiceDown, Domain: domain, Err: err}
		}
		return nil, err
	}
	return entries, nil
}

// Resolve runs the full pipeline. It never errors for a well-formed domain
// short of a codec or transport failure: an unsupported or unclaimed domain
// yields the unclaimed sentinel.
func (z *ZNS) Resolve(domain string) (*ResolutionResponse, error) {
	res, err := z.run(context.Background(), domain, stateExtract)
	if err != nil {
		return nil, err
	}
	return res.response, nil
}

// Address returns the address registered for ticker (matched case
// insensitively) on domain.
func (z *ZNS) Address(domain, ticker string) (string, error) {
	response, err := z.Resolve(domain)
	if err != nil {
		return "", err
	}
	if response.Meta.Owner == "" {
		return "", newResolutionError(ErrUnregisteredDomain, domain)
	}
	for t, addr := range response.Addresses {
		if strings.EqualFold(t, ticker) {
			return addr, nil
		}
	}
	return "", newFieldError(ErrUnspecifiedCurrency, domain, ticker)
}

// Owner returns the display form of the domain's owner, "" when unclaimed.
func (z *ZNS) Owner(domain string) (string, error) {
	response, err := z.Resolve(domain)
	if err != nil {
		return "", err
	}
	return response.Meta.Owner, nil
}

// Record looks field up in the flat resolver record set, not the structured
// tree, so dotted keys match byte for byte.
func (z *ZNS) Record(domain, field string) (string, error) {
	res, err := z.run(context.Background(), domain, stateStructure)
	if err != nil {
		return "", err
	}
	value, found := res.records[field]
	if !found {
		return "", newFieldError(ErrRecordNotFound, domain, field)
	}
	return value, nil
}

// Records returns a copy of the domain's whole flat record set.
func (z *ZNS) Records(domain string) (map[string]string, error) {
	res, err := z.run(context.Background(), domain, stateResolverLookup)
	if err != nil {
		return nil, err
	}
	records := make(map[string]string, len(res.records))
	for k, v := range res.records {
		records[k] = v
	}
	return records, nil
}

// Resolver returns the domain's resolver contract address as the registry
// stores it. The two failure modes are distinguishable by kind: no registry
// entry (or null owner) is ErrUnregisteredDomain, an owned domain with a
// null resolver is ErrUnspecifiedResolver.
func (z *ZNS) Resolver(domain string) (string, error) {
	res, err := z.run(context.Background(), domain, stateRegistryLookup)
	if err != nil {
		return "", err
	}
	if !res.claimed {
		return "", newResolutionError(ErrUnregisteredDomain, domain)
	}
	if res.resolverAddr == "" || zaddress.IsZero(res.resolverAddr) {
		return "", newResolutionError(ErrUnspecifiedResolver, domain)
	}
	return res.resolverAddr, nil
}

// IsSupportedDomain is a pure syntactic check on the domain's top level
// label, no network access.
func (z *ZNS) IsSupportedDomain(domain string) bool {
	if domain == "" {
		return false
	}
	labels := strings.Split(domain, ".")
	return strings.EqualFold(labels[len(labels)-1], z.network.GetTLD())
}

// IsSupportedNetwork reports whether the active network has a registry
// contract configured.
func (z *ZNS) IsSupportedNetwork() bool {
	return z.network.GetRegistryContract() != ""
}

// Namehash derives the registry lookup key of domain on this service.
func (z *ZNS) Namehash(domain string) (Node, error) {
	return z.engine.Namehash(domain)
}
