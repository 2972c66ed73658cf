// Package chaincfg defines the per-network protocol constants the decoy engine depends on.
package chaincfg

import (
	"errors"
	"fmt"
	"strings"
)

// Network identifies a ledger network.
type Network byte

const (
	MainNet Network = iota
	TestNet
	StageNet
	RegTest
)

// Params defines a network by the protocol constants that govern output
// spendability and ring construction.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net identifies the network.
	Net Network

	// BlockTime is the target number of seconds between blocks.
	BlockTime uint64

	// DefaultLockWindow is the number of blocks an output must age before it
	// may be spent or selected as a decoy.
	DefaultLockWindow uint64

	// CoinbaseLockWindow is the number of blocks a miner output stays locked.
	CoinbaseLockWindow uint64

	// AcceptedTimelockDelta mirrors the consensus rule that accepts a block
	// height timelock one block early.
	AcceptedTimelockDelta uint64

	// MaxBlockNumber separates block height timelocks (below) from unix
	// timestamp timelocks (at or above).
	MaxBlockNumber uint64

	// DefaultRingLength is the ring size enforced by consensus.
	DefaultRingLength int
}

// BlocksPerYear returns the number of blocks produced in a 365 day year.
func (p *Params) BlocksPerYear() uint64 {
	return (365 * 24 * 60 * 60) / p.BlockTime
}

// TipApplication returns the lock window expressed in seconds. Ages younger than this
// land in the unusable tip of the chain.
func (p *Params) TipApplication() float64 {
	return float64(p.DefaultLockWindow * p.BlockTime)
}

// MainNetParams defines the network parameters for the main network.
var MainNetParams = Params{
	Name:                  "mainnet",
	Net:                   MainNet,
	BlockTime:             120,
	DefaultLockWindow:     10,
	CoinbaseLockWindow:    60,
	AcceptedTimelockDelta: 1,
	MaxBlockNumber:        500000000,
	DefaultRingLength:     16,
}

// TestNetParams defines the network parameters for the public test network.
var TestNetParams = Params{
	Name:                  "testnet",
	Net:                   TestNet,
	BlockTime:             120,
	DefaultLockWindow:     10,
	CoinbaseLockWindow:    60,
	AcceptedTimelockDelta: 1,
	MaxBlockNumber:        500000000,
	DefaultRingLength:     16,
}

// StageNetParams defines the network parameters for the staging network.
var StageNetParams = Params{
	Name:                  "stagenet",
	Net:                   StageNet,
	BlockTime:             120,
	DefaultLockWindow:     10,
	CoinbaseLockWindow:    60,
	AcceptedTimelockDelta: 1,
	MaxBlockNumber:        500000000,
	DefaultRingLength:     16,
}

// RegressionNetParams defines the network parameters for local regression testing.
var RegressionNetParams = Params{
	Name:                  "regtest",
	Net:                   RegTest,
	BlockTime:             120,
	DefaultLockWindow:     10,
	CoinbaseLockWindow:    60,
	AcceptedTimelockDelta: 1,
	MaxBlockNumber:        500000000,
	DefaultRingLength:     16,
}

var (
	// ErrDuplicateNet describes an error where the parameters for a network could
	// not be set due to the network already being registered.
	ErrDuplicateNet = errors.New("duplicate network")

	// ErrUnknownNet is returned when no registered network has the requested name.
	ErrUnknownNet = errors.New("unknown network")
)

var registeredNets = make(map[string]*Params)

// Register registers the network parameters for a network. This may error with
// ErrDuplicateNet if a network with the same name is already registered.
//
// Network parameters should be registered into this package by a main package
// as early as possible.
func Register(params *Params) error {
	name := strings.ToLower(params.Name)
	if _, ok := registeredNets[name]; ok {
		return ErrDuplicateNet
	}

	registeredNets[name] = params

	return nil
}

// mustRegister performs the same function as Register except it panics if there
// is an error.  This should only be called from package init functions.
func mustRegister(params *Params) {
	if err := Register(params); err != nil {
		panic("failed to register network: " + err.Error())
	}
}

// GetChainParams returns the registered parameters for the named network.
func GetChainParams(network string) (*Params, error) {
	params, ok := registeredNets[strings.ToLower(network)]
	if !ok {
		return nil, fmt.Errorf("%w %s", ErrUnknownNet, network)
	}

	return params, nil
}

func init() {
	// Register all default networks when the package is initialized.
	mustRegister(&MainNetParams)
	mustRegister(&TestNetParams)
	mustRegister(&StageNetParams)
	mustRegister(&RegressionNetParams)
}
