package cryptopay

import (
	"fmt"
	"strings"
)

type Network string

const (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
)

const (
	mainnetEndpoint = "https://pay.crypt.bot/"
	testnetEndpoint = "https://testnet-pay.crypt.bot/"
)

// Endpoint returns the API base URL for the network. Anything other than
// Testnet resolves to mainnet.
func (n Network) Endpoint() string {
	if n == Testnet {
		return testnetEndpoint
	}
	return mainnetEndpoint
}

func (n Network) String() string {
	return string(n)
}

// UnmarshalText accepts "mainnet" or "testnet", case-insensitively.
func (n *Network) UnmarshalText(text []byte) error {
	switch Network(strings.ToLower(strings.TrimSpace(string(text)))) {
	case Mainnet:
		*n = Mainnet
	case Testnet:
		*n = Testnet
	default:
		return fmt.Errorf("invalid network: %q (valid: mainnet, testnet)", text)
	}
	return nil
}
