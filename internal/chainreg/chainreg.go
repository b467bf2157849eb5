package chainreg

import (
	"errors"
	"fmt"
)

var ErrUnknownChain error = errors.New("unknown chain id")

// Network describes one supported EVM network, including the explorer pair
// (web links for notifications, API base for history queries).
type Network struct {
	ChainID        uint64
	Name           string
	CurrencyName   string
	CurrencySymbol string
	RPCURL         string
	ExplorerURL    string
	ExplorerAPIURL string
	Testnet        bool
}

const (
	MainnetChainID uint64 = 1
	SepoliaChainID uint64 = 11155111
)

var networks = map[uint64]Network{
	MainnetChainID: {
		ChainID:        MainnetChainID,
		Name:           "Ethereum Mainnet",
		CurrencyName:   "Ether",
		CurrencySymbol: "ETH",
		RPCURL:         "https://eth.llamarpc.com",
		ExplorerURL:    "https://etherscan.io",
		ExplorerAPIURL: "https://api.etherscan.io/api",
	},
	SepoliaChainID: {
		ChainID:        SepoliaChainID,
		Name:           "Sepolia",
		CurrencyName:   "Sepolia Ether",
		CurrencySymbol: "ETH",
		RPCURL:         "https://rpc.sepolia.org",
		ExplorerURL:    "https://sepolia.etherscan.io",
		ExplorerAPIURL: "https://api-sepolia.etherscan.io/api",
		Testnet:        true,
	},
}

// ByID returns the network registered for the chain id.
func ByID(chainID uint64) (Network, error) {
	network, ok := networks[chainID]
	if !ok {
		return Network{}, fmt.Errorf("%w: %d", ErrUnknownChain, chainID)
	}
	return network, nil
}

// TxURL builds the web explorer link for a transaction hash.
func (n Network) TxURL(txHash string) string {
	return fmt.Sprintf("%s/tx/%s", n.ExplorerURL, txHash)
}

// NativeCurrency is the nested object of an add-chain wallet request.
type NativeCurrency struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
}

// AddChainParams is the parameter object for wallet_addEthereumChain.
type AddChainParams struct {
	ChainID           string         `json:"chainId"`
	ChainName         string         `json:"chainName"`
	NativeCurrency    NativeCurrency `json:"nativeCurrency"`
	RPCURLs           []string       `json:"rpcUrls"`
	BlockExplorerURLs []string       `json:"blockExplorerUrls"`
}

// AddChainParams builds the wallet_addEthereumChain payload for the network.
func (n Network) AddChainParams() AddChainParams {
	return AddChainParams{
		ChainID:   fmt.Sprintf("0x%x", n.ChainID),
		ChainName: n.Name,
		NativeCurrency: NativeCurrency{
			Name:     n.CurrencyName,
			Symbol:   n.CurrencySymbol,
			Decimals: 18,
		},
		RPCURLs:           []string{n.RPCURL},
		BlockExplorerURLs: []string{n.ExplorerURL},
	}
}
