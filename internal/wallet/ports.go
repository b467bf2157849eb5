package wallet

import (
	"context"
	"encoding/json"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Provider is the wallet-side request surface (eth_sendTransaction,
// wallet_switchEthereumChain and friends). The concrete implementation talks
// to the paired wallet bridge; this service never holds key material.
//
//counterfeiter:generate -o fake -fake-name Provider . Provider
type Provider interface {
	Request(ctx context.Context, method string, params ...any) (json.RawMessage, error)
}
