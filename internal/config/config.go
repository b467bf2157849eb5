package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey     = "API_PORT"
	ethNodeEnvKey     = "ETH_NODE_URL"
	walletRPCEnvKey   = "WALLET_BRIDGE_URL"
	dbConnEnvKey      = "DB_CONNECTION_URL"
	jwtSecretEnvKey   = "JWT_SECRET"
	chainIDEnvKey     = "CHAIN_ID"
	accountEnvKey     = "WALLET_ACCOUNT"
	stakeTokenEnvKey  = "STAKE_TOKEN_ADDRESS"
	stakePoolEnvKey   = "STAKE_POOL_ADDRESS"
	stableTokenEnvKey = "STABLE_TOKEN_ADDRESS"
	cauldronEnvKey    = "CAULDRON_ADDRESS"
	farmEnvKey        = "FARM_ADDRESS"
	explorerKeyEnvKey = "EXPLORER_API_KEY"
)

// App holds the full service configuration. All addresses are hex strings,
// validated when first converted by the consuming package.
type App struct {
	Port            string
	NodeURL         string
	WalletBridgeURL string
	DBConnectionURL string
	JWTSecret       string
	ChainID         uint64
	Account         string
	StakeToken      string
	StakePool       string
	StableToken     string
	Cauldron        string
	Farm            string
	ExplorerAPIKey  string
}

// NewApp reads configuration from the environment. A .env file in the working
// directory is loaded first when present, matching local development setups.
func NewApp() (App, error) {
	_ = godotenv.Load()

	var app App
	required := map[string]*string{
		apiPortEnvKey:     &app.Port,
		ethNodeEnvKey:     &app.NodeURL,
		walletRPCEnvKey:   &app.WalletBridgeURL,
		dbConnEnvKey:      &app.DBConnectionURL,
		jwtSecretEnvKey:   &app.JWTSecret,
		accountEnvKey:     &app.Account,
		stakeTokenEnvKey:  &app.StakeToken,
		stakePoolEnvKey:   &app.StakePool,
		stableTokenEnvKey: &app.StableToken,
		cauldronEnvKey:    &app.Cauldron,
		farmEnvKey:        &app.Farm,
	}

	for key, target := range required {
		value, ok := os.LookupEnv(key)
		if !ok {
			return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, key)
		}
		*target = value
	}

	chainIDStr, ok := os.LookupEnv(chainIDEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, chainIDEnvKey)
	}
	chainID, err := strconv.ParseUint(chainIDStr, 10, 64)
	if err != nil {
		return App{}, fmt.Errorf("parse %s: %w", chainIDEnvKey, err)
	}
	app.ChainID = chainID

	// optional
	app.ExplorerAPIKey = os.Getenv(explorerKeyEnvKey)

	return app, nil
}
