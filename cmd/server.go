package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"defidesk/internal/allowance"
	"defidesk/internal/chainreg"
	"defidesk/internal/config"
	"defidesk/internal/core"
	"defidesk/internal/db"
	"defidesk/internal/ethereum"
	"defidesk/internal/explorer"
	"defidesk/internal/http/handler"
	"defidesk/internal/http/handler/middleware"
	"defidesk/internal/http/payload"
	"defidesk/internal/http/server"
	"defidesk/internal/lastaction"
	"defidesk/internal/lifecycle"
	"defidesk/internal/notify"
	"defidesk/internal/repository"
	"defidesk/internal/wallet"
	"defidesk/pkg/jwt"
	"defidesk/pkg/log"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("defidesk", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// repository
	repo := repository.NewDeskRepo(dbConn)
	if err := repo.Migrate(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	client, err := ethclient.Dial(config.NodeURL)
	if err != nil {
		logger.Errorw("node connection failed", "error", err)
		return err
	}

	network, err := chainreg.ByID(config.ChainID)
	if err != nil {
		logger.Errorw("unsupported chain", "error", err, "chain_id", config.ChainID)
		return err
	}

	bridge := wallet.NewBridge(config.WalletBridgeURL)
	chainService := ethereum.NewChainService(client, bridge)
	switcher := wallet.NewSwitcher(logger, bridge)

	hub := notify.NewHub(logger)
	coordinator := lifecycle.NewCoordinator(logger, hub, chainService, network)

	contracts := core.Contracts{
		StakeToken:  common.HexToAddress(config.StakeToken),
		StakePool:   common.HexToAddress(config.StakePool),
		StableToken: common.HexToAddress(config.StableToken),
		Cauldron:    common.HexToAddress(config.Cauldron),
		Farm:        common.HexToAddress(config.Farm),
	}

	explorerClient := explorer.NewClient(logger, network, config.ExplorerAPIKey, nil)
	resolver := lastaction.NewResolver(logger, explorerClient, contracts.StakePool, contracts.StakeToken)

	checker := allowance.NewChecker(
		logger,
		chainService,
		contracts.StakeToken,
		contracts.StakePool,
		common.HexToAddress(config.Account),
		18,
		allowance.DefaultDebounce)

	// desk
	desk := core.NewDesk(
		logger,
		repo,
		jwtService,
		chainService,
		switcher,
		coordinator,
		resolver,
		checker,
		contracts,
		config.ChainID)
	defer desk.Close()

	// handler
	deskHlr := handler.NewDeskHandler(
		logger,
		payload.DecodeValidator{},
		desk,
		hub)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Challenge, deskHlr.HandleChallenge)
	mux.HandleFunc(handler.Authenticate, deskHlr.HandleAuthenticate)
	mux.HandleFunc(handler.SubmitAction, deskHlr.HandleSubmitAction)
	mux.HandleFunc(handler.GetAllowance, deskHlr.HandleGetAllowance)
	mux.HandleFunc(handler.GetHistory, deskHlr.HandleGetHistory)
	mux.HandleFunc(handler.GetLastAction, deskHlr.HandleGetLastAction)
	mux.HandleFunc(handler.GetNotifications, deskHlr.HandleGetNotifications)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
