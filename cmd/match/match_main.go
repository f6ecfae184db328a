package main

import (
	gameactor "LuxAI/internal/game/actor"
	"LuxAI/internal/game/app/port"
	gamehttp "LuxAI/internal/game/interfaces/http"
	"LuxAI/internal/game/infra/persistence/memory"
	matchmongo "LuxAI/internal/game/infra/persistence/mongodb"
	matchmysql "LuxAI/internal/game/infra/persistence/mysql"
	"LuxAI/internal/shared/config"
	"LuxAI/internal/shared/gameconfig/match"
	"LuxAI/internal/shared/infrastructure/db"
	sharedmongo "LuxAI/internal/shared/infrastructure/mongo"
	"LuxAI/internal/shared/logs"
	"LuxAI/internal/shared/serverconfig"
	transporthttp "LuxAI/internal/shared/transport/http"
	"LuxAI/internal/shared/utils"
	"LuxAI/modules/kit/logx"
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	serverconfig.Load()
	if err := logs.Init("match", serverconfig.Conf.Log); err != nil {
		panic(err)
	}
	defer logs.Sync()
	logs.Info("conf", zap.Any("conf", serverconfig.Conf))

	serverconfig.OnChange(func(c serverconfig.Config, err error) {
		if err != nil {
			logs.Warn("reload conf failed", zap.Error(err))
			return
		}
		if err := logs.SetLevel(c.Log.Level); err != nil {
			logs.Warn("invalid log level", zap.String("level", c.Log.Level), zap.Error(err))
			return
		}
		logs.Info("log level reloaded", zap.String("level", c.Log.Level))
	})

	logic := serverconfig.Conf.Logic
	matchConfig := loadMatchConfig(logic.MatchConfig)

	repo, closeRepo, err := openRepository(logic.Store, matchConfig)
	if err != nil {
		logs.Fatal("open match repository failed", zap.String("store", logic.Store), zap.Error(err))
	}
	defer closeRepo()

	ids, err := utils.NewSnowflake(logic.NodeID)
	if err != nil {
		logs.Fatal("init snowflake failed", zap.Int64("node_id", logic.NodeID), zap.Error(err))
	}

	baseLogger := logx.NewZapLogger(logs.Logger())
	runtime := gameactor.NewRuntime(repo, gameactor.Options{
		AskTimeout: logic.AskTimeout,
		FlushEvery:  logic.FlushEvery,
		IdleTimeout: logic.IdleTimeout,
		Logger:      baseLogger,
	})

	host := serverconfig.Conf.HTTPServer.Host
	if host == "" {
		host = "0.0.0.0"
	}
	addr := fmt.Sprintf("%s:%d", host, serverconfig.Conf.HTTPServer.Port)

	if !serverconfig.Conf.Log.Dev {
		gin.SetMode(gin.ReleaseMode)
	}
	httpServer := transporthttp.NewHttpServer(addr, gin.New(), baseLogger)
	gamehttp.NewMatchHandler(runtime, ids, baseLogger).RegisterRoutes(httpServer.Group(""))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logs.Info("match server listening", zap.String("addr", addr), zap.String("store", logic.Store))
		if err := httpServer.Start(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			errCh <- fmt.Errorf("match server start failed: %w", err)
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		logs.Info("收到退出信号，准备优雅退出")
	case err := <-errCh:
		if err != nil {
			logs.Error("服务异常退出", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(shutdownCtx)
	// 先停 HTTP 再停 Actor，对局 Actor 停止前会把脏数据写回存储。
	runtime.Shutdown()
}

func loadMatchConfig(name string) *match.Config {
	path, err := config.Resolve(name)
	if err != nil {
		var nf *config.NotFoundError
		if errors.As(err, &nf) {
			logs.Warn("match config not found, using defaults", zap.String("name", name))
			return match.Default()
		}
		logs.Fatal("resolve match config failed", zap.Error(err))
	}
	cfg, err := match.Load(path)
	if err != nil {
		logs.Fatal("load match config failed", zap.String("path", path), zap.Error(err))
	}
	logs.Info("match config", zap.Int("width", cfg.MapWidth), zap.Int("height", cfg.MapHeight))
	return cfg
}

func openRepository(store string, matchConfig *match.Config) (port.MatchRepository, func(), error) {
	switch store {
	case serverconfig.StoreMongoDB:
		mcfg := serverconfig.Conf.MongoDB
		client, err := sharedmongo.Open(context.Background(), mcfg, logs.Logger())
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(ctx)
		}
		return matchmongo.NewMatchRepository(client.Database(mcfg.Database), matchConfig), closeFn, nil
	case serverconfig.StoreMySQL:
		gdb, err := db.Open(serverconfig.Conf.MySQL)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if sqlDB, err := gdb.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		repo := matchmysql.NewMatchRepository(gdb, matchConfig)
		if err := repo.AutoMigrate(); err != nil {
			closeFn()
			return nil, nil, err
		}
		return repo, closeFn, nil
	case serverconfig.StoreMemory:
		return memory.NewMatchRepository(matchConfig), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown store %q", store)
	}
}
