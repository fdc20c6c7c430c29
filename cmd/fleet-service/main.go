package main

import (
	"flag"
	"fmt"

	fleetpb "github.com/FleetBook/FleetBook/internal/api/proto/fleet"
	"github.com/FleetBook/FleetBook/internal/common/config"
	"github.com/FleetBook/FleetBook/internal/common/db"
	"github.com/FleetBook/FleetBook/internal/common/logger"
	"github.com/FleetBook/FleetBook/internal/common/server"
	"github.com/FleetBook/FleetBook/internal/common/tracing"
	"github.com/FleetBook/FleetBook/internal/fleet"
	"google.golang.org/grpc"
)

var (
	configPath = flag.String("config", "configs/fleet-service.json", "配置文件路径")
	consulKey  = flag.String("config-from-consul", "", "从 Consul KV 读取配置的 key（JSON，优先于 -config）")
	consulAddr = flag.String("consul-addr", "localhost:8500", "读取配置用的 Consul 地址 host:port")
)

func main() {
	flag.Parse()

	// 加载配置：给了 KV key 就从 Consul 拉，否则读本地文件
	var (
		cfg *config.Config
		err error
	)
	if *consulKey != "" {
		cfg, err = config.LoadConfigFromConsulAddr(*consulAddr, *consulKey)
	} else {
		cfg, err = config.LoadConfig(*configPath)
	}
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	// 初始化日志
	log, err := logger.NewLogger(cfg.Log.Backend, cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.Path)
	if err != nil {
		panic(fmt.Sprintf("failed to init logger: %v", err))
	}

	// 初始化链路追踪
	tracer, closer, err := tracing.InitTracer(
		cfg.Server.Name,
		cfg.Jaeger.Endpoint,
		cfg.Jaeger.Sampler,
	)
	if err != nil {
		log.Warnf("failed to init tracer: %v", err)
	} else {
		defer closer.Close()
	}
	_ = tracer

	// 初始化数据库
	gormDB, err := db.NewMySQL(
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Database,
		cfg.Database.MaxIdle,
		cfg.Database.MaxOpen,
	)
	if err != nil {
		log.Fatalf("failed to init mysql: %v", err)
	}
	if err := gormDB.AutoMigrate(&fleet.Vehicle{}); err != nil {
		log.Fatalf("failed to migrate mysql schema: %v", err)
	}

	// 启动统一的 gRPC 服务模板
	if err := server.RunGRPCServer(cfg, log, func(s *grpc.Server) error {
		fleetpb.RegisterFleetServiceServer(s, fleet.NewGRPCServer(gormDB))
		return nil
	}); err != nil {
		log.Fatalf("fleet-service exited with error: %v", err)
	}
}
