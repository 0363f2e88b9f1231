package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"campus_club_server/internal/config"
	dao "campus_club_server/internal/dao/mysql"
	myredis "campus_club_server/internal/dao/redis"
	"campus_club_server/internal/handler"
	"campus_club_server/internal/https_server"
	"campus_club_server/internal/infrastructure/logger"
	"campus_club_server/internal/infrastructure/mq"
	"campus_club_server/internal/service"
	"campus_club_server/pkg/util/jwt"

	"go.uber.org/zap"
)

func main() {
	// 1. 加载配置
	conf := config.GetConfig()

	// 2. 初始化日志
	if err := logger.Init(&conf.LogConfig, "dev"); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	zap.L().Info("日志初始化成功")

	// 3. 初始化数据库
	repos := dao.Init()
	zap.L().Info("数据库初始化成功")

	// 4. 初始化 Redis
	cache := myredis.Init()
	zap.L().Info("Redis 初始化成功")

	// 5. 初始化 JWT
	jwt.Init(conf.JWTConfig.Secret, conf.JWTConfig.AccessTokenExpiry, conf.JWTConfig.RefreshTokenExpiry)
	zap.L().Info("JWT 初始化成功")

	// 6. 初始化事件总线
	// kafka 模式下发布与消费走 Kafka，channel 模式使用进程内总线
	var publisher mq.EventPublisher
	var consumer mq.EventConsumer
	if conf.KafkaConfig.MessageMode == "kafka" {
		bus := mq.NewKafkaEventBus()
		publisher, consumer = bus, bus
	} else {
		bus := mq.NewChannelEventBus()
		publisher, consumer = bus, bus
	}
	zap.L().Info("事件总线初始化成功", zap.String("mode", conf.KafkaConfig.MessageMode))

	// 7. 初始化 Service 与 Handler 层（依赖注入）
	services := service.NewServices(repos, cache, publisher)
	handlers := handler.NewHandlers(services)
	zap.L().Info("Service 层初始化成功")

	// 8. 初始化参数校验翻译器
	if err := handler.InitTrans("zh"); err != nil {
		zap.L().Fatal("翻译器初始化失败", zap.Error(err))
	}

	// 9. 启动通知服务消费循环
	consumeCtx, cancelConsume := context.WithCancel(context.Background())
	go func() {
		if err := consumer.Consume(consumeCtx, services.Notification.HandleEvent); err != nil &&
			!errors.Is(err, context.Canceled) {
			zap.L().Error("通知服务消费循环退出", zap.Error(err))
		}
	}()
	zap.L().Info("通知服务启动成功")

	// 10. 初始化 HTTP 服务器并启动
	engine := https_server.Init(handlers)
	go func() {
		addr := fmt.Sprintf("%s:%d", conf.MainConfig.Host, conf.MainConfig.Port)
		if err := engine.Run(addr); err != nil {
			zap.L().Fatal("server running fault", zap.Error(err))
		}
	}()
	zap.L().Info("HTTP 服务器启动成功")

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("关闭服务器...")

	cancelConsume()
	if err := publisher.Close(); err != nil {
		zap.L().Error(err.Error())
	}

	zap.L().Info("服务器已关闭")
}
