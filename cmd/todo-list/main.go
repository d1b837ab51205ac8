package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"todo-list/configs"
	_ "todo-list/docs"
	"todo-list/internal/application/controller"
	"todo-list/internal/application/hook"
	"todo-list/internal/application/middleware"
	"todo-list/internal/application/processor"
	"todo-list/internal/application/schedule"
	"todo-list/internal/domain/gateway/queue"
	"todo-list/internal/domain/usecase/health"
	"todo-list/internal/domain/usecase/presenter"
	"todo-list/internal/domain/usecase/todo"
	"todo-list/pkg/hooks"
	"todo-list/pkg/log"
	"todo-list/pkg/msg"
	"todo-list/pkg/redis"
	"todo-list/pkg/resource"
	"todo-list/pkg/util/idutils"
)

func main() {
	env := configs.LoadEnv()
	log.Init(env.ApplicationName, env.LogLevel)
	defer log.Sync()

	if err := resource.Init(env.PropertiesFile); err != nil {
		log.Fatal("fail to load properties", zap.Error(err))
	}
	if err := msg.Init(env.MessagesFile); err != nil {
		log.Fatal("fail to load messages", zap.Error(err))
	}
	log.Info(msg.GetMessage("app.start", env.ApplicationName))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Module identity and hooks
	module := configs.NewModuleConfig(resource.GetString("app.module.id")).
		WithToDosFlag(resource.GetString("app.module.todos-flag"))
	basePath := resource.GetString("app.server.context-path")

	registry := hooks.New()
	hook.RegisterModuleHooks(registry, module, basePath)
	if err := registry.Call(ctx, hooks.Init); err != nil {
		log.Error("init hook failed", zap.Error(err))
	}

	// Init Gateways
	infra := &infrastructure{module: module}
	defer infra.Close()

	flagGateway, err := newFlagGateway(ctx, infra, resource.GetString("app.store.driver"))
	if err != nil {
		log.Fatal("fail to init flag store", zap.Error(err))
	}
	userGateway, err := newUserGateway(ctx, infra, resource.GetString("app.users.driver"))
	if err != nil {
		log.Fatal("fail to init user registry", zap.Error(err))
	}
	eventsDriver := resource.GetString("app.events.driver")
	publisher, err := newEventPublisher(ctx, infra, eventsDriver)
	if err != nil {
		log.Fatal("fail to init event publisher", zap.Error(err))
	}

	// Init UseCase
	toDoUseCase := todo.NewToDoUseCase(module, flagGateway, userGateway, publisher,
		idutils.NewRandomIDGenerator(resource.GetInt("app.todo.id-length")),
		resource.GetInt("app.todo.max-label-length"))
	presenterUseCase := presenter.NewPresenterUseCase(module, toDoUseCase, userGateway, registry, basePath)
	healthUseCase := health.NewHealthUseCase(flagGateway, userGateway, publisher)

	// Init Routes
	e := echo.New()
	e.HideBanner = true
	renderer, err := controller.NewTemplateRenderer()
	if err != nil {
		log.Fatal("fail to parse templates", zap.Error(err))
	}
	e.Renderer = renderer
	middleware.SetupRequestLogger(e)

	api := e.Group(basePath)
	controller.NewHealthController(api, healthUseCase).InitHealthRoutes()
	controller.NewToDoController(api, toDoUseCase).InitToDoRoutes()
	controller.NewToDoListController(api, module, presenterUseCase).InitToDoListRoutes()
	api.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init Processor
	if eventsDriver == "redis" && infra.redis != nil {
		subscriber, err := redis.NewSubscriber(infra.redis, processor.NewToDoEventProcessor(module.ID, registry), queue.ToDoChannel)
		if err != nil {
			log.Fatal("fail to init event subscriber", zap.Error(err))
		}
		go func() {
			if err := subscriber.Start(ctx); err != nil {
				log.Error("event subscriber stopped", zap.Error(err))
			}
		}()
		defer subscriber.Close()
	}

	// Init Schedule
	var summaryLock schedule.Locker
	if infra.redis != nil {
		summaryLock = redis.NewLock(infra.redis, "todo-summary", resource.GetDuration("app.todo.summary.lock-ttl"))
	}
	summaryScheduler := schedule.NewToDoSummaryScheduler(toDoUseCase, userGateway, resource.GetString("app.todo.summary.cron"), summaryLock)
	if err := summaryScheduler.InitToDoSummaryScheduleTasks(ctx); err != nil {
		log.Fatal("fail to init todo summary schedule", zap.Error(err))
	}
	healthScheduler, err := schedule.NewHealthScheduler(healthUseCase, resource.GetDuration("app.health.interval"))
	if err == nil {
		err = healthScheduler.Start(ctx)
	}
	if err != nil {
		log.Fatal("fail to init health schedule", zap.Error(err))
	}

	if err := registry.Call(ctx, hooks.Ready); err != nil {
		log.Error("ready hook failed", zap.Error(err))
	}

	// Start Routes
	port := resource.GetString("app.server.port")
	go func() {
		log.Info(msg.GetMessage("app.started", env.ApplicationName, port))
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
	}
	log.Info(msg.GetMessage("app.stopped", env.ApplicationName))
}
