package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"snake-server/internal/agent"
	"snake-server/internal/engine"
	"snake-server/internal/network"
	"snake-server/internal/server"
	"snake-server/internal/storage"
	"snake-server/internal/version"
	"snake-server/pkg/api"
	"snake-server/pkg/logger"
)

func init() {
	// .env необязателен: в проде переменные приходят из окружения
	_ = godotenv.Load()
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var seed int64
	var botMode bool
	var botGames int
	// Читаем флаг -seed. По умолчанию 0 (значит сгенерировать случайно).
	flag.Int64Var(&seed, "seed", 0, "Master seed for spawn RNG (0 for random)")
	flag.BoolVar(&botMode, "bot", false, "Run a headless bot game instead of the server")
	flag.IntVar(&botGames, "games", 3, "Number of games the bot plays in -bot mode")
	flag.Parse()

	logger.Log.Info("Starting Snake server...")
	logger.Log.Info(version.String())

	// Формируем конфиг движка
	cfg := engine.NewConfig()
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("🎲 Using explicit master seed: %d", seed)
	} else {
		logger.Log.Infof("🎲 Using random master seed: %d", cfg.Seed)
	}

	// Хранилище рекорда
	dataDir := os.Getenv("SNAKE_DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	store, err := storage.NewFileStore(dataDir)
	if err != nil {
		logger.Log.Fatal("Failed to init score store: ", err)
	}

	// РЕЖИМ БОТА: играем сами с собой без сети и выходим
	if botMode {
		runBot(cfg, store, botGames)
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// 2. Инициализация сервера
	srv := server.New(cfg, store, port)

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error: ", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")

	// Останавливаем активные партии
	for _, sess := range srv.Sessions() {
		sess.Stop()
	}

	logger.Log.Info("Done.")
}

// runBot поднимает одну headless-сессию и жадного бота над ней.
func runBot(cfg engine.Config, store engine.ScoreStore, games int) {
	logger.Log.Info("🤖 Mode: headless bot")

	hub := network.NewBroadcaster()
	const botID = "bot"

	inbox := hub.Register(botID)
	eng := engine.NewEngine(cfg, store)
	sess := engine.NewSession(botID, eng, func(m api.ServerMessage) {
		hub.SendTo(botID, m)
	})
	bot := agent.NewBot(botID, sess, inbox, games)

	go sess.Run()
	go bot.Run()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case <-bot.Done:
		logger.Log.WithField("highScore", eng.HighScore()).Info("Bot run finished")
	case <-stop:
		logger.Log.Info("Interrupted")
	}

	sess.Stop()
	hub.Unregister(botID)
}
