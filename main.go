package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v2"

	"cardioscreen/db"
	qhttp "cardioscreen/http"
	"cardioscreen/logging"
	"cardioscreen/ml"
	"cardioscreen/monitoring"
)

type Config struct {
	Http struct {
		Port           int `yaml:"port"`
		TimeoutSeconds int `yaml:"timeout_seconds"`
	} `yaml:"http"`
	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`
	Model struct {
		Type       string `yaml:"type"`
		Path       string `yaml:"path"`
		OrtLibrary string `yaml:"ort_library"`
	} `yaml:"model"`
	Log   logging.Config `yaml:"log"`
	Cache struct {
		Size int `yaml:"size"`
	} `yaml:"cache"`
	Status struct {
		IntervalSeconds int `yaml:"interval_seconds"`
	} `yaml:"status"`
}

func main() {
	configPath := "config.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	// 1. Load config
	config, err := loadConfig(configPath)
	if err != nil {
		logging.Init(logging.Config{Level: "info"})
		logging.L().Fatal("failed to load config", zap.Error(err))
	}

	// 2. Initialize logging
	logging.Init(config.Log)
	defer logging.Sync()

	// 3. Initialize database
	if err := db.InitDB(config.Database.Path); err != nil {
		logging.L().Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.CloseDB()
	logging.L().Info("database initialized", zap.String("path", config.Database.Path))

	// 4. Load the model artifact. The handle is shared, read-only state for
	// the life of the process; failure here is fatal.
	model, err := ml.LoadModel(config.Model.Type, config.Model.Path, config.Model.OrtLibrary)
	if err != nil {
		logging.L().Fatal("failed to load model",
			zap.String("type", config.Model.Type),
			zap.String("path", config.Model.Path),
			zap.Error(err),
		)
	}
	defer model.Close()
	logging.L().Info("model loaded",
		zap.String("type", config.Model.Type),
		zap.String("path", config.Model.Path),
	)

	tracker := monitoring.NewStatusTracker()
	tracker.SetModelInfo(config.Model.Type, true)

	qhttp.SetModel(model)
	qhttp.SetStatusTracker(tracker)
	if config.Cache.Size > 0 {
		if err := qhttp.InitPredictionCache(config.Cache.Size); err != nil {
			logging.L().Fatal("failed to initialize prediction cache", zap.Error(err))
		}
	}

	hub := monitoring.NewStatusHub(tracker, time.Duration(config.Status.IntervalSeconds)*time.Second)
	go hub.Start()

	// 5. Watch the config file for live log-level changes
	stopWatcher, err := watchConfig(configPath)
	if err != nil {
		logging.L().Warn("config watcher disabled", zap.Error(err))
	} else {
		defer stopWatcher()
	}

	// 6. Start HTTP server
	serverConfig := qhttp.DefaultServerConfig()
	if config.Http.Port > 0 {
		serverConfig.Port = config.Http.Port
	}
	if config.Http.TimeoutSeconds > 0 {
		serverConfig.Timeout = time.Duration(config.Http.TimeoutSeconds) * time.Second
	}

	server := qhttp.NewServer(serverConfig, hub)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logging.L().Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// 7. Handle graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logging.L().Info("shutting down")

	if err := server.Stop(); err != nil {
		logging.L().Error("server forced to shutdown", zap.Error(err))
	}
	hub.Stop()

	logging.L().Info("exiting")
}

func loadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var config Config
	if err := yaml.NewDecoder(file).Decode(&config); err != nil {
		return nil, err
	}
	return &config, nil
}
