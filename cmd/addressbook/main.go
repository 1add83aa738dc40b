package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"address-book/internal/app"
	"address-book/internal/config"
)

func main() {
	configFile := flag.String("config", "config.yml", "path to the configuration file")
	flag.Parse()

	// Загружаем конфигурацию из файла, переменных окружения и значений по умолчанию
	appConfig, err := config.InitConfig[config.Config](*configFile)
	if err != nil {
		log.Fatalf("Error initializing config: %v", err)
	}

	a, err := app.New(appConfig, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatalf("Error creating app: %v", err)
	}
	defer a.Shutdown()

	if err := a.Initialize(); err != nil {
		log.Fatalf("Error initializing app: %v", err)
	}

	// Канал для завершения по сигналу
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Диалог с пользователем блокируется на чтении stdin, поэтому запускаем его в горутине
	errChan := make(chan error, 1)
	go func() {
		errChan <- a.Run(context.Background())
	}()

	select {
	case err := <-errChan:
		if err != nil {
			a.Shutdown()
			log.Fatalf("Address book error: %v", err)
		}
	case sig := <-sigChan:
		log.Printf("Received signal: %v. Stopping...", sig)
	}
}
