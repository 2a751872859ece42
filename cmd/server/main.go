package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/viper"

	"github.com/artilluminati/pautina-hosting/internal/app"
)

func main() {
	cfgFile := flag.String("config", "", "Path to config file")
	flag.Parse()
	if *cfgFile != "" {
		viper.SetConfigFile(*cfgFile)
	}

	a, err := app.New()
	if err != nil {
		log.Fatalf("init: %v", err)
	}

	go func() {
		if err := a.Run(); err != nil {
			log.Fatalf("http: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutdown")

	_ = a.Close()
}
