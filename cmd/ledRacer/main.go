package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"justapengu.in/ledracer/internal/racer"
	"justapengu.in/ledracer/pkg/gpiobutton"
	"justapengu.in/ledracer/pkg/neopixel"
)

var configPath string

func init() {
	flag.StringVar(&configPath, "c", "./config.yml", "config path")
	flag.Parse()
}

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logger.SetLevel(logrus.DebugLevel)

	logger.Infof("Starting LED Racer")

	config, err := readConfig()

	if err != nil {
		logger.WithError(err).Fatalf("Could not read config at %s", configPath)
	}

	strip, err := neopixel.New(config.Strip)

	if err != nil {
		logger.WithError(err).Fatal("Could not open LED strip")
	}

	defer strip.Close()

	buttons, err := gpiobutton.Open(config.ButtonPins)

	if err != nil {
		logger.WithError(err).Fatal("Could not open button GPIO")
	}

	defer buttons.Close()

	plugin := racer.MultiPlugin(racer.NewLogPlugin())

	game, err := racer.NewGame(context.Background(), config, strip, buttons, plugin, logger)

	if err != nil {
		logger.WithError(err).Fatal("Could not initialise game")
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)

	go func() {
		<-c
		game.Stop()
	}()

	if err := game.Run(); err != nil {
		logger.WithError(err).Fatal("Game stopped with an error")
	}

	logger.Infof("Game stopped. Exiting")
}

func readConfig() (*racer.HardwareConfig, error) {
	f, err := os.Open(configPath)

	if err != nil {
		if os.IsNotExist(err) {
			// no config file is fine, the defaults match the reference wiring
			return racer.DefaultHardwareConfig(), nil
		}

		return nil, err
	}

	defer f.Close()

	var conf *racer.HardwareConfig

	if err := yaml.NewDecoder(f).Decode(&conf); err != nil {
		return nil, err
	}

	return conf, nil
}
