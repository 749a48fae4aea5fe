package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/eclipse/paho.mqtt.golang"

	"github.com/matt-g-everett/ledtween/api"
	"github.com/matt-g-everett/ledtween/stream"
)

type app struct {
	Config     stream.Config
	Client     mqtt.Client
	Controller *stream.Controller
	Streamer   *stream.Streamer
	Api        *api.Api
}

func newApp() *app {
	a := new(app)
	return a
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
	a.Streamer.Subscribe()
}

func (a *app) watchConfig(configPath string) {
	watcher, err := stream.NewWatcher(configPath)
	if err != nil {
		log.Printf("Config watch disabled: %v", err)
		return
	}

	for {
		select {
		case path, ok := <-watcher.Events:
			if !ok {
				return
			}
			config, err := stream.LoadConfig(path)
			if err != nil {
				log.Printf("Ignoring config reload: %v", err)
				continue
			}
			if err := a.Controller.Reload(config); err != nil {
				log.Printf("Ignoring config reload: %v", err)
				continue
			}
			log.Println("Reloaded animations")
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Config watch: %v", err)
		}
	}
}

func (a *app) run() {
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		panic(token.Error())
	}
	go a.Controller.Run()
	a.Streamer.Run()
}

func main() {
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	flag.Parse()

	rand.Seed(time.Now().UTC().UnixNano())

	// Read the config
	a := newApp()
	config, err := stream.LoadConfig(*configPath)
	if err != nil {
		panic(err)
	}
	a.Config = config
	log.Printf("Config: %+v", a.Config)

	controller, err := stream.NewController(a.Config)
	if err != nil {
		panic(err)
	}
	a.Controller = controller

	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID("ledtween").
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	a.Client = mqtt.NewClient(options)

	a.Streamer = stream.NewStreamer(a.Config, a.Client, a.Controller)
	a.Api = api.NewApi(a.Controller, a.Config.Api.Listen, a.Config.Api.StaticDir)

	go a.watchConfig(*configPath)
	go func() {
		if err := a.Api.Serve(); err != nil {
			log.Printf("Api: %v", err)
		}
	}()

	a.run()
}
