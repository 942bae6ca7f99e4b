package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/maxb-odessa/slog"
	"github.com/pborman/getopt/v2"

	"github.com/matt-g-everett/rainbow/api"
	"github.com/matt-g-everett/rainbow/rainbow"
	"github.com/matt-g-everett/rainbow/stream"
	"github.com/matt-g-everett/rainbow/util"
)

type app struct {
	Config   stream.Config
	Rainbow  *rainbow.Locked
	Client   mqtt.Client
	Streamer *stream.Streamer
}

func newApp(config stream.Config) (*app, error) {
	r, err := config.NewRainbow()
	if err != nil {
		return nil, err
	}

	a := new(app)
	a.Config = config
	a.Rainbow = rainbow.NewLocked(r)
	return a, nil
}

func (a *app) handleOnConnect(client mqtt.Client) {
	slog.Info("Connected to %s", a.Config.Mqtt.URL)
	if err := a.Streamer.Subscribe(); err != nil {
		slog.Err("%s", err)
	}
}

func (a *app) startStreamer() error {
	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID(a.Config.Mqtt.ClientID).
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	a.Client = mqtt.NewClient(options)

	s, err := stream.NewStreamer(a.Config, a.Client, a.Rainbow)
	if err != nil {
		return err
	}
	a.Streamer = s

	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	return nil
}

func (a *app) printColours(values []float64) {
	for _, v := range values {
		fmt.Printf("%v %s\n", v, a.Rainbow.ColorAt(v))
	}
}

func parseValues(args []string) ([]float64, error) {
	values := make([]float64, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("bad value '%s'", arg)
		}
		values = append(values, v)
	}
	return values, nil
}

func main() {

	// get cmdline args and parse them
	help := false
	debug := 0
	configFile := ""
	spectrum := ""
	min, max := 0.0, 0.0
	sweep := 0
	eased := false
	list := false
	runMqtt := false
	serve := false
	getopt.HelpColumn = 0
	getopt.SetParameters("[value ...]")
	getopt.FlagLong(&help, "help", 'h', "Show this help")
	getopt.FlagLong(&debug, "debug", 'd', "Set debug log level")
	getopt.FlagLong(&configFile, "config", 'c', "Path to YAML config file")
	getopt.FlagLong(&spectrum, "spectrum", 's', "Comma separated colours, e.g. red,yellow,lime,blue")
	minOpt := getopt.FlagLong(&min, "min", 0, "Lower end of the number range")
	maxOpt := getopt.FlagLong(&max, "max", 0, "Upper end of the number range")
	getopt.FlagLong(&sweep, "sweep", 'n', "Print N colours spread over the range")
	getopt.FlagLong(&eased, "eased", 'e', "Ease the sweep towards the ends of the range")
	getopt.FlagLong(&list, "list", 'l', "List the known colour names")
	getopt.FlagLong(&runMqtt, "mqtt", 'm', "Stream colours for readings received over MQTT")
	getopt.FlagLong(&serve, "serve", 'S', "Serve the HTTP API")
	getopt.Parse()

	// help-only requested
	if help {
		getopt.Usage()
		return
	}

	// setup logger
	slog.Init("", debug, "")
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	if list {
		for _, name := range rainbow.Names() {
			fmt.Println(name)
		}
		return
	}

	conf := stream.DefaultConfig()
	if configFile != "" {
		var err error
		if conf, err = stream.LoadConfig(configFile); err != nil {
			slog.Fatal("Failed to load config file '%s': %s", configFile, err)
			return
		}
	}

	// command line overrides the config file
	if spectrum != "" {
		conf.Rainbow.Spectrum = strings.Split(spectrum, ",")
	}
	if minOpt.Seen() {
		conf.Rainbow.Min = min
	}
	if maxOpt.Seen() {
		conf.Rainbow.Max = max
	}

	a, err := newApp(conf)
	if err != nil {
		slog.Fatal("Bad rainbow: %s", err)
		return
	}

	values, err := parseValues(getopt.Args())
	if err != nil {
		slog.Fatal("%s", err)
		return
	}
	a.printColours(values)

	if sweep > 0 {
		lo, hi := a.Rainbow.NumberRange()
		if eased {
			a.printColours(util.EasedSweep(lo, hi, sweep))
		} else {
			a.printColours(util.Sweep(lo, hi, sweep))
		}
	}

	if !runMqtt && !serve {
		return
	}

	// set termination signal handler(s)
	done := make(chan bool)
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		for sig := range sigChan {
			slog.Info("Got signal '%s'", sig)
			done <- true
		}
	}()

	slog.Info("Started")
	defer slog.Info("Exited")

	if runMqtt {
		if err := a.startStreamer(); err != nil {
			slog.Fatal("Failed to start MQTT streamer: %s", err)
			return
		}
		defer a.Client.Disconnect(250)
	}

	if serve {
		go func() {
			if err := api.NewApi(a.Rainbow).Serve(a.Config.Api.Listen); err != nil {
				slog.Err("HTTP server stopped: %s", err)
				done <- true
			}
		}()
	}

	// now wait
	<-done
}
