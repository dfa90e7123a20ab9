package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lixenwraith/revsynth/config"
	"github.com/lixenwraith/revsynth/graph"
	"github.com/lixenwraith/revsynth/synth"
	"github.com/lixenwraith/revsynth/telemetry"
)

func main() {
	configPath := flag.String("config", "revsynth.yaml", "Path to config file")
	demo := flag.Bool("demo", false, "Run with simulated telemetry")
	mute := flag.Bool("mute", false, "Run without an audio device")
	flag.Parse()

	log.SetFlags(log.Ldate | log.Ltime)
	log.Println("[main] revsynth starting")

	cfg := config.Load(*configPath)
	if *demo {
		cfg.Telemetry.Source = "demo"
	}
	if *mute {
		cfg.Audio.Enabled = false
	}

	// Muted or speakerless runs use the null backend: the graph still
	// computes, the clock is advanced by the tick loop.
	var backend graph.Backend
	var null *graph.NullBackend
	if cfg.Audio.Enabled {
		backend = graph.NewSpeakerBackend(
			cfg.Audio.SampleRate,
			cfg.Audio.MasterVolume,
			time.Duration(cfg.Audio.BufferMs)*time.Millisecond,
		)
	} else {
		null = graph.NewNullBackend(cfg.Audio.SampleRate)
		backend = null
	}
	defer backend.Close()

	provider := newProvider(cfg)
	if err := provider.Connect(); err != nil {
		log.Printf("[main] %s connect failed: %v, falling back to demo", provider.Name(), err)
		provider = telemetry.NewDemo(cfg.Telemetry.PollHz)
		provider.Connect()
	}
	defer provider.Close()
	log.Printf("[main] telemetry source: %s", provider.Name())

	s := synth.New(backend)
	s.Init()
	s.Start()
	if !s.Running() {
		log.Println("[main] synthesizer could not start, exiting")
		return
	}
	defer s.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Printf("[main] received %v, shutting down", sig)
		cancel()
	}()

	interval := time.Second / time.Duration(cfg.Telemetry.PollHz)
	dt := interval.Seconds()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			frame, err := provider.Poll()
			if err != nil {
				log.Printf("[main] telemetry poll: %v", err)
				continue
			}
			if null != nil {
				null.AdvanceSeconds(dt)
			}
			s.Update(synth.Telemetry{
				RPM:      frame.RPM,
				Load:     frame.Load,
				TireSlip: frame.TireSlip,
				Speed:    frame.Speed,
			})
		}
	}
}

func newProvider(cfg *config.Config) telemetry.Provider {
	switch cfg.Telemetry.Source {
	case "serial":
		return telemetry.NewSerial(cfg.Telemetry.Port, cfg.Telemetry.Baud)
	case "websocket":
		return telemetry.NewWebsocket(cfg.Telemetry.URL)
	default:
		return telemetry.NewDemo(cfg.Telemetry.PollHz)
	}
}
