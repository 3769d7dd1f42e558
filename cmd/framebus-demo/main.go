// Copyright 2026 Arcwire authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command framebus-demo links two in-process Endpoints over a lossy
// in-memory channel and exchanges a handful of request/response frames,
// logging every step. It exists to exercise the package end to end outside
// of the test suite, and as a worked example of wiring an Endpoint to a real
// transport and ticker.
package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/arcwire/framebus"
)

const (
	exitCodeSuccess = 0
	exitCodeError   = 1
)

func main() {
	os.Exit(run())
}

func run() int {
	var verbose bool
	var dropPct int
	var rounds int

	rootCmd := &cobra.Command{
		Use:   "framebus-demo",
		Short: "Exchange frames between two linked endpoints over a lossy channel.",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(verbose)
			return demo(log, rounds, dropPct)
		},
	}
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "set debug logging level")
	rootCmd.Flags().IntVar(&dropPct, "drop-percent", 0, "percent of bytes to drop in transit, to exercise resync")
	rootCmd.Flags().IntVar(&rounds, "rounds", 5, "number of request/response rounds to run")

	if err := rootCmd.Execute(); err != nil {
		return exitCodeError
	}
	return exitCodeSuccess
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}

// lossyChannel is a one-way byte pipe between two endpoints that randomly
// drops bytes, so the demo also shows the decoder resyncing on the SOF
// sentinel after corruption.
type lossyChannel struct {
	log     *slog.Logger
	dropPct int
	deliver func(b []byte)
}

func (c *lossyChannel) sink(frame []byte) {
	out := make([]byte, 0, len(frame))
	for _, b := range frame {
		if c.dropPct > 0 && rand.Intn(100) < c.dropPct {
			c.log.Debug("dropped byte in transit")
			continue
		}
		out = append(out, b)
	}
	c.deliver(out)
}

func demo(log *slog.Logger, rounds, dropPct int) error {
	var client, server *framebus.Endpoint

	clientChan := &lossyChannel{log: log, dropPct: dropPct, deliver: func(b []byte) { server.Accept(b) }}
	serverChan := &lossyChannel{log: log, dropPct: dropPct, deliver: func(b []byte) { client.Accept(b) }}

	var err error
	client, err = framebus.NewEndpoint(framebus.Master, clientChan.sink)
	if err != nil {
		return fmt.Errorf("construct client endpoint: %w", err)
	}
	server, err = framebus.NewEndpoint(framebus.Slave, serverChan.sink)
	if err != nil {
		return fmt.Errorf("construct server endpoint: %w", err)
	}

	const msgTypeEcho = 0x01

	if err := server.AddTypeListener(msgTypeEcho, func(msg *framebus.Message) framebus.Result {
		log.Info("server received", "frame_id", msg.FrameID, "payload", string(msg.Payload))
		if err := server.Respond(framebus.Message{
			FrameID: msg.FrameID,
			Type:    msgTypeEcho,
			Payload: msg.Payload,
		}, false); err != nil {
			log.Error("server respond failed", "err", err)
		}
		return framebus.Consumed
	}); err != nil {
		return fmt.Errorf("register server listener: %w", err)
	}

	done := make(chan struct{})
	for i := 0; i < rounds; i++ {
		round := i
		payload := []byte(fmt.Sprintf("ping-%d", round))
		err := client.Send(framebus.Message{Type: msgTypeEcho, Payload: payload}, func(msg *framebus.Message) framebus.Result {
			log.Info("client received response", "frame_id", msg.FrameID, "payload", string(msg.Payload))
			if round == rounds-1 {
				close(done)
			}
			return framebus.Consumed
		}, nil, 20)
		if err != nil {
			log.Error("send failed", "round", round, "err", err)
		}
	}

	ticker := time.NewTicker(5 * time.Millisecond)
	defer ticker.Stop()
	timeout := time.After(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			client.Tick()
			server.Tick()
		case <-done:
			return nil
		case <-timeout:
			return fmt.Errorf("demo timed out waiting for %d rounds", rounds)
		}
	}
}
