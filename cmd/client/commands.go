// Copyright 2023 LiveKit, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/myworldtech/meet/pkg/logger"
	"github.com/myworldtech/meet/pkg/rtc/types"
	"github.com/myworldtech/meet/pkg/telemetry/prometheus"
)

const helpText = `commands:
  /mic on|off        mute or unmute the microphone
  /cam on|off        pause or resume the camera
  /switch            switch to the next camera
  /speaker on|off    play remote audio through the speaker
  /share on|off      start or stop sharing the screen
  /who               list participants
  /requests          list pending join requests
  /accept, /reject   answer the oldest join request
  /bw <kbps>         report a bandwidth sample
  /online            reconnect now if the connection was lost
  /stats             print client metrics
  /quit              leave the room
anything else is sent as a chat message
`

var errUsage = errors.New("invalid arguments, see /help")

func joinRoom(c *cli.Context) error {
	conf, err := getConfig(c)
	if err != nil {
		return err
	}
	if err := conf.Validate(); err != nil {
		return err
	}

	opts := ClientOptions{
		RoomID:          c.String("room"),
		PeerID:          c.String("peer"),
		IsHost:          c.Bool("host"),
		AudioFile:       c.String("audio"),
		VideoFile:       c.String("video"),
		ScreenFile:      c.String("screen"),
		ScreenAudioFile: c.String("screen-audio"),
		ManualBandwidth: c.Bool("manual-bandwidth"),
	}
	prometheus.Init(opts.PeerID)

	client, cleanup, err := InitializeClient(conf, opts)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Infow("exit requested, leaving room", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return client.Run(ctx)
}

func parseCommand(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

func parseToggle(args []string) (bool, error) {
	if len(args) != 1 {
		return false, errUsage
	}
	switch strings.ToLower(args[0]) {
	case "on", "true", "1":
		return true, nil
	case "off", "false", "0":
		return false, nil
	default:
		return false, errUsage
	}
}

// handleCommand executes one line of input and reports whether the user asked to quit
func (c *Client) handleCommand(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	if !strings.HasPrefix(line, "/") {
		if err := c.session.SendMessage(line); err != nil {
			c.printf("could not send message: %v\n", err)
		}
		return false
	}

	name, args := parseCommand(line)
	var err error
	switch name {
	case "/help":
		c.printf("%s", helpText)
	case "/quit", "/exit":
		return true
	case "/mic":
		var enabled bool
		if enabled, err = parseToggle(args); err == nil {
			err = c.session.SetMicEnabled(enabled)
		}
	case "/cam":
		var enabled bool
		if enabled, err = parseToggle(args); err == nil {
			err = c.session.SetCameraEnabled(enabled)
		}
	case "/switch":
		if err = c.session.SwitchCamera(); err == nil {
			c.printf("using %s camera\n", c.engine.Camera())
		}
	case "/speaker":
		var enabled bool
		if enabled, err = parseToggle(args); err == nil {
			err = c.session.SetSpeakerEnabled(enabled)
		}
	case "/share":
		var enabled bool
		if enabled, err = parseToggle(args); err == nil {
			err = c.setSharing(enabled)
		}
	case "/who":
		renderParticipants(c.out, c.session.Participants())
	case "/requests":
		renderRequests(c.out, c.session.PendingRequests())
	case "/accept", "/reject":
		err = c.answerRequest(name == "/accept")
	case "/bw":
		err = c.reportBandwidth(args)
	case "/online":
		c.session.NotifyNetworkAvailable()
	case "/stats":
		renderStats(c.out, prometheus.GetStats(), c.engine.BytesReceived(), c.estimator.LastKbps())
	default:
		err = errors.Errorf("unknown command %s, see /help", name)
	}
	if err != nil {
		c.printf("%s: %v\n", name, err)
	}
	return false
}

func (c *Client) answerRequest(approved bool) error {
	req, ok := c.session.DequeueRequest()
	if !ok {
		return errors.New("no pending join requests")
	}
	if err := c.session.ApproveRequest(approved, req.CorrelationID); err != nil {
		return err
	}
	verb := "rejected"
	if approved {
		verb = "admitted"
	}
	c.printf("%s %s\n", verb, req.PeerID)
	return nil
}

func (c *Client) reportBandwidth(args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	kbps, err := strconv.Atoi(args[0])
	if err != nil || kbps < 0 {
		return errUsage
	}
	if c.opts.ManualBandwidth {
		c.manual.Push(kbps)
	} else {
		c.session.OnBandwidthSample(kbps)
	}
	return nil
}

func renderParticipants(w io.Writer, participants []types.Participant) {
	table := tablewriter.NewWriter(w)
	table.SetRowLine(true)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{
		"Peer",
		"Name",
		"Audio",
		"Video",
	})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	for _, p := range participants {
		name := p.DisplayName
		if p.IsLocal {
			name += " (you)"
		}
		table.Append([]string{
			p.PeerID,
			name,
			mediaStatus(p.AudioConsumerID != "" || p.IsLocal, p.Muted, "muted"),
			mediaStatus(p.VideoConsumerID != "" || p.IsLocal, p.VideoPaused, "paused"),
		})
	}
	table.Render()
}

func mediaStatus(present bool, off bool, offLabel string) string {
	switch {
	case !present:
		return "-"
	case off:
		return offLabel
	default:
		return "on"
	}
}

func renderRequests(w io.Writer, requests []types.PendingJoinRequest) {
	if len(requests) == 0 {
		_, _ = fmt.Fprintln(w, "no pending join requests")
		return
	}
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"#", "Peer"})
	for i, req := range requests {
		table.Append([]string{strconv.Itoa(i + 1), req.PeerID})
	}
	table.Render()
}

func renderStats(w io.Writer, stats prometheus.Stats, bytesReceived uint64, kbps int) {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Metric", "Value"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
	})
	table.AppendBulk([][]string{
		{"received", humanize.Bytes(bytesReceived)},
		{"bandwidth", fmt.Sprintf("%s kbps", humanize.Comma(int64(kbps)))},
		{"quality tier", types.QualityTier(stats.QualityTier).String()},
		{"quality directives", humanize.Comma(int64(stats.QualityDirectives))},
		{"participants", humanize.Comma(int64(stats.Participants))},
		{"joins", fmt.Sprintf("%d (%d failed)", stats.Joins, stats.JoinFailures)},
		{"rejoins", humanize.Comma(int64(stats.Rejoins))},
		{"recoveries", fmt.Sprintf("%d (%d failed)", stats.Recoveries, stats.RecoveryFailures)},
		{"signal requests", fmt.Sprintf("%d (%d failed)", stats.SignalRequests, stats.SignalFailures)},
		{"signal reconnects", humanize.Comma(int64(stats.SignalReconnects))},
		{"signal disconnects", humanize.Comma(int64(stats.SignalDisconnects))},
	})
	table.Render()
}
