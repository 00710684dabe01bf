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
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/myworldtech/meet/pkg/config"
	"github.com/myworldtech/meet/pkg/logger"
	"github.com/myworldtech/meet/pkg/mediaengine"
	"github.com/myworldtech/meet/pkg/netmon"
	"github.com/myworldtech/meet/pkg/rtc"
	"github.com/myworldtech/meet/pkg/rtc/types"
)

const (
	shutdownTimeout  = 5 * time.Second
	shareJoinTimeout = 15 * time.Second
)

var (
	errAlreadySharing = errors.New("already sharing the screen")
	errNotSharing     = errors.New("not sharing the screen")
)

// Client runs one session from the terminal
type Client struct {
	conf      *config.Config
	opts      ClientOptions
	engine    *mediaengine.Engine
	estimator *netmon.StatsEstimator
	manual    *netmon.ManualSource
	session   *rtc.Session
	newShare  ScreenShareFactory

	// owned by the command loop
	share        *rtc.Session
	shareCleanup func()

	in  io.Reader
	out io.Writer

	lock         sync.Mutex
	lastState    types.SessionState
	lastTier     types.QualityTier
	recovering   bool
	seenMessages int
	seenRequests int
}

func NewClient(
	conf *config.Config,
	opts ClientOptions,
	engine *mediaengine.Engine,
	estimator *netmon.StatsEstimator,
	manual *netmon.ManualSource,
	session *rtc.Session,
	newShare ScreenShareFactory,
) *Client {
	return &Client{
		conf:      conf,
		opts:      opts,
		engine:    engine,
		estimator: estimator,
		manual:    manual,
		session:   session,
		newShare:  newShare,
		in:        os.Stdin,
		out:       os.Stdout,
		lastTier:  session.NetworkTier(),
	}
}

// Run joins the room and serves commands until ctx is done, the user quits or the session ends
func (c *Client) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	if c.conf.PrometheusPort > 0 {
		promServer := &http.Server{
			Addr:    fmt.Sprintf(":%d", c.conf.PrometheusPort),
			Handler: promhttp.Handler(),
		}
		g.Go(func() error {
			logger.Infow("serving metrics", "port", c.conf.PrometheusPort)
			if err := promServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer shutdownCancel()
			return promServer.Shutdown(shutdownCtx)
		})
	}
	g.Go(func() error {
		defer cancel()
		return c.runSession(ctx)
	})
	return g.Wait()
}

func (c *Client) runSession(ctx context.Context) error {
	if !c.opts.ManualBandwidth {
		c.estimator.Start()
	}
	unsubscribe := c.session.OnChange(c.onSessionChange)
	defer unsubscribe()
	defer c.stopSharing()

	logger.Infow("joining room", "room", c.opts.RoomID, "peer", c.opts.PeerID, "host", c.opts.IsHost)
	if err := c.session.Join(ctx, c.opts.RoomID, c.opts.PeerID, c.opts.IsHost); err != nil {
		if errors.Is(err, rtc.ErrNotApproved) {
			c.printf("the host declined your request to join\n")
		}
		return err
	}
	c.printf("joined %s as %s, type /help for commands\n", c.opts.RoomID, c.opts.PeerID)

	lines := make(chan string)
	go readLines(c.in, lines)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-c.session.Done():
			return c.session.CloseReason()
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if c.handleCommand(line) {
				return nil
			}
		}
	}
}

// setSharing starts or stops the send-only screen share session next to the main one
func (c *Client) setSharing(enabled bool) error {
	if !enabled {
		if c.share == nil {
			return errNotSharing
		}
		c.stopSharing()
		c.printf("stopped sharing the screen\n")
		return nil
	}
	if c.share != nil {
		return errAlreadySharing
	}
	if c.newShare == nil {
		return errors.New("screen sharing is not available")
	}

	share, cleanup := c.newShare()
	ctx, cancel := context.WithTimeout(context.Background(), shareJoinTimeout)
	defer cancel()
	if err := share.Join(ctx, c.opts.RoomID, c.opts.PeerID, false); err != nil {
		cleanup()
		return errors.Wrap(err, "could not start screen share")
	}
	c.share, c.shareCleanup = share, cleanup
	c.printf("sharing the screen as %s\n", share.SelfPeerID())
	return nil
}

func (c *Client) stopSharing() {
	if c.share == nil {
		return
	}
	c.shareCleanup()
	c.share, c.shareCleanup = nil, nil
}

func readLines(r io.Reader, lines chan<- string) {
	defer close(lines)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines <- scanner.Text()
	}
}

// onSessionChange reports what changed since the last notification
func (c *Client) onSessionChange() {
	state := c.session.State()
	tier := c.session.NetworkTier()
	messages := c.session.Messages()
	requests := c.session.PendingRequests()

	c.lock.Lock()
	defer c.lock.Unlock()

	if state != c.lastState {
		c.printf("session %s\n", state)
		c.lastState = state
	}
	if recovering := c.session.IsRecovering(); recovering != c.recovering {
		if recovering {
			c.printf("connection lost, reconnecting...\n")
		}
		c.recovering = recovering
	}
	if tier != c.lastTier {
		c.printf("network quality %s\n", tier)
		c.lastTier = tier
	}
	if len(messages) < c.seenMessages {
		c.seenMessages = 0
	}
	for _, msg := range messages[c.seenMessages:] {
		if !msg.IsLocal {
			c.printf("[%s] %s\n", msg.SenderName, msg.Text)
		}
	}
	c.seenMessages = len(messages)

	if len(requests) > c.seenRequests {
		for _, req := range requests[c.seenRequests:] {
			c.printf("%s asks to join, /accept or /reject\n", req.PeerID)
		}
	}
	c.seenRequests = len(requests)
}

func (c *Client) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}
