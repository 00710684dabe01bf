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

package mediaengine

import (
	"sync"

	"github.com/pion/webrtc/v3"

	"github.com/myworldtech/meet/pkg/rtc/types"
)

const rtcpBufferSize = 1500

type producer struct {
	id        string
	track     *LocalTrack
	sender    *webrtc.RTPSender
	listener  types.ProducerListener
	transport *transport

	lock   sync.Mutex
	paused bool
	closed bool
}

func (p *producer) ID() string {
	return p.id
}

func (p *producer) Kind() types.MediaKind {
	return p.track.Kind()
}

func (p *producer) Track() types.LocalTrack {
	return p.track
}

// Pause stops forwarding samples, the sender stays bound so resuming needs no signalling
func (p *producer) Pause() {
	p.lock.Lock()
	p.paused = true
	p.lock.Unlock()
	p.track.SetEnabled(false)
}

func (p *producer) Resume() {
	p.lock.Lock()
	p.paused = false
	p.lock.Unlock()
	p.track.SetEnabled(true)
}

func (p *producer) IsPaused() bool {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.paused
}

func (p *producer) Close() {
	if p.stop() {
		p.transport.removeProducer(p.id)
	}
}

func (p *producer) IsClosed() bool {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.closed
}

func (p *producer) stop() bool {
	p.lock.Lock()
	if p.closed {
		p.lock.Unlock()
		return false
	}
	p.closed = true
	p.lock.Unlock()

	if err := p.sender.Stop(); err != nil {
		p.transport.params.logger.Debugw("could not stop sender", "producerID", p.id, "error", err)
	}
	return true
}

// readRTCP drains receiver reports so the interceptors keep running
func (p *producer) readRTCP() {
	buf := make([]byte, rtcpBufferSize)
	for {
		if _, _, err := p.sender.Read(buf); err != nil {
			return
		}
	}
}

type consumer struct {
	options   types.ConsumerOptions
	ssrc      webrtc.SSRC
	receiver  *webrtc.RTPReceiver
	listener  types.ConsumerListener
	transport *transport
	track     *remoteTrack

	lock   sync.Mutex
	paused bool
	closed bool
}

func (c *consumer) ID() string {
	return c.options.ID
}

func (c *consumer) ProducerID() string {
	return c.options.ProducerID
}

func (c *consumer) Kind() types.MediaKind {
	return c.options.Kind
}

func (c *consumer) Track() types.Track {
	return c.track
}

func (c *consumer) Pause() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.paused = true
}

func (c *consumer) Resume() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.paused = false
}

func (c *consumer) IsPaused() bool {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.paused
}

func (c *consumer) Close() {
	if c.stop() {
		c.transport.removeConsumer(c.options.ID)
	}
}

func (c *consumer) IsClosed() bool {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.closed
}

func (c *consumer) stop() bool {
	c.lock.Lock()
	if c.closed {
		c.lock.Unlock()
		return false
	}
	c.closed = true
	c.lock.Unlock()

	c.track.SetEnabled(false)
	if err := c.receiver.Stop(); err != nil {
		c.transport.params.logger.Debugw("could not stop receiver", "consumerID", c.options.ID, "error", err)
	}
	return true
}

func (c *consumer) readRTP() {
	remote := c.receiver.Track()
	if remote == nil {
		return
	}
	for {
		pkt, _, err := remote.ReadRTP()
		if err != nil {
			return
		}
		if c.IsPaused() {
			continue
		}
		c.transport.params.engine.onRTP(c, pkt)
	}
}

func (c *consumer) readRTCP() {
	for {
		if _, _, err := c.receiver.ReadRTCP(); err != nil {
			return
		}
	}
}
