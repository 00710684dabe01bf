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

package rtc

import (
	"context"
	"sync"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/gammazero/workerpool"
	"github.com/pkg/errors"
	"go.uber.org/atomic"

	"github.com/myworldtech/meet/pkg/logger"
	"github.com/myworldtech/meet/pkg/rtc/signalling"
	"github.com/myworldtech/meet/pkg/rtc/types"
)

const localDisplayName = "You"

type RemoteAudioPolicy int

const (
	// RemoteAudioFollowSpeaker enables remote audio whenever the local speaker is on
	RemoteAudioFollowSpeaker RemoteAudioPolicy = iota
	// RemoteAudioStartMuted keeps remote audio disabled until the participant is unmuted explicitly
	RemoteAudioStartMuted
)

type RegistryParams struct {
	Engine          types.MediaEngine
	Channel         signalling.Channel
	Transports      *TransportManager
	AudioPolicy     RemoteAudioPolicy
	SpeakerEnabled  bool
	Simulcast       bool
	MaxVideoBitrate uint64
	Logger          logger.Logger

	// called outside of registry locks
	OnParticipantAdded func(peerID string)
	OnChanged          func()
}

type producerEntry struct {
	producer types.Producer
	track    types.LocalTrack
	released atomic.Bool
}

func (e *producerEntry) release() bool {
	if !e.released.CompareAndSwap(false, true) {
		return false
	}
	e.producer.Close()
	e.track.SetEnabled(false)
	e.track.Dispose()
	return true
}

type consumerEntry struct {
	consumer types.Consumer
	peerID   string
	paused   bool
	// set once the remote side resumes this audio explicitly
	unmuted  bool
	released atomic.Bool
}

func (e *consumerEntry) release() bool {
	if !e.released.CompareAndSwap(false, true) {
		return false
	}
	e.consumer.Track().SetEnabled(false)
	e.consumer.Close()
	return true
}

// Registry tracks participants with the producers and consumers attached to them.
// It is safe for concurrent use, engine callbacks reach it from their own goroutines.
type Registry struct {
	params RegistryParams

	lock           sync.RWMutex
	selfPeerID     string
	participants   *orderedmap.OrderedMap[string, *types.Participant]
	producers      map[types.MediaKind]*producerEntry
	consumers      map[string]*consumerEntry
	byProducerID   map[string]string
	speakerEnabled bool

	// produce callbacks block on signalling, keep them off the session ops queue
	produceWorker *workerpool.WorkerPool
}

func NewRegistry(params RegistryParams) *Registry {
	if params.MaxVideoBitrate == 0 {
		params.MaxVideoBitrate = 1_200_000
	}
	return &Registry{
		params:         params,
		participants:   orderedmap.NewOrderedMap[string, *types.Participant](),
		producers:      make(map[types.MediaKind]*producerEntry),
		consumers:      make(map[string]*consumerEntry),
		byProducerID:   make(map[string]string),
		speakerEnabled: params.SpeakerEnabled,
		produceWorker:  workerpool.New(1),
	}
}

func (r *Registry) SetLocalParticipant(peerID string) {
	r.lock.Lock()
	if r.selfPeerID == peerID {
		r.lock.Unlock()
		return
	}
	if r.selfPeerID != "" {
		r.participants.Delete(r.selfPeerID)
	}
	r.selfPeerID = peerID

	// local participant always leads the list
	existing := r.participants
	r.participants = orderedmap.NewOrderedMap[string, *types.Participant]()
	r.participants.Set(peerID, &types.Participant{
		PeerID:      peerID,
		DisplayName: localDisplayName,
		IsLocal:     true,
	})
	for el := existing.Front(); el != nil; el = el.Next() {
		if el.Key != peerID {
			r.participants.Set(el.Key, el.Value)
		}
	}
	r.lock.Unlock()

	// the local name stays "You", the lookup only fills in the photo
	if r.params.OnParticipantAdded != nil {
		r.params.OnParticipantAdded(peerID)
	}
	r.changed()
}

// AddParticipant registers a remote peer with a pending display name, returning false if already known
func (r *Registry) AddParticipant(peerID string) bool {
	r.lock.Lock()
	if _, ok := r.participants.Get(peerID); ok || peerID == "" {
		r.lock.Unlock()
		return false
	}
	r.participants.Set(peerID, &types.Participant{
		PeerID:      peerID,
		DisplayName: peerID,
		NamePending: true,
	})
	r.lock.Unlock()

	if r.params.OnParticipantAdded != nil {
		r.params.OnParticipantAdded(peerID)
	}
	r.changed()
	return true
}

// SetProfile applies a resolved profile. The local participant keeps its display name.
func (r *Registry) SetProfile(peerID string, name string, photoURL string) bool {
	r.lock.Lock()
	p, ok := r.participants.Get(peerID)
	if !ok {
		r.lock.Unlock()
		return false
	}
	if name != "" && !p.IsLocal {
		p.DisplayName = name
	}
	p.PhotoURL = photoURL
	p.NamePending = false
	r.lock.Unlock()

	r.changed()
	return true
}

// RemoveParticipant drops a remote peer and releases its consumers
func (r *Registry) RemoveParticipant(peerID string) bool {
	r.lock.Lock()
	p, ok := r.participants.Get(peerID)
	if !ok || p.IsLocal {
		r.lock.Unlock()
		return false
	}
	r.participants.Delete(peerID)
	entries := r.detachConsumersLocked(func(e *consumerEntry) bool { return e.peerID == peerID })
	r.lock.Unlock()

	for _, e := range entries {
		e.release()
	}
	r.changed()
	return true
}

// RetainParticipants removes every remote peer missing from present
func (r *Registry) RetainParticipants(present map[string]bool) {
	var gone []string
	r.lock.RLock()
	for el := r.participants.Front(); el != nil; el = el.Next() {
		if !el.Value.IsLocal && !present[el.Key] {
			gone = append(gone, el.Key)
		}
	}
	r.lock.RUnlock()

	for _, peerID := range gone {
		r.RemoveParticipant(peerID)
	}
}

func (r *Registry) Participants() []types.Participant {
	r.lock.RLock()
	defer r.lock.RUnlock()

	participants := make([]types.Participant, 0, r.participants.Len())
	for el := r.participants.Front(); el != nil; el = el.Next() {
		participants = append(participants, *el.Value)
	}
	return participants
}

func (r *Registry) Participant(peerID string) (types.Participant, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	p, ok := r.participants.Get(peerID)
	if !ok {
		return types.Participant{}, false
	}
	return *p, true
}

// DisplayName falls back to the peer id while the profile is unresolved
func (r *Registry) DisplayName(peerID string) string {
	r.lock.RLock()
	defer r.lock.RUnlock()

	if p, ok := r.participants.Get(peerID); ok {
		return p.DisplayName
	}
	return peerID
}

// Publish creates a local track of kind and produces it on the send transport.
// An existing producer of the same kind is released first.
func (r *Registry) Publish(ctx context.Context, kind types.MediaKind) (types.Producer, error) {
	send, ok := r.params.Transports.SendTransport()
	if !ok {
		return nil, ErrTransportNotReady
	}
	if !r.params.Engine.CanProduce(kind) {
		return nil, errors.Wrap(ErrCannotProduce, string(kind))
	}

	r.ClosePublished(kind)

	track, err := r.params.Engine.CreateTrack(kind)
	if err != nil {
		return nil, err
	}
	track.SetEnabled(true)

	var encodings []types.Encoding
	if kind == types.MediaKindVideo && r.params.Simulcast {
		encodings = SimulcastEncodings(r.params.MaxVideoBitrate)
	}

	type produceResult struct {
		producer types.Producer
		err      error
	}
	resultCh := make(chan produceResult, 1)
	listener := &producerListener{registry: r}
	r.produceWorker.Submit(func() {
		p, err := send.Produce(listener, track, encodings)
		resultCh <- produceResult{producer: p, err: err}
	})

	var res produceResult
	select {
	case res = <-resultCh:
	case <-ctx.Done():
		// the worker still finishes, tear down whatever it builds
		go func() {
			res := <-resultCh
			if res.producer != nil {
				res.producer.Close()
			}
			track.Dispose()
		}()
		return nil, ctx.Err()
	}
	if res.err != nil {
		track.Dispose()
		return nil, res.err
	}

	entry := &producerEntry{producer: res.producer, track: track}
	r.lock.Lock()
	if send.IsClosed() {
		r.lock.Unlock()
		entry.release()
		return nil, ErrTransportNotReady
	}
	r.producers[kind] = entry
	if local, ok := r.participants.Get(r.selfPeerID); ok {
		if kind == types.MediaKindAudio {
			local.AudioTrackID = track.ID()
			local.Muted = false
		} else {
			local.VideoTrackID = track.ID()
			local.VideoPaused = false
		}
	}
	r.lock.Unlock()

	r.params.Logger.Debugw("producer created", "kind", kind, "producerID", res.producer.ID())
	r.changed()
	return res.producer, nil
}

func (r *Registry) ClosePublished(kind types.MediaKind) {
	r.lock.Lock()
	entry := r.detachProducerLocked(kind, "")
	r.lock.Unlock()

	if entry != nil && entry.release() {
		r.changed()
	}
}

func (r *Registry) LocalProducer(kind types.MediaKind) (types.Producer, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	entry, ok := r.producers[kind]
	if !ok {
		return nil, false
	}
	return entry.producer, true
}

// SetLocalPaused pauses or resumes the local producer of kind, returning its id
func (r *Registry) SetLocalPaused(kind types.MediaKind, paused bool) (string, bool) {
	r.lock.Lock()
	entry, ok := r.producers[kind]
	if local, found := r.participants.Get(r.selfPeerID); found {
		if kind == types.MediaKindAudio {
			local.Muted = paused
		} else {
			local.VideoPaused = paused
		}
	}
	r.lock.Unlock()
	defer r.changed()

	if !ok {
		return "", false
	}
	if paused {
		entry.producer.Pause()
	} else {
		entry.producer.Resume()
	}
	entry.track.SetEnabled(!paused)
	return entry.producer.ID(), true
}

// Consume subscribes to a remote producer. Consuming the same producer twice returns the existing consumer.
func (r *Registry) Consume(ctx context.Context, producerID string) (types.Consumer, error) {
	r.lock.RLock()
	if consumerID, ok := r.byProducerID[producerID]; ok {
		if entry, ok := r.consumers[consumerID]; ok {
			r.lock.RUnlock()
			return entry.consumer, nil
		}
	}
	r.lock.RUnlock()

	recv, ok := r.params.Transports.RecvTransport()
	if !ok {
		return nil, ErrTransportNotReady
	}

	var res types.ConsumeResponse
	err := r.params.Channel.Call(ctx, types.EventConsume, types.ConsumeRequest{
		ProducerID:      producerID,
		RTPCapabilities: r.params.Engine.RTPCapabilities(),
	}, &res)
	if err != nil {
		return nil, err
	}
	if res.ID == "" || res.PeerID == "" || !res.Kind.Valid() || isEmptyRaw(res.RTPParameters) {
		return nil, errors.Wrap(signalling.ErrMalformedResponse, "incomplete consume response")
	}

	consumer, err := recv.Consume(&consumerListener{registry: r}, types.ConsumerOptions{
		ID:            res.ID,
		ProducerID:    producerID,
		Kind:          res.Kind,
		RTPParameters: res.RTPParameters,
	})
	if err != nil {
		return nil, err
	}

	// make sure the owner is known before attaching media to it
	r.AddParticipant(res.PeerID)

	entry := &consumerEntry{consumer: consumer, peerID: res.PeerID}
	var replaced *consumerEntry
	r.lock.Lock()
	if recv.IsClosed() {
		r.lock.Unlock()
		entry.release()
		return nil, ErrTransportNotReady
	}
	p, _ := r.participants.Get(res.PeerID)
	if p != nil {
		previous := p.AudioConsumerID
		if res.Kind == types.MediaKindVideo {
			previous = p.VideoConsumerID
		}
		if previous != "" {
			replaced = r.detachConsumerLocked(previous)
		}
	}
	r.consumers[res.ID] = entry
	r.byProducerID[producerID] = res.ID
	if p != nil {
		if res.Kind == types.MediaKindAudio {
			p.AudioConsumerID = res.ID
			p.AudioTrackID = consumer.Track().ID()
		} else {
			p.VideoConsumerID = res.ID
			p.VideoTrackID = consumer.Track().ID()
		}
	}
	if res.Kind == types.MediaKindAudio {
		// audio starts disabled, the enable decision belongs to the local audio policy
		consumer.Track().SetEnabled(false)
		consumer.Track().SetEnabled(r.audioAllowedLocked(entry))
	} else {
		consumer.Track().SetEnabled(true)
	}
	r.lock.Unlock()

	if replaced != nil {
		replaced.release()
	}
	r.params.Logger.Debugw("consumer created",
		"peerID", res.PeerID,
		"kind", res.Kind,
		"consumerID", res.ID,
		"producerID", producerID,
	)
	r.changed()
	return consumer, nil
}

func (r *Registry) HasConsumerForProducer(producerID string) bool {
	r.lock.RLock()
	defer r.lock.RUnlock()
	_, ok := r.byProducerID[producerID]
	return ok
}

// ConsumerID returns the current consumer of kind belonging to peerID
func (r *Registry) ConsumerID(peerID string, kind types.MediaKind) (string, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	p, ok := r.participants.Get(peerID)
	if !ok {
		return "", false
	}
	id := p.AudioConsumerID
	if kind == types.MediaKindVideo {
		id = p.VideoConsumerID
	}
	return id, id != ""
}

func (r *Registry) ConsumerIDs(kind types.MediaKind) []string {
	r.lock.RLock()
	defer r.lock.RUnlock()

	var ids []string
	for el := r.participants.Front(); el != nil; el = el.Next() {
		id := el.Value.AudioConsumerID
		if kind == types.MediaKindVideo {
			id = el.Value.VideoConsumerID
		}
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// SetRemotePaused mirrors a remote producer pause onto the local consumer and participant state.
// It returns the affected consumer id, if any.
func (r *Registry) SetRemotePaused(peerID string, kind types.MediaKind, paused bool) (string, error) {
	r.lock.Lock()
	p, ok := r.participants.Get(peerID)
	if !ok || p.IsLocal {
		r.lock.Unlock()
		return "", ErrParticipantUnknown
	}

	consumerID := p.AudioConsumerID
	if kind == types.MediaKindAudio {
		p.Muted = paused
	} else {
		consumerID = p.VideoConsumerID
		p.VideoPaused = paused
	}
	entry := r.consumers[consumerID]
	if entry != nil {
		entry.paused = paused
		if !paused {
			entry.unmuted = true
		}
		if paused {
			entry.consumer.Pause()
		} else {
			entry.consumer.Resume()
		}
		if kind == types.MediaKindAudio {
			entry.consumer.Track().SetEnabled(!paused && r.audioAllowedLocked(entry))
		} else {
			entry.consumer.Track().SetEnabled(!paused)
		}
	}
	r.lock.Unlock()

	r.changed()
	if entry == nil {
		return "", nil
	}
	return consumerID, nil
}

func (r *Registry) SpeakerEnabled() bool {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.speakerEnabled
}

// SetSpeakerEnabled toggles playback of every remote audio track
func (r *Registry) SetSpeakerEnabled(enabled bool) {
	r.lock.Lock()
	r.speakerEnabled = enabled
	for _, entry := range r.consumers {
		if entry.consumer.Kind() != types.MediaKindAudio {
			continue
		}
		entry.consumer.Track().SetEnabled(!entry.paused && r.audioAllowedLocked(entry))
	}
	r.lock.Unlock()

	r.changed()
}

// ReleaseAll releases every producer and consumer while keeping the participant list
func (r *Registry) ReleaseAll() {
	r.lock.Lock()
	var producers []*producerEntry
	for kind := range r.producers {
		if entry := r.detachProducerLocked(kind, ""); entry != nil {
			producers = append(producers, entry)
		}
	}
	consumers := r.detachConsumersLocked(func(*consumerEntry) bool { return true })
	r.lock.Unlock()

	for _, entry := range producers {
		entry.release()
	}
	for _, entry := range consumers {
		entry.release()
	}
	if len(producers) > 0 || len(consumers) > 0 {
		r.changed()
	}
}

func (r *Registry) Close() {
	r.ReleaseAll()
	r.produceWorker.Stop()
}

func (r *Registry) audioAllowedLocked(entry *consumerEntry) bool {
	if !r.speakerEnabled {
		return false
	}
	if r.params.AudioPolicy == RemoteAudioStartMuted {
		return entry.unmuted
	}
	return true
}

func (r *Registry) detachProducerLocked(kind types.MediaKind, producerID string) *producerEntry {
	entry, ok := r.producers[kind]
	if !ok || (producerID != "" && entry.producer.ID() != producerID) {
		return nil
	}
	delete(r.producers, kind)
	if local, found := r.participants.Get(r.selfPeerID); found {
		if kind == types.MediaKindAudio {
			local.AudioTrackID = ""
		} else {
			local.VideoTrackID = ""
		}
	}
	return entry
}

func (r *Registry) detachConsumerLocked(consumerID string) *consumerEntry {
	entry, ok := r.consumers[consumerID]
	if !ok {
		return nil
	}
	delete(r.consumers, consumerID)
	delete(r.byProducerID, entry.consumer.ProducerID())
	if p, found := r.participants.Get(entry.peerID); found {
		if p.AudioConsumerID == consumerID {
			p.AudioConsumerID = ""
			p.AudioTrackID = ""
		}
		if p.VideoConsumerID == consumerID {
			p.VideoConsumerID = ""
			p.VideoTrackID = ""
		}
	}
	return entry
}

func (r *Registry) detachConsumersLocked(match func(e *consumerEntry) bool) []*consumerEntry {
	var detached []*consumerEntry
	for id, entry := range r.consumers {
		if match(entry) {
			if e := r.detachConsumerLocked(id); e != nil {
				detached = append(detached, e)
			}
		}
	}
	return detached
}

func (r *Registry) changed() {
	if r.params.OnChanged != nil {
		r.params.OnChanged()
	}
}

// SimulcastEncodings returns three layers, low to high, at 1/4, 1/2 and full resolution and bitrate
func SimulcastEncodings(maxBitrate uint64) []types.Encoding {
	return []types.Encoding{
		{RID: "r0", Active: true, ScaleResolutionDownBy: 4, MaxBitrate: maxBitrate / 4},
		{RID: "r1", Active: true, ScaleResolutionDownBy: 2, MaxBitrate: maxBitrate / 2},
		{RID: "r2", Active: true, ScaleResolutionDownBy: 1, MaxBitrate: maxBitrate},
	}
}

type producerListener struct {
	registry *Registry
}

func (l *producerListener) OnTransportClose(producer types.Producer) {
	r := l.registry
	r.lock.Lock()
	entry := r.detachProducerLocked(producer.Kind(), producer.ID())
	r.lock.Unlock()

	if entry != nil && entry.release() {
		r.params.Logger.Debugw("producer released on transport close", "producerID", producer.ID())
		r.changed()
	}
}

type consumerListener struct {
	registry *Registry
}

func (l *consumerListener) OnTransportClose(consumer types.Consumer) {
	r := l.registry
	r.lock.Lock()
	entry := r.detachConsumerLocked(consumer.ID())
	r.lock.Unlock()

	if entry != nil && entry.release() {
		r.params.Logger.Debugw("consumer released on transport close", "consumerID", consumer.ID())
		r.changed()
	}
}
