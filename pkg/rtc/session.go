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
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/frostbyte73/core"
	"github.com/gammazero/workerpool"
	"github.com/pkg/errors"
	"go.uber.org/atomic"

	"github.com/myworldtech/meet/pkg/logger"
	"github.com/myworldtech/meet/pkg/profile"
	"github.com/myworldtech/meet/pkg/rtc/signalling"
	"github.com/myworldtech/meet/pkg/rtc/supervisor"
	"github.com/myworldtech/meet/pkg/rtc/types"
	"github.com/myworldtech/meet/pkg/telemetry/prometheus"
	"github.com/myworldtech/meet/pkg/utils"
)

const (
	unknownSenderName           = "Unknown"
	defaultProfileLookupTimeout = 3 * time.Second
	closeTimeout                = 5 * time.Second
)

// BandwidthSource reports estimated download bandwidth in kbps
type BandwidthSource interface {
	OnSample(f func(kbps int)) func()
}

type SessionParams struct {
	Config   SessionConfig
	Channel  signalling.Channel
	Engine   types.MediaEngine
	Profiles profile.Resolver
	Network  BandwidthSource
	Logger   logger.Logger
}

// Session drives one participant through a call. Every state transition and every
// server event is serialized on a single ops queue.
type Session struct {
	params SessionParams
	logger logger.Logger

	ops            *utils.OpsQueue
	transports     *TransportManager
	registry       *Registry
	admission      *AdmissionQueue
	quality        *QualityMonitor
	supervisor     *supervisor.ConnectionSupervisor
	profileWorkers *workerpool.WorkerPool

	ctx    context.Context
	cancel context.CancelFunc

	// owned by the ops queue
	isHost        bool
	micEnabled    bool
	cameraEnabled bool
	liveSubs      []func()
	liveGen       uint64

	joined atomic.Bool

	lock           sync.RWMutex
	state          types.SessionState
	roomID         string
	selfPeerID     string
	messages       []types.ChatMessage
	listeners      map[uint64]func()
	nextListenerID uint64
	closeReason    error

	notify       func(f func())
	lifetimeSubs []func()

	closeOnce sync.Once
	closing   core.Fuse
	closed    core.Fuse
}

func NewSession(params SessionParams) *Session {
	if params.Logger == nil {
		params.Logger = logger.GetLogger()
	}
	conf := params.Config

	s := &Session{
		params:        params,
		logger:        params.Logger,
		admission:     NewAdmissionQueue(),
		micEnabled:    true,
		cameraEnabled: true,
		state:         types.SessionStateIdle,
		listeners:     make(map[uint64]func()),
	}
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.ops = utils.NewOpsQueue(params.Logger, "session")

	s.transports = NewTransportManager(TransportManagerParams{
		Channel:        params.Channel,
		Engine:         params.Engine,
		UseDataChannel: conf.UseDataChannel,
		Logger:         params.Logger.WithName("transports"),
	})
	s.registry = NewRegistry(RegistryParams{
		Engine:             params.Engine,
		Channel:            params.Channel,
		Transports:         s.transports,
		AudioPolicy:        conf.AudioPolicy,
		SpeakerEnabled:     conf.SpeakerEnabled,
		Simulcast:          conf.Simulcast,
		MaxVideoBitrate:    conf.MaxVideoBitrate,
		Logger:             params.Logger.WithName("registry"),
		OnParticipantAdded: s.resolveProfile,
		OnChanged:          s.changed,
	})
	s.quality = NewQualityMonitor(QualityMonitorParams{
		LowThresholdKbps:  conf.LowThresholdKbps,
		HighThresholdKbps: conf.HighThresholdKbps,
		Channel:           params.Channel,
		Logger:            params.Logger.WithName("quality"),
		ConsumerIDs: func() []string {
			return s.registry.ConsumerIDs(types.MediaKindVideo)
		},
		RequestKeyFrame: params.Engine.RequestKeyFrame,
		OnTierChanged: func(types.QualityTier) {
			s.changed()
		},
	})
	s.supervisor = supervisor.NewConnectionSupervisor(supervisor.ConnectionSupervisorParams{
		Deadline:      conf.RecoveryDeadline,
		RetryInterval: conf.RecoveryRetryInterval,
		Logger:        params.Logger.WithName("supervisor"),
		Teardown:      s.teardownForRecovery,
		WaitConnected: params.Channel.WaitConnected,
		Rejoin:        s.rejoin,
		IsTerminal:    isTerminalJoinError,
		OnRecovered:   s.onRecovered,
		OnGiveUp:      s.onGiveUp,
	})

	workers := conf.ProfileWorkers
	if workers <= 0 {
		workers = 1
	}
	s.profileWorkers = workerpool.New(workers)

	if conf.UpdateDebounce > 0 {
		s.notify = debounce.New(conf.UpdateDebounce)
	} else {
		s.notify = func(f func()) { f() }
	}

	s.lifetimeSubs = append(s.lifetimeSubs,
		params.Channel.OnDisconnect(s.onChannelDisconnect),
		params.Channel.OnConnectError(func(err error) {
			s.logger.Debugw("signal connection attempt failed", "error", err)
		}),
	)
	if params.Network != nil {
		s.lifetimeSubs = append(s.lifetimeSubs, params.Network.OnSample(s.OnBandwidthSample))
	}

	s.ops.Start()
	return s
}

// Join enters roomID as peerID. It returns ErrNotApproved when the host declines,
// in which case the session stays idle and Join may be called again.
// Any other failure closes the session.
// A send-only session joins as peerID + ScreenShareSuffix and never as host.
func (s *Session) Join(ctx context.Context, roomID string, peerID string, isHost bool) error {
	if s.closing.IsBroken() {
		return ErrSessionClosed
	}
	if s.params.Config.SendOnly {
		if s.params.Config.ScreenShareSuffix == "" {
			return errors.Wrap(ErrInvalidState, "send-only session needs a screen share suffix")
		}
		peerID += s.params.Config.ScreenShareSuffix
		isHost = false
	}

	var err error
	runErr := s.ops.Run(ctx, func() {
		if state := s.State(); state != types.SessionStateIdle {
			err = errors.Wrapf(ErrInvalidState, "cannot join from %s", state)
			return
		}
		s.isHost = isHost
		s.lock.Lock()
		s.roomID = roomID
		s.selfPeerID = peerID
		s.lock.Unlock()

		err = s.join(ctx, false)
	})
	if runErr != nil {
		err = runErr
	}

	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotApproved), errors.Is(err, ErrInvalidState):
		return err
	default:
		s.logger.Warnw("could not join room", err, "room", roomID, "peer", peerID)
		s.closeWithReason(err)
		return err
	}
}

// join runs the full join sequence. It must be called on the ops queue.
// On failure, every transport, producer and consumer created along the way is released.
func (s *Session) join(ctx context.Context, rejoin bool) error {
	start := time.Now()
	ctx, cancel := s.boundContext(ctx)
	defer cancel(nil)
	unsubscribe := s.params.Channel.OnDisconnect(func(error) {
		cancel(signalling.ErrDisconnected)
	})
	defer unsubscribe()

	err := s.negotiate(ctx, rejoin)
	if err != nil && ctx.Err() != nil {
		err = context.Cause(ctx)
	}

	result := "success"
	if err != nil {
		result = "failure"
		if errors.Is(err, ErrNotApproved) {
			result = "rejected"
		}
	}
	prometheus.RecordJoin(rejoin, result, time.Since(start))

	if err == nil {
		s.joined.Store(true)
		s.setState(types.SessionStateActive)
		s.logger.Infow("joined room", "room", s.RoomID(), "peer", s.SelfPeerID(), "rejoin", rejoin, "duration", time.Since(start))
		return nil
	}

	s.unsubscribeLive()
	s.transports.CloseAll()
	s.registry.ReleaseAll()
	if rejoin || errors.Is(err, ErrNotApproved) {
		state := types.SessionStateIdle
		if rejoin {
			state = types.SessionStateJoining
		}
		s.setState(state)
	}
	return err
}

func (s *Session) negotiate(ctx context.Context, rejoin bool) error {
	roomID, selfPeerID := s.RoomID(), s.SelfPeerID()
	s.setState(types.SessionStateJoining)

	if !rejoin {
		if err := s.params.Channel.Connect(ctx); err != nil {
			return errors.Wrap(err, "could not connect signal channel")
		}
	}

	approvedWaiter := s.params.Channel.Expect(types.EventJoinApproved)
	defer approvedWaiter.Cancel()
	joinedWaiter := s.params.Channel.Expect(types.EventRoomJoined)
	defer joinedWaiter.Cancel()

	err := s.params.Channel.Emit(types.EventJoinRoom, types.JoinRoomRequest{
		RoomID: roomID,
		PeerID: selfPeerID,
		IsHost: s.isHost,
	})
	if err != nil {
		return err
	}

	data, err := approvedWaiter.Wait(ctx)
	if err != nil {
		return err
	}
	var approval types.JoinApproved
	if err := json.Unmarshal(data, &approval); err != nil {
		return errors.Wrap(signalling.ErrMalformedResponse, err.Error())
	}
	if !approval.Approved {
		s.logger.Infow("join not approved", "room", roomID, "peer", selfPeerID)
		return ErrNotApproved
	}

	data, err = joinedWaiter.Wait(ctx)
	if err != nil {
		return err
	}
	var snapshot types.RoomSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return errors.Wrap(signalling.ErrMalformedResponse, err.Error())
	}
	if len(snapshot.RouterRTPCapabilities) == 0 {
		return errors.Wrap(signalling.ErrMalformedResponse, "room snapshot without router capabilities")
	}

	s.setState(types.SessionStateNegotiating)
	if !s.params.Engine.IsLoaded() {
		if err := s.params.Engine.Load(snapshot.RouterRTPCapabilities); err != nil {
			return errors.Wrap(err, "could not load router capabilities")
		}
	}

	s.registry.SetLocalParticipant(selfPeerID)
	sendOnly := s.params.Config.SendOnly
	if !sendOnly {
		s.syncParticipants(snapshot, rejoin)

		// events queue up behind this op, so subscribing now loses nothing that follows the snapshot
		s.subscribeLive()
	}

	if _, err := s.transports.CreateTransport(ctx, types.DirectionSend); err != nil {
		return errors.Wrap(err, "could not create send transport")
	}
	if !sendOnly {
		if _, err := s.transports.CreateTransport(ctx, types.DirectionRecv); err != nil {
			return errors.Wrap(err, "could not create recv transport")
		}
	}

	if err := s.publishLocalMedia(ctx); err != nil {
		return err
	}
	if sendOnly {
		return ctx.Err()
	}

	for _, p := range snapshot.Producers {
		if p.ProducerID == "" || s.isOwnPeer(p.PeerID) {
			continue
		}
		s.consumeProducer(ctx, p.ProducerID)
	}
	return ctx.Err()
}

func (s *Session) syncParticipants(snapshot types.RoomSnapshot, rejoin bool) {
	present := make(map[string]bool, len(snapshot.Peers))
	for peerID, isPresent := range snapshot.Peers {
		if isPresent && peerID != "" && !s.isOwnPeer(peerID) {
			present[peerID] = true
		}
	}
	if rejoin {
		s.registry.RetainParticipants(present)
	}
	peerIDs := make([]string, 0, len(present))
	for peerID := range present {
		peerIDs = append(peerIDs, peerID)
	}
	sort.Strings(peerIDs)
	for _, peerID := range peerIDs {
		s.registry.AddParticipant(peerID)
	}
}

func (s *Session) publishLocalMedia(ctx context.Context) error {
	for _, kind := range []types.MediaKind{types.MediaKindVideo, types.MediaKindAudio} {
		if !s.params.Engine.CanProduce(kind) {
			s.logger.Infow("device cannot produce media, not publishing", "kind", kind)
			continue
		}
		if _, err := s.registry.Publish(ctx, kind); err != nil {
			return errors.Wrapf(err, "could not publish %s", kind)
		}

		enabled := s.cameraEnabled
		if kind == types.MediaKindAudio {
			enabled = s.micEnabled
		}
		if !enabled {
			if err := s.applyLocalMedia(kind, false); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Session) consumeProducer(ctx context.Context, producerID string) {
	if s.registry.HasConsumerForProducer(producerID) {
		return
	}
	consumer, err := s.registry.Consume(ctx, producerID)
	if err != nil {
		s.logger.Warnw("could not consume producer", err, "producerID", producerID)
		return
	}
	if consumer.Kind() == types.MediaKindVideo {
		s.quality.ApplyToConsumer(consumer.ID())
	}
}

func (s *Session) isOwnPeer(peerID string) bool {
	self := s.SelfPeerID()
	if peerID == self {
		return true
	}
	suffix := s.params.Config.ScreenShareSuffix
	return suffix != "" && peerID == self+suffix
}

// --------------------------------------------------
// live events

func (s *Session) subscribeLive() {
	s.unsubscribeLive()
	s.liveGen++
	gen := s.liveGen

	handlers := map[string]func(data json.RawMessage){
		types.EventNewProducer:      s.handleNewProducer,
		types.EventProducerPaused:   func(data json.RawMessage) { s.handleProducerState(data, true) },
		types.EventProducerResumed:  func(data json.RawMessage) { s.handleProducerState(data, false) },
		types.EventPeerDisconnected: s.handlePeerDisconnected,
		types.EventReceiveMessage:   s.handleReceiveMessage,
		types.EventQualityChangeSuccess: func(data json.RawMessage) {
			s.quality.HandleResult(true, data)
		},
		types.EventQualityChangeError: func(data json.RawMessage) {
			s.quality.HandleResult(false, data)
		},
	}
	if s.isHost {
		handlers[types.EventAskToJoin] = s.handleAskToJoin
	}

	for event, handler := range handlers {
		handler := handler
		s.liveSubs = append(s.liveSubs, s.params.Channel.On(event, func(data json.RawMessage) {
			s.ops.Enqueue(func() {
				// drop events queued before a teardown
				if gen != s.liveGen {
					return
				}
				handler(data)
			})
		}))
	}
}

func (s *Session) unsubscribeLive() {
	for _, unsubscribe := range s.liveSubs {
		unsubscribe()
	}
	s.liveSubs = nil
	s.liveGen++
}

func (s *Session) handleNewProducer(data json.RawMessage) {
	var ev types.NewProducerEvent
	if err := json.Unmarshal(data, &ev); err != nil || ev.ProducerID == "" {
		s.logger.Warnw("invalid new-producer event", err, "data", string(data))
		return
	}
	if s.isOwnPeer(ev.PeerID) {
		s.logger.Debugw("ignoring own producer", "peerID", ev.PeerID, "producerID", ev.ProducerID)
		return
	}
	s.consumeProducer(s.ctx, ev.ProducerID)
}

func (s *Session) handleProducerState(data json.RawMessage, paused bool) {
	var ev types.ProducerStateEvent
	if err := json.Unmarshal(data, &ev); err != nil || ev.PeerID == "" || !ev.Kind.Valid() {
		s.logger.Warnw("invalid producer state event", err, "data", string(data))
		return
	}

	consumerID, err := s.registry.SetRemotePaused(ev.PeerID, ev.Kind, paused)
	if err != nil {
		s.logger.Debugw("producer state for unknown participant", "peerID", ev.PeerID, "kind", ev.Kind)
		return
	}
	if consumerID == "" {
		return
	}

	event := types.EventResumeConsumer
	if paused {
		event = types.EventPauseConsumer
	}
	if err := s.params.Channel.Emit(event, types.ConsumerRequest{ConsumerID: consumerID}); err != nil {
		s.logger.Warnw("could not mirror producer state", err, "peerID", ev.PeerID, "consumerID", consumerID, "paused", paused)
	}
}

func (s *Session) handlePeerDisconnected(data json.RawMessage) {
	var ev types.PeerDisconnectedEvent
	if err := json.Unmarshal(data, &ev); err != nil || ev.PeerID == "" {
		s.logger.Warnw("invalid peer-disconnected event", err, "data", string(data))
		return
	}

	videoConsumerID, _ := s.registry.ConsumerID(ev.PeerID, types.MediaKindVideo)
	if s.registry.RemoveParticipant(ev.PeerID) {
		s.logger.Infow("participant left", "peerID", ev.PeerID)
	}
	if videoConsumerID != "" {
		s.quality.Forget(videoConsumerID)
	}
}

func (s *Session) handleReceiveMessage(data json.RawMessage) {
	var ev types.ReceiveMessageEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		s.logger.Warnw("invalid receive-message event", err, "data", string(data))
		return
	}

	name := unknownSenderName
	if p, ok := s.registry.Participant(ev.PeerID); ok {
		name = p.DisplayName
	}
	s.appendMessage(types.ChatMessage{
		SenderID:   ev.PeerID,
		SenderName: name,
		Text:       ev.Text,
	})
}

func (s *Session) handleAskToJoin(data json.RawMessage) {
	var ev types.AskToJoinEvent
	if err := json.Unmarshal(data, &ev); err != nil || ev.RequesterSocketID == "" {
		s.logger.Warnw("invalid ask-to-join event", err, "data", string(data))
		return
	}

	s.admission.Enqueue(types.PendingJoinRequest{
		PeerID:        ev.RequesterPeerID,
		CorrelationID: ev.RequesterSocketID,
	})
	s.logger.Infow("join request received", "peerID", ev.RequesterPeerID)
	s.changed()
}

// --------------------------------------------------
// local controls

func (s *Session) SetMicEnabled(enabled bool) error {
	return s.run(func() error {
		s.micEnabled = enabled
		return s.applyLocalMedia(types.MediaKindAudio, enabled)
	})
}

func (s *Session) SetCameraEnabled(enabled bool) error {
	return s.run(func() error {
		s.cameraEnabled = enabled
		return s.applyLocalMedia(types.MediaKindVideo, enabled)
	})
}

// applyLocalMedia pauses or resumes the local producer of kind. Without a producer the
// preference is kept and applied on the next publish.
func (s *Session) applyLocalMedia(kind types.MediaKind, enabled bool) error {
	producerID, ok := s.registry.SetLocalPaused(kind, !enabled)
	if !ok {
		return nil
	}

	event := types.EventResumeProducer
	if !enabled {
		event = types.EventPauseProducer
	}
	return s.params.Channel.Emit(event, types.ProducerRequest{ProducerID: producerID})
}

func (s *Session) SwitchCamera() error {
	return s.run(func() error {
		if _, ok := s.registry.LocalProducer(types.MediaKindVideo); !ok {
			return ErrTransportNotReady
		}
		return s.params.Engine.SwitchCamera()
	})
}

func (s *Session) SetSpeakerEnabled(enabled bool) error {
	return s.run(func() error {
		s.registry.SetSpeakerEnabled(enabled)
		return nil
	})
}

func (s *Session) SpeakerEnabled() bool {
	return s.registry.SpeakerEnabled()
}

func (s *Session) SendMessage(text string) error {
	return s.run(func() error {
		if s.State() != types.SessionStateActive {
			return ErrInvalidState
		}
		if err := s.params.Channel.Emit(types.EventMessage, types.ChatMessageRequest{Text: text}); err != nil {
			return err
		}
		s.appendMessage(types.ChatMessage{
			SenderID:   s.SelfPeerID(),
			SenderName: localDisplayName,
			Text:       text,
			IsLocal:    true,
		})
		return nil
	})
}

// DequeueRequest pops the oldest join request awaiting a decision
func (s *Session) DequeueRequest() (types.PendingJoinRequest, bool) {
	req, ok := s.admission.Dequeue()
	if ok {
		s.changed()
	}
	return req, ok
}

// ApproveRequest answers a join request. Each request can be answered once.
func (s *Session) ApproveRequest(approved bool, correlationID string) error {
	return s.run(func() error {
		if !s.isHost {
			return errors.Wrap(ErrInvalidState, "only the host can answer join requests")
		}
		req, err := s.admission.Answer(correlationID)
		if err != nil {
			return err
		}
		s.logger.Infow("answering join request", "peerID", req.PeerID, "approved", approved)
		s.changed()
		return s.params.Channel.Emit(types.EventAskToJoinResponse, types.AskToJoinResponse{
			Approved: approved,
			To:       correlationID,
		})
	})
}

// OnBandwidthSample feeds a download bandwidth estimate into quality adaptation
func (s *Session) OnBandwidthSample(kbps int) {
	s.ops.Enqueue(func() {
		s.quality.OnBandwidthSample(kbps)
	})
}

// NotifyNetworkAvailable skips any pending reconnection delay
func (s *Session) NotifyNetworkAvailable() {
	if s.closing.IsBroken() {
		return
	}
	s.params.Channel.Reconnect()
}

func (s *Session) run(op func() error) error {
	if s.closing.IsBroken() {
		return ErrSessionClosed
	}
	var err error
	if runErr := s.ops.Run(s.ctx, func() { err = op() }); runErr != nil {
		if errors.Is(runErr, context.Canceled) || errors.Is(runErr, utils.ErrOpsQueueStopped) {
			return ErrSessionClosed
		}
		return runErr
	}
	return err
}

// --------------------------------------------------
// recovery

func (s *Session) onChannelDisconnect(err error) {
	if s.closing.IsBroken() || !s.joined.Load() {
		return
	}
	prometheus.IncrementSignalDisconnect()
	s.supervisor.OnDisconnect(err)
	s.changed()
}

func (s *Session) teardownForRecovery(ctx context.Context) {
	_ = s.ops.Run(ctx, func() {
		if s.closing.IsBroken() {
			return
		}
		s.unsubscribeLive()
		s.transports.CloseAll()
		s.registry.ReleaseAll()
		s.setState(types.SessionStateJoining)
	})
}

func (s *Session) rejoin(ctx context.Context) error {
	var err error
	if runErr := s.ops.Run(ctx, func() {
		if s.closing.IsBroken() {
			err = ErrSessionClosed
			return
		}
		err = s.join(ctx, true)
	}); runErr != nil {
		return runErr
	}
	return err
}

func (s *Session) onRecovered() {
	s.logger.Infow("session recovered", "room", s.RoomID())
	s.changed()
}

func (s *Session) onGiveUp(err error) {
	// the supervisor waits on this goroutine during Close
	go s.closeWithReason(err)
}

func isTerminalJoinError(err error) bool {
	return errors.Is(err, ErrNotApproved) ||
		errors.Is(err, ErrSessionClosed) ||
		errors.Is(err, utils.ErrOpsQueueStopped)
}

// --------------------------------------------------
// close

// Close leaves the room and releases every resource. It is safe to call more than once.
func (s *Session) Close() {
	s.closeWithReason(nil)
}

func (s *Session) closeWithReason(reason error) {
	s.closeOnce.Do(func() {
		s.lock.Lock()
		s.closeReason = reason
		s.lock.Unlock()
		s.closing.Break()

		s.cancel()
		s.supervisor.Stop()

		ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		if err := s.ops.Run(ctx, s.leave); err != nil {
			s.logger.Warnw("could not leave room cleanly", err)
		}
		cancel()

		s.ops.Stop()
		<-s.ops.Done()

		for _, unsubscribe := range s.lifetimeSubs {
			unsubscribe()
		}
		s.params.Channel.Close()
		s.transports.Stop()
		s.registry.Close()
		s.profileWorkers.Stop()

		s.setState(types.SessionStateClosed)
		s.closed.Break()
		if reason != nil {
			s.logger.Infow("session closed", "reason", reason)
		} else {
			s.logger.Infow("session closed")
		}
	})
}

// leave runs on the ops queue
func (s *Session) leave() {
	s.setState(types.SessionStateClosing)
	s.unsubscribeLive()

	s.transports.CloseAll()
	s.registry.ReleaseAll()

	if s.joined.Load() && s.params.Channel.IsConnected() {
		if err := s.params.Channel.Emit(types.EventDisconnectPeer, nil); err != nil {
			s.logger.Debugw("could not notify departure", "error", err)
		}
	}
	s.joined.Store(false)
}

// Done fires once the session is closed
func (s *Session) Done() <-chan struct{} {
	return s.closed.Watch()
}

// CloseReason is the failure that ended the session, nil after a voluntary Close
func (s *Session) CloseReason() error {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.closeReason
}

// --------------------------------------------------
// observable state

func (s *Session) State() types.SessionState {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.state
}

func (s *Session) RoomID() string {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.roomID
}

func (s *Session) SelfPeerID() string {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.selfPeerID
}

func (s *Session) IsRecovering() bool {
	return s.supervisor.IsRecovering()
}

func (s *Session) Participants() []types.Participant {
	return s.registry.Participants()
}

func (s *Session) Messages() []types.ChatMessage {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return append([]types.ChatMessage(nil), s.messages...)
}

func (s *Session) PendingRequests() []types.PendingJoinRequest {
	return s.admission.Pending()
}

func (s *Session) NetworkTier() types.QualityTier {
	return s.quality.Tier()
}

// OnChange registers f to be called, coalesced, after observable state changes
func (s *Session) OnChange(f func()) func() {
	s.lock.Lock()
	s.nextListenerID++
	id := s.nextListenerID
	s.listeners[id] = f
	s.lock.Unlock()

	return func() {
		s.lock.Lock()
		delete(s.listeners, id)
		s.lock.Unlock()
	}
}

func (s *Session) setState(state types.SessionState) {
	s.lock.Lock()
	if s.state == state || s.state == types.SessionStateClosed {
		s.lock.Unlock()
		return
	}
	prev := s.state
	s.state = state
	s.lock.Unlock()

	s.logger.Debugw("session state changed", "from", prev, "to", state)
	s.changed()
}

func (s *Session) appendMessage(msg types.ChatMessage) {
	s.lock.Lock()
	s.messages = append(s.messages, msg)
	s.lock.Unlock()
	s.changed()
}

func (s *Session) changed() {
	s.notify(s.fireChange)
}

func (s *Session) fireChange() {
	s.lock.RLock()
	listeners := make([]func(), 0, len(s.listeners))
	for _, f := range s.listeners {
		listeners = append(listeners, f)
	}
	s.lock.RUnlock()

	prometheus.SetParticipants(len(s.registry.Participants()))
	for _, f := range listeners {
		f()
	}
}

func (s *Session) resolveProfile(peerID string) {
	if s.params.Config.SendOnly {
		return
	}
	if s.params.Profiles == nil || s.closing.IsBroken() {
		s.registry.SetProfile(peerID, "", "")
		return
	}

	timeout := s.params.Config.ProfileLookupTimeout
	if timeout <= 0 {
		timeout = defaultProfileLookupTimeout
	}
	s.profileWorkers.Submit(func() {
		ctx, cancel := context.WithTimeout(s.ctx, timeout)
		defer cancel()

		p, err := s.params.Profiles.Resolve(ctx, peerID)
		if err != nil {
			s.logger.Debugw("could not resolve profile", "peerID", peerID, "error", err)
			s.registry.SetProfile(peerID, "", "")
			return
		}
		s.registry.SetProfile(peerID, p.Name, p.PhotoURL)
	})
}

// boundContext derives a context that also ends when the session closes
func (s *Session) boundContext(ctx context.Context) (context.Context, context.CancelCauseFunc) {
	ctx, cancel := context.WithCancelCause(ctx)
	stop := context.AfterFunc(s.ctx, func() {
		cancel(ErrSessionClosed)
	})
	return ctx, func(cause error) {
		stop()
		cancel(cause)
	}
}
