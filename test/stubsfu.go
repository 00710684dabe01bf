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

package test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/myworldtech/meet/pkg/logger"
	"github.com/myworldtech/meet/pkg/rtc/signalling"
	"github.com/myworldtech/meet/pkg/rtc/types"
)

const routerCapabilities = `{"codecs":[` +
	`{"kind":"audio","mimeType":"audio/opus","preferredPayloadType":100,"clockRate":48000,"channels":2},` +
	`{"kind":"video","mimeType":"video/VP8","preferredPayloadType":101,"clockRate":90000}` +
	`],"headerExtensions":[]}`

type stubPeer struct {
	connID string
	conn   *websocket.Conn
	lock   sync.Mutex

	// set once admitted
	roomID string
	peerID string
	isHost bool
}

func (p *stubPeer) send(msg *signalling.Message) {
	p.lock.Lock()
	defer p.lock.Unlock()
	_ = p.conn.WriteJSON(msg)
}

func (p *stubPeer) push(event string, payload interface{}) {
	msg, err := signalling.NewMessage(event, 0, payload)
	if err != nil {
		return
	}
	p.send(msg)
}

func (p *stubPeer) ack(id uint64, payload interface{}) {
	if id == 0 {
		return
	}
	data, _ := json.Marshal(payload)
	p.send(&signalling.Message{Ack: id, Data: data})
}

type stubRoom struct {
	peers     map[string]*stubPeer
	producers map[string]types.ProducerInfo
	// requesters waiting for the host, keyed by connection id
	waiting map[string]*stubPeer
	// set-consumer-quality requests seen, in order
	qualityRequests []types.SetConsumerQualityRequest
}

// StubSFU speaks the signalling protocol over a real websocket. It admits hosts directly,
// routes everyone else through the host, and hands out fake transport parameters.
type StubSFU struct {
	*httptest.Server

	lock   sync.Mutex
	rooms  map[string]*stubRoom
	conns  map[string]*stubPeer
	nextID int
}

func NewStubSFU() *StubSFU {
	s := &StubSFU{
		rooms: make(map[string]*stubRoom),
		conns: make(map[string]*stubPeer),
	}
	upgrader := websocket.Upgrader{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		s.serve(conn)
	}))
	return s
}

func (s *StubSFU) WSURL() string {
	return "ws" + strings.TrimPrefix(s.URL, "http")
}

// DropConnections closes every websocket without telling the room, like a network loss
func (s *StubSFU) DropConnections() {
	s.lock.Lock()
	conns := make([]*stubPeer, 0, len(s.conns))
	for _, p := range s.conns {
		conns = append(conns, p)
	}
	s.lock.Unlock()

	for _, p := range conns {
		_ = p.conn.Close()
	}
}

// Peers lists who the server believes is in roomID
func (s *StubSFU) Peers(roomID string) []string {
	s.lock.Lock()
	defer s.lock.Unlock()
	room, ok := s.rooms[roomID]
	if !ok {
		return nil
	}
	var peers []string
	for peerID := range room.peers {
		peers = append(peers, peerID)
	}
	return peers
}

func (s *StubSFU) Producers(roomID string, peerID string) []types.ProducerInfo {
	s.lock.Lock()
	defer s.lock.Unlock()
	room, ok := s.rooms[roomID]
	if !ok {
		return nil
	}
	var producers []types.ProducerInfo
	for _, p := range room.producers {
		if p.PeerID == peerID {
			producers = append(producers, p)
		}
	}
	return producers
}

func (s *StubSFU) QualityRequests(roomID string) []types.SetConsumerQualityRequest {
	s.lock.Lock()
	defer s.lock.Unlock()
	room, ok := s.rooms[roomID]
	if !ok {
		return nil
	}
	return append([]types.SetConsumerQualityRequest{}, room.qualityRequests...)
}

func (s *StubSFU) newID(prefix string) string {
	s.nextID++
	return fmt.Sprintf("%s-%d", prefix, s.nextID)
}

func (s *StubSFU) serve(conn *websocket.Conn) {
	s.lock.Lock()
	peer := &stubPeer{connID: s.newID("socket"), conn: conn}
	s.conns[peer.connID] = peer
	s.lock.Unlock()

	defer func() {
		_ = conn.Close()
		s.lock.Lock()
		delete(s.conns, peer.connID)
		s.lock.Unlock()
	}()

	for {
		var msg signalling.Message
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		s.handle(peer, &msg)
	}
}

func (s *StubSFU) handle(peer *stubPeer, msg *signalling.Message) {
	switch msg.Event {
	case types.EventJoinRoom:
		var req types.JoinRoomRequest
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			return
		}
		s.join(peer, req)

	case types.EventAskToJoinResponse:
		var res types.AskToJoinResponse
		if err := json.Unmarshal(msg.Data, &res); err != nil {
			return
		}
		s.answer(peer, res)

	case types.EventCreateSendTransport, types.EventCreateRecvTransport:
		s.lock.Lock()
		id := s.newID("transport")
		s.lock.Unlock()
		peer.ack(msg.ID, types.TransportParameters{
			ID:             id,
			ICEParameters:  json.RawMessage(`{"usernameFragment":"frag","password":"pass","iceLite":true}`),
			ICECandidates:  json.RawMessage(`[{"foundation":"udpcandidate","priority":1076302079,"ip":"127.0.0.1","protocol":"udp","port":40000,"type":"host"}]`),
			DTLSParameters: json.RawMessage(`{"role":"auto","fingerprints":[{"algorithm":"sha-256","value":"AB:CD"}]}`),
		})

	case types.EventConnectSendTransport, types.EventConnectRecvTransport:
		peer.ack(msg.ID, struct{}{})

	case types.EventProduce:
		var req types.ProduceRequest
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			return
		}
		s.produce(peer, msg.ID, req)

	case types.EventConsume:
		var req types.ConsumeRequest
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			return
		}
		s.consume(peer, msg.ID, req)

	case types.EventPauseProducer, types.EventResumeProducer:
		var req types.ProducerRequest
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			return
		}
		event := types.EventProducerResumed
		if msg.Event == types.EventPauseProducer {
			event = types.EventProducerPaused
		}
		s.producerState(peer, req.ProducerID, event)

	case types.EventSetConsumerQuality:
		var req types.SetConsumerQualityRequest
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			return
		}
		s.lock.Lock()
		if room, ok := s.rooms[peer.roomID]; ok {
			room.qualityRequests = append(room.qualityRequests, req)
		}
		s.lock.Unlock()
		layer := req.SpatialLayer
		peer.push(types.EventQualityChangeSuccess, types.QualityChangeEvent{ConsumerID: req.ConsumerID, SpatialLayer: &layer})

	case types.EventMessage:
		var req types.ChatMessageRequest
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			return
		}
		s.broadcast(peer, types.EventReceiveMessage, types.ReceiveMessageEvent{PeerID: peer.peerID, Text: req.Text})

	case types.EventDisconnectPeer:
		s.leave(peer)

	case types.EventPauseConsumer, types.EventResumeConsumer:
		// media is not forwarded, nothing to do

	default:
		logger.Debugw("stub sfu ignoring event", "event", msg.Event)
		if msg.ID != 0 {
			peer.ack(msg.ID, map[string]string{"error": "unsupported event " + msg.Event})
		}
	}
}

func (s *StubSFU) room(roomID string) *stubRoom {
	room, ok := s.rooms[roomID]
	if !ok {
		room = &stubRoom{
			peers:     make(map[string]*stubPeer),
			producers: make(map[string]types.ProducerInfo),
			waiting:   make(map[string]*stubPeer),
		}
		s.rooms[roomID] = room
	}
	return room
}

func (s *StubSFU) join(peer *stubPeer, req types.JoinRoomRequest) {
	s.lock.Lock()
	room := s.room(req.RoomID)
	peer.roomID = req.RoomID
	peer.peerID = req.PeerID
	peer.isHost = req.IsHost

	var host *stubPeer
	if !req.IsHost {
		for _, p := range room.peers {
			if p.isHost && p.peerID != req.PeerID {
				host = p
				break
			}
		}
	}
	// a returning peer was admitted before
	if existing, ok := room.peers[req.PeerID]; ok && existing.connID != peer.connID {
		host = nil
	}
	if host != nil {
		room.waiting[peer.connID] = peer
	}
	s.lock.Unlock()

	if host != nil {
		host.push(types.EventAskToJoin, types.AskToJoinEvent{
			RequesterPeerID:   req.PeerID,
			RequesterSocketID: peer.connID,
		})
		return
	}
	s.admit(peer)
}

func (s *StubSFU) answer(host *stubPeer, res types.AskToJoinResponse) {
	s.lock.Lock()
	room, ok := s.rooms[host.roomID]
	var requester *stubPeer
	if ok {
		requester = room.waiting[res.To]
		delete(room.waiting, res.To)
	}
	s.lock.Unlock()

	if requester == nil {
		return
	}
	if !res.Approved {
		requester.push(types.EventJoinApproved, types.JoinApproved{Approved: false})
		return
	}
	s.admit(requester)
}

func (s *StubSFU) admit(peer *stubPeer) {
	s.lock.Lock()
	room := s.room(peer.roomID)
	// a rejoining peer publishes again, its previous producers are gone
	for id, p := range room.producers {
		if p.PeerID == peer.peerID {
			delete(room.producers, id)
		}
	}
	room.peers[peer.peerID] = peer

	snapshot := types.RoomSnapshot{
		RouterRTPCapabilities: json.RawMessage(routerCapabilities),
		Producers:             []types.ProducerInfo{},
		Peers:                 make(map[string]bool, len(room.peers)),
	}
	for peerID := range room.peers {
		snapshot.Peers[peerID] = true
	}
	for _, p := range room.producers {
		snapshot.Producers = append(snapshot.Producers, p)
	}
	s.lock.Unlock()

	peer.push(types.EventJoinApproved, types.JoinApproved{Approved: true})
	peer.push(types.EventRoomJoined, snapshot)
}

func (s *StubSFU) produce(peer *stubPeer, id uint64, req types.ProduceRequest) {
	s.lock.Lock()
	room, ok := s.rooms[peer.roomID]
	if !ok {
		s.lock.Unlock()
		peer.ack(id, map[string]string{"error": "not in a room"})
		return
	}
	info := types.ProducerInfo{
		ProducerID: s.newID("producer-" + string(req.Kind)),
		PeerID:     peer.peerID,
		Kind:       req.Kind,
	}
	room.producers[info.ProducerID] = info
	s.lock.Unlock()

	peer.ack(id, types.ProduceResponse{ID: info.ProducerID})
	s.broadcast(peer, types.EventNewProducer, types.NewProducerEvent{PeerID: info.PeerID, ProducerID: info.ProducerID})
}

func (s *StubSFU) consume(peer *stubPeer, id uint64, req types.ConsumeRequest) {
	s.lock.Lock()
	room, ok := s.rooms[peer.roomID]
	var info types.ProducerInfo
	if ok {
		info, ok = room.producers[req.ProducerID]
	}
	consumerID := s.newID("consumer")
	s.lock.Unlock()

	if !ok {
		peer.ack(id, map[string]string{"error": "unknown producer " + req.ProducerID})
		return
	}
	peer.ack(id, types.ConsumeResponse{
		PeerID:        info.PeerID,
		ID:            consumerID,
		ProducerID:    info.ProducerID,
		Kind:          info.Kind,
		RTPParameters: json.RawMessage(`{"codecs":[],"encodings":[]}`),
	})
}

func (s *StubSFU) producerState(peer *stubPeer, producerID string, event string) {
	s.lock.Lock()
	room, ok := s.rooms[peer.roomID]
	var info types.ProducerInfo
	if ok {
		info, ok = room.producers[producerID]
	}
	s.lock.Unlock()
	if !ok {
		return
	}
	s.broadcast(peer, event, types.ProducerStateEvent{PeerID: info.PeerID, Kind: info.Kind})
}

func (s *StubSFU) leave(peer *stubPeer) {
	s.lock.Lock()
	room, ok := s.rooms[peer.roomID]
	if ok && room.peers[peer.peerID] == peer {
		delete(room.peers, peer.peerID)
		for id, p := range room.producers {
			if p.PeerID == peer.peerID {
				delete(room.producers, id)
			}
		}
	} else {
		ok = false
	}
	s.lock.Unlock()

	if ok {
		s.broadcast(peer, types.EventPeerDisconnected, types.PeerDisconnectedEvent{PeerID: peer.peerID})
	}
}

// broadcast pushes to everyone in the sender's room but the sender
func (s *StubSFU) broadcast(from *stubPeer, event string, payload interface{}) {
	s.lock.Lock()
	room, ok := s.rooms[from.roomID]
	var targets []*stubPeer
	if ok {
		for peerID, p := range room.peers {
			if peerID != from.peerID {
				targets = append(targets, p)
			}
		}
	}
	s.lock.Unlock()

	for _, p := range targets {
		p.push(event, payload)
	}
}
