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
	"errors"

	"github.com/myworldtech/meet/pkg/rtc/supervisor"
)

var (
	ErrNotApproved        = errors.New("join was not approved")
	ErrSessionClosed      = errors.New("session closed")
	ErrInvalidState       = errors.New("operation not allowed in current session state")
	ErrTransportExists    = errors.New("transport already exists for direction")
	ErrTransportNotReady  = errors.New("transport not ready")
	ErrCannotProduce      = errors.New("device cannot produce media of this kind")
	ErrRecoveryDeadline   = supervisor.ErrRecoveryDeadline
	ErrUnknownRequest     = errors.New("unknown join request")
	ErrAlreadyAnswered    = errors.New("join request already answered")
	ErrParticipantUnknown = errors.New("participant not found")
)
