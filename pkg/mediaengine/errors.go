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

import "github.com/pkg/errors"

var (
	ErrNotLoaded         = errors.New("media engine not loaded")
	ErrEngineClosed      = errors.New("media engine closed")
	ErrInvalidParameters = errors.New("invalid transport parameters")
	ErrNoCodec           = errors.New("no codec negotiated for kind")
	ErrForeignTrack      = errors.New("track was not created by this engine")
	ErrTransportClosed   = errors.New("transport closed")
	ErrConnectTimeout    = errors.New("transport connection timed out")
	ErrConsumerNotFound  = errors.New("consumer not found")
	ErrNoAlternateCamera = errors.New("no alternate camera available")
	ErrTrackDisposed     = errors.New("track disposed")
)
