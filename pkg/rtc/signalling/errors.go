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

package signalling

import "errors"

var (
	ErrRequestTimeout    error = timeoutError("signalling request timed out")
	ErrMalformedResponse = errors.New("malformed signalling response")
	ErrRequestFailed     = errors.New("signalling request rejected by server")
	ErrChannelClosed     = errors.New("signalling channel closed")
	ErrNotConnected      = errors.New("signalling channel not connected")
	ErrDisconnected      = errors.New("signalling channel disconnected")
)

type timeoutError string

func (e timeoutError) Error() string { return string(e) }

func (e timeoutError) Timeout() bool { return true }
