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

package profile

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("profile not found")

type Profile struct {
	Name     string `json:"name"`
	PhotoURL string `json:"profilePhotoUrl"`
}

// Resolver looks up the public profile of a peer
type Resolver interface {
	Resolve(ctx context.Context, peerID string) (*Profile, error)
}

// StaticResolver serves profiles from memory
type StaticResolver map[string]Profile

func (s StaticResolver) Resolve(_ context.Context, peerID string) (*Profile, error) {
	p, ok := s[peerID]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}
