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

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	nameField  = "name"
	photoField = "profilePhotoUrl"
)

// RedisStore keeps one hash per user under prefix+peerID
type RedisStore struct {
	rc     redis.UniversalClient
	prefix string
}

func NewRedisStore(rc redis.UniversalClient, prefix string) *RedisStore {
	return &RedisStore{
		rc:     rc,
		prefix: prefix,
	}
}

func (s *RedisStore) key(peerID string) string {
	return s.prefix + peerID
}

func (s *RedisStore) Resolve(ctx context.Context, peerID string) (*Profile, error) {
	fields, err := s.rc.HGetAll(ctx, s.key(peerID)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "could not load profile")
	}
	if len(fields) == 0 {
		return nil, ErrNotFound
	}
	return &Profile{
		Name:     fields[nameField],
		PhotoURL: fields[photoField],
	}, nil
}

func (s *RedisStore) Store(ctx context.Context, peerID string, p *Profile) error {
	return s.rc.HSet(ctx, s.key(peerID), nameField, p.Name, photoField, p.PhotoURL).Err()
}

func (s *RedisStore) Delete(ctx context.Context, peerID string) error {
	return s.rc.Del(ctx, s.key(peerID)).Err()
}
