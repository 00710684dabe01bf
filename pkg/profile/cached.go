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

	lru "github.com/hashicorp/golang-lru/v2"
)

// CachedResolver memoizes successful lookups of another resolver
type CachedResolver struct {
	next  Resolver
	cache *lru.Cache[string, Profile]
}

func NewCachedResolver(next Resolver, size int) (*CachedResolver, error) {
	if size <= 0 {
		size = 256
	}
	cache, err := lru.New[string, Profile](size)
	if err != nil {
		return nil, err
	}
	return &CachedResolver{
		next:  next,
		cache: cache,
	}, nil
}

func (c *CachedResolver) Resolve(ctx context.Context, peerID string) (*Profile, error) {
	if p, ok := c.cache.Get(peerID); ok {
		return &p, nil
	}

	p, err := c.next.Resolve(ctx, peerID)
	if err != nil {
		return nil, err
	}
	c.cache.Add(peerID, *p)
	return p, nil
}

func (c *CachedResolver) Invalidate(peerID string) {
	c.cache.Remove(peerID)
}
