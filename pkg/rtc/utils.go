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
	"bytes"
	"encoding/json"
	"fmt"
	"runtime/debug"

	"github.com/pkg/errors"

	"github.com/myworldtech/meet/pkg/logger"
)

// Recover logs the value of a recover() call with its stack and returns it as an error,
// nil when nothing panicked
//
//	defer func() { err = rtc.Recover(l, recover()) }()
func Recover(l logger.Logger, r interface{}) error {
	if l == nil {
		l = logger.GetLogger()
	}
	if r != nil {
		err, ok := r.(error)
		if !ok {
			err = fmt.Errorf("%v", r)
		}
		err = errors.Wrap(err, "recovered panic")
		l.Errorw("recovered panic", err, "stack", string(debug.Stack()))
		return err
	}
	return nil
}

// isEmptyRaw reports whether a payload field was omitted or sent as null
func isEmptyRaw(r json.RawMessage) bool {
	trimmed := bytes.TrimSpace(r)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
