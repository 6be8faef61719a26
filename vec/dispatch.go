// Copyright 2025 go-numerics Authors
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

package vec

import (
	"os"
	"strconv"
)

// laneBlock is the number of lanes the apply loops process per iteration.
// Set by init() in dispatch_*.go files; 1 disables blocking.
var laneBlock = 1

// LaneBlock reports the lane blocking factor chosen for this CPU.
func LaneBlock() int {
	return laneBlock
}

// noBlockEnv checks the NUMERICS_NO_BLOCK environment variable. When set,
// the apply loops run one lane at a time regardless of CPU capabilities.
// Useful for testing and debugging.
func noBlockEnv() bool {
	val := os.Getenv("NUMERICS_NO_BLOCK")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
