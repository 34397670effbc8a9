// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package respond

import (
	"fmt"
	"sync/atomic"
)

var requestCounter atomic.Uint64

func NextRequestID() string {
	return fmt.Sprintf("INV-%06d", requestCounter.Add(1))
}
