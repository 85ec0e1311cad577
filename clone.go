// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

import (
	"errors"
	"fmt"

	"code.hybscloud.com/adt/internal/deepclone"
)

// cloneValue deep-copies v through the clone capability.
// Nested containers satisfy deepclone's hook through their Cloned method,
// so an Option[Option[T]] clones level by level.
func cloneValue[V any](v V) (V, error) {
	c, err := deepclone.Clone(v)
	if err != nil {
		if errors.Is(err, deepclone.ErrNotCloneable) {
			return c, fmt.Errorf("%w: %w", ErrNotCloneable, err)
		}
		return c, err
	}
	return c, nil
}
