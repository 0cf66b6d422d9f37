/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package internal

import (
	"fmt"

	"github.com/pkg/errors"
)

var invalidStr = "is not valid"

// ErrInvalidParameter is returned when a distribution parameter or
// a sample count is outside of its domain.
var ErrInvalidParameter = errors.New(fmt.Sprintf("parameter %s", invalidStr))

// ErrLengthMismatch is returned when element-wise operations
// are applied to series of different lengths.
var ErrLengthMismatch = errors.New("series lengths do not match")

// ErrNonFinite is returned when values cannot be represented
// as finite floating-point numbers.
var ErrNonFinite = errors.New("values are not finite")

// InvalidParameter wraps ErrInvalidParameter with the offending
// parameter name and value.
func InvalidParameter(name string, value interface{}, reason string) error {
	return errors.Wrapf(ErrInvalidParameter, "%s = %v: %s", name, value, reason)
}
