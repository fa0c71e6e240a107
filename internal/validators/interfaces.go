// SPDX-License-Identifier: Apache-2.0

// Package validators checks inbound registration input before it reaches
// the service layer. Validation failures all wrap [ErrInvalidMetadata] so
// transports can map them to a single client-error class.
package validators

import "context"

// Validator validates an arbitrary input value. The optional field names
// restrict the check to a subset of fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
