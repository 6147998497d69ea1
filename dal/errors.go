package dal

import (
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
)

// ErrItemExists is returned by InsertItem when an item with the same
// key is already present. Callers treat it as a normal outcome, not a
// storage fault.
var ErrItemExists = errors.New("item already exists")

// IsConditionalCheckFailed reports whether err is a DynamoDB
// conditional write rejection.
func IsConditionalCheckFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		return true
	}
	return hasErrorCode(err, "ConditionalCheckFailedException")
}

// IsTableNotFound reports whether err indicates the table does not
// exist yet.
func IsTableNotFound(err error) bool {
	var rnf *types.ResourceNotFoundException
	if errors.As(err, &rnf) {
		return true
	}
	return hasErrorCode(err, "ResourceNotFoundException")
}

// IsTableInUse reports whether err indicates the table is already
// being created, typically by a racing process.
func IsTableInUse(err error) bool {
	var riu *types.ResourceInUseException
	if errors.As(err, &riu) {
		return true
	}
	return hasErrorCode(err, "ResourceInUseException")
}

func hasErrorCode(err error, code string) bool {
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == code
}
