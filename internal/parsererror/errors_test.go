package parsererror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError(t *testing.T) {
	cause := errors.New("no such file")
	err := &ParseError{Stage: "read", Input: "receipt.txt", Err: cause}

	assert.Contains(t, err.Error(), "read")
	assert.Contains(t, err.Error(), "receipt.txt")
	assert.Contains(t, err.Error(), "no such file")
	assert.ErrorIs(t, err, cause)
}

func TestStoreError(t *testing.T) {
	cause := errors.New("permission denied")
	err := &StoreError{Op: "append", Path: "receipts.csv", Err: cause}

	assert.Contains(t, err.Error(), "append")
	assert.Contains(t, err.Error(), "receipts.csv")
	assert.ErrorIs(t, err, cause)
}

func TestNotFoundError(t *testing.T) {
	err := &NotFoundError{Criteria: `vendor~"mart"`}
	assert.Contains(t, err.Error(), "no stored receipt matches")
	assert.Contains(t, err.Error(), "mart")
}
