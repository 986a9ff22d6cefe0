package txmanager

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsSerializationFailure(t *testing.T) {
	serialization := &pq.Error{Code: "40001"}

	assert.True(t, isSerializationFailure(serialization))

	// 40001 приходит не только на Commit, но и из самого запроса —
	// обертки репозитория и use case не должны прятать её от ретрая
	repoErr := fmt.Errorf("%w: CountAtSlot - execute query: %w", errors.New("failed to execute query"), serialization)
	usecaseErr := fmt.Errorf("%w: failed to count appointments: %w", errors.New("internal error"), repoErr)
	assert.True(t, isSerializationFailure(usecaseErr))

	assert.False(t, isSerializationFailure(nil))
	assert.False(t, isSerializationFailure(errors.New("deadlock detected")))
	assert.False(t, isSerializationFailure(&pq.Error{Code: "23505"}))
}
