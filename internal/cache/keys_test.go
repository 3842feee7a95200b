package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	assert.Equal(t,
		"examgen:export:exam:01ARZ3NDEKTSV4RRFFQ69G5FAV",
		GenerateCacheKey("export", "exam", "01ARZ3NDEKTSV4RRFFQ69G5FAV"),
	)
	assert.Equal(t,
		"examgen:export:answers:id:a_b",
		GenerateCacheKey("export", "answers", "id", "a", "b"),
	)
}
