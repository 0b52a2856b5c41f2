package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	t.Run("without params", func(t *testing.T) {
		key := GenerateCacheKey("analytics", "topic_summary", "01ARZ3NDEKTSV")
		assert.Equal(t, "studytrack:analytics:topic_summary:01ARZ3NDEKTSV", key)
	})

	t.Run("with params", func(t *testing.T) {
		key := GenerateCacheKey("analytics", "topic_summary", "01ARZ3NDEKTSV", "user123", "v2")
		assert.Equal(t, "studytrack:analytics:topic_summary:01ARZ3NDEKTSV:user123_v2", key)
	})
}
