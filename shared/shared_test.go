package shared_test

import (
	"testing"

	"lodge/shared"
	"lodge/shared/constant"

	"github.com/stretchr/testify/assert"
)

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "booking:get:abc", shared.BuildCacheKey("booking:get", "abc"))
	assert.Equal(t, "limiter:1.2.3.4:agent", shared.BuildCacheKey("limiter", "1.2.3.4", "agent"))
}

func TestCalculateTotalPage(t *testing.T) {
	assert.Equal(t, 1, shared.CalculateTotalPage(0, 10))
	assert.Equal(t, 1, shared.CalculateTotalPage(50, 0))
	assert.Equal(t, 2, shared.CalculateTotalPage(20, 10))
	assert.Equal(t, 3, shared.CalculateTotalPage(21, 10))
}

func TestTransformFields(t *testing.T) {
	req := struct {
		Status string `db:"status"`
		Notes  string `db:"notes"`
		NoTag  string
	}{
		Status: "confirmed",
	}

	fields := shared.TransformFields(req, "admin-1")

	assert.Equal(t, "confirmed", fields["status"])
	assert.NotContains(t, fields, "notes")
	assert.Contains(t, fields, constant.FieldUpdatedAt)
	assert.Equal(t, "admin-1", fields[constant.FieldUpdatedBy])
}
