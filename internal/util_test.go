package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconstructPath(t *testing.T) {
	parents := []int{-1, 0, 1, 1, 3}
	parentOf := func(id int) int { return parents[id] }

	assert.Equal(t, []int{0, 1, 3, 4}, ReconstructPath(parentOf, 4))
	assert.Equal(t, []int{0, 1, 2}, ReconstructPath(parentOf, 2))
	assert.Equal(t, []int{0}, ReconstructPath(parentOf, 0))
}
