package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_HasTitle(t *testing.T) {
	assert.False(t, Metadata{}.HasTitle())
	assert.False(t, Metadata{Title: "   "}.HasTitle())
	assert.True(t, Metadata{Title: "An Example Presentation"}.HasTitle())
}

func TestMetadata_TitleLines(t *testing.T) {
	t.Run("title only", func(t *testing.T) {
		m := Metadata{Title: "An Example Presentation"}
		assert.Equal(t, []string{"An Example Presentation"}, m.TitleLines())
	})

	t.Run("title and author", func(t *testing.T) {
		m := Metadata{Title: "An Example Presentation", Author: "John Doe"}
		assert.Equal(t, []string{"An Example Presentation", "", "John Doe"}, m.TitleLines())
	})
}
