package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchPlaces(t *testing.T) {
	assert.Equal(t, []string{"Berlin", "Bremen"}, matchPlaces("b"))
	assert.Equal(t, []string{"München"}, matchPlaces("MÜN"))
	assert.Equal(t, []string{"Москва"}, matchPlaces("МОС"))
	assert.Equal(t, []string{"서울"}, matchPlaces("서"))
	assert.Empty(t, matchPlaces("xyz"))
	assert.Len(t, matchPlaces(""), len(places))
}
