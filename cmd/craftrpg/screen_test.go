package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScreenStatGroupsDigits(t *testing.T) {
	var buf bytes.Buffer
	s := newScreen(&buf, false)
	s.stat("Creatures", 1500)

	line := buf.String()
	assert.True(t, strings.HasPrefix(line, "  Creatures ·"))
	assert.True(t, strings.HasSuffix(line, " 1,500\n"))
	assert.NotContains(t, line, "\033[")
}

func TestScreenLongLabelKeepsLeader(t *testing.T) {
	var buf bytes.Buffer
	s := newScreen(&buf, false)
	s.stat(strings.Repeat("x", 60), 7)
	assert.Contains(t, buf.String(), " ··· 7\n")
}

func TestScreenColor(t *testing.T) {
	var buf bytes.Buffer
	newScreen(&buf, true).ok("loaded")
	assert.Equal(t, "  \033[32m✓\033[0m loaded\n", buf.String())

	buf.Reset()
	newScreen(&buf, false).ok("loaded")
	assert.Equal(t, "  ✓ loaded\n", buf.String())
}

func TestScreenBannerSeed(t *testing.T) {
	var buf bytes.Buffer
	newScreen(&buf, false).banner(0)
	assert.NotContains(t, buf.String(), "Seed:")

	buf.Reset()
	newScreen(&buf, false).banner(42)
	out := buf.String()
	assert.Contains(t, out, "CraftRPG  v0.1.0")
	assert.Contains(t, out, "Seed: 42")
}
