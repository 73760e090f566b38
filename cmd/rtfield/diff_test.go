package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineDiff(t *testing.T) {
	before := "<p>intro</p>\n<figure><img src=\"a.jpg\"></figure>\n<p>outro</p>\n"
	after := "<p>intro</p>\n<figure class=\"image\"><img src=\"a.jpg\"></figure>\n<p>outro</p>"

	got := lineDiff(before, after)
	assert.Equal(t, " <p>intro</p>\n-<figure><img src=\"a.jpg\"></figure>\n+<figure class=\"image\"><img src=\"a.jpg\"></figure>\n <p>outro</p>\n", got)
}

func TestLineDiffIdentical(t *testing.T) {
	assert.Equal(t, " <p>x</p>\n", lineDiff("<p>x</p>", "<p>x</p>\n"))
}

func TestWriteDiffHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeDiff(&buf, "a.html", "<p>a</p>", "<p>b</p>"))
	assert.Equal(t, "--- a.html\n+++ a.html (migrated)\n-<p>a</p>\n+<p>b</p>\n", buf.String())
}
