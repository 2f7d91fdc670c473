package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefixPath(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		file     string
		expected string
	}{
		{name: "url with nested file", prefix: "http://cdn.example.com/js/", file: "a/b/bundle.min.js", expected: "http://cdn.example.com/js/a/b/bundle"},
		{name: "plain path", prefix: "static/js", file: "bundle.js", expected: "static/js/bundle"},
		{name: "no prefix", prefix: "", file: "common.js", expected: "common"},
		{name: "rooted prefix", prefix: "/static/js/", file: "common.js", expected: "/static/js/common"},
		{name: "https keeps double slash", prefix: "https://static.company-cdn.com/javascript/", file: "maps.js", expected: "https://static.company-cdn.com/javascript/maps"},
		{name: "protocol relative", prefix: "//cdn.example.com/js", file: "user.js", expected: "//cdn.example.com/js/user"},
		{name: "redundant separators", prefix: "http://cdn.example.com//js//", file: "user.js", expected: "http://cdn.example.com/js/user"},
		{name: "dot segments collapse", prefix: "./static/./js", file: "user.js", expected: "static/js/user"},
		{name: "parent segments kept", prefix: "static/../js", file: "user.js", expected: "static/../js/user"},
		{name: "double slash inside path", prefix: "static//js", file: "user.js", expected: "static/js/user"},
		{name: "multiple dots", prefix: "js", file: "jquery-1.11.2.js", expected: "js/jquery-1.11.2"},
		{name: "no extension", prefix: "js", file: "vendor", expected: "js/vendor"},
		{name: "dotfile", prefix: "js", file: ".bundle", expected: "js/.bundle"},
		{name: "scheme only", prefix: "http://", file: "user.js", expected: "http://user"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PrefixPath(tt.prefix, tt.file))
		})
	}
}

func TestLocation_UsesBaseName(t *testing.T) {
	assert.Equal(t, "http://cdn/js/common", location("http://cdn/js/", "build/optimized/common.min.js"))
	assert.Equal(t, "common", location("", "/abs/path/common.js"))
}
