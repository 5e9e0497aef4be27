package test

import (
	"math/rand"
	"strings"
)

const validTokens = "div;.box;#id;#FF0099;margin;color;:;10px;-3.5e+2;.5%;1.25em;url(image.png);url( spaced.png );\"a string\";\"a longer string with some text in it: Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt ut labore et dolore magna aliqua\";@media;@-webkit-keyframes;{;};(;);[;];,;/* a comment */;<!--;-->;--custom-prop;\\41 BC;rgb(;!important;>;~"

// GetRandomTokens builds a space-separated stream of size valid CSS tokens,
// drawn at random from a fixed pool.
func GetRandomTokens(size int) string {
	return GetRandomTokensWithSep(size, " ")
}

// GetRandomTokensWithSep builds a stream of size valid CSS tokens joined by
// sep.
func GetRandomTokensWithSep(size int, sep string) string {
	valid := strings.Split(validTokens, ";")

	var toks []string
	for len(toks) < size {
		toks = append(toks, valid[rand.Intn(len(valid))])
	}

	return strings.Join(toks, sep)
}
