// Package token defines the lexer output: significant tokens carrying their
// leading and trailing trivia. The parser turns each token into a green token
// and each trivia piece into a minutiae node, so every byte of the input ends
// up in exactly one Trivia or Token.Text.
package token
