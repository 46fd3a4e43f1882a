// Package hufftree implements a classic Huffman compressor for byte streams.
//
// The encoded format is a decimal symbol count, followed by the code tree in
// prefix notation ('L' + byte for a leaf, 'I' + left + right for an internal
// node), followed by the packed code bits, most significant bit first, with
// the final byte padded by zero bits.  No separators are used between the
// three regions.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package hufftree
