// Package huffman builds Huffman coding trees from symbol frequencies and
// uses them to encode text into strings of '0' and '1' and back.
//
// Trees are built greedily: the two lowest-frequency nodes are merged until
// one remains.  Ties are broken by creation order, with leaves created in
// ascending symbol order, so the same frequency table always yields the same
// codes.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
