// Package inputs acquires original and new path lists from the
// various sources renamer accepts (arguments, stdin, a file, or the
// clipboard) and decodes the different ways a single stream of lines
// can carry both lists (flat, pairs, rows, paragraphs).
package inputs
