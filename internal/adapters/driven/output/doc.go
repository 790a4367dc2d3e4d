// Package output implements the document sinks: a text file in a chosen
// directory, or the system clipboard when no directory is given.
package output
