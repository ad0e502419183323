// Command botctl is a small inspector for the Balanced Offset Tree library:
// it loads a text file, builds a tree over its line starts, optionally
// applies one mutation, and prints the resulting offset table.
package main

func main() {
	execute()
}
