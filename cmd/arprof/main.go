// Command arprof profiles the Arprax algorithm library: doubling tests
// that classify growth, head-to-head comparisons, and a catalog of the
// measurable subjects.
package main

func main() {
	Execute()
}
