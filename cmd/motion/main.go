// Command motion inspects animation scenario scripts and preset files
// without opening a window.
package main

func main() {
	Execute()
}
