// simplechat is a small chat window that answers a fixed set of phrases.
package main

import "github.com/linanwx/simplechat/cmd"

func main() {
	cmd.Execute()
}
