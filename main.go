package main

import "github.com/jfmyers9/lastfmclient/cmd"

func main() {
	cmd.Execute()
}
