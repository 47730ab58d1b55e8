/*
Copyright © 2024 plantree
*/
package main

import "github.com/plantree/bing-translator/cmd"

func main() {
	cmd.Execute()
}
