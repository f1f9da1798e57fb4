/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "ordergen/cmd"

func main() {
	cmd.Execute()
}
