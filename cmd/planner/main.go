package main

import "github.com/comitanigiacomo/kanso-planner/cmd/planner/root"

func main() {
	root.Execute()
}
