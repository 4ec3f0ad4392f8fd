package main

import "github.com/KoSukeWork/YuanBao-mhtml-parser/cmd"

func main() {
	cmd.Execute()
}
