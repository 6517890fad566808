package main

import "github.com/Cayt99/CheckUp/bot"

func main() {
	bot.Start()
}
