package main

import (
	"github.com/modziE3/SENG302-TradieMe-sub002/app"
)

func main() {
	app.Run()
}
